package requests

type BookAppointment struct {
	DoctorID string `json:"docId" validate:"required"`
	SlotDate string `json:"slotDate" validate:"required,slot_date"`
	SlotTime string `json:"slotTime" validate:"required,slot_time"`
}

type CancelAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

type CompleteAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

package responses

import "time"

type AppointmentUserData struct {
	UserID  string  `json:"userId"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Image   string  `json:"image"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Dob     string  `json:"dob"`
	Gender  string  `json:"gender"`
}

type AppointmentDoctorData struct {
	DoctorID   string  `json:"doctorId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Speciality string  `json:"speciality"`
	Degree     string  `json:"degree"`
	Fees       int64   `json:"fees"`
	Address    Address `json:"address"`
}

type Appointment struct {
	ID          string                `json:"_id"`
	UserID      string                `json:"userId"`
	DoctorID    string                `json:"docId"`
	SlotDate    string                `json:"slotDate"`
	SlotTime    string                `json:"slotTime"`
	UserData    AppointmentUserData   `json:"userData"`
	DoctorData  AppointmentDoctorData `json:"docData"`
	Amount      int64                 `json:"amount"`
	BookedAt    time.Time             `json:"date"`
	Cancelled   bool                  `json:"cancelled"`
	IsCompleted bool                  `json:"isCompleted"`
	Payment     bool                  `json:"payment"`
}

type DoctorDashboard struct {
	Earnings           int64         `json:"earnings"`
	Appointments       int           `json:"appointments"`
	Patients           int           `json:"patients"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

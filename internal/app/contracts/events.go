package contracts

import "context"

// AppointmentEvent is published to the appointment events queue when a
// booking changes state. Consumers (notification senders, analytics) are
// external to this service.
type AppointmentEvent struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
	DoctorID      string `json:"doctor_id"`
	SlotDate      string `json:"slot_date"`
	SlotTime      string `json:"slot_time"`
	Amount        int64  `json:"amount"`
}

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, event *AppointmentEvent) error
}

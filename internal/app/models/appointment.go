package models

import "time"

// Appointment links a patient and a doctor to one (date, time) slot.
// UserData and DoctorData are immutable value copies taken at booking
// time; they do not follow later profile changes.
type Appointment struct {
	ID          string         `bson:"_id,omitempty"`
	UserID      string         `bson:"userId"`
	DoctorID    string         `bson:"doctorId"`
	SlotDate    string         `bson:"slotDate"`
	SlotTime    string         `bson:"slotTime"`
	UserData    UserSnapshot   `bson:"userData"`
	DoctorData  DoctorSnapshot `bson:"doctorData"`
	Amount      int64          `bson:"amount"`
	BookedAt    time.Time      `bson:"bookedAt"`
	Cancelled   bool           `bson:"cancelled"`
	IsCompleted bool           `bson:"isCompleted"`
	Payment     bool           `bson:"payment"`
}

// CountsTowardEarnings reports whether the appointment contributes to a
// doctor's dashboard earnings: completed visits and paid bookings count,
// each at most once per appointment.
func (a *Appointment) CountsTowardEarnings() bool {
	return a.IsCompleted || a.Payment
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Doctor is a doctor account plus its schedulable state. SlotsBooked maps
// a date key ("day_month_year") to the list of reserved times for that
// date; a (date, time) pair appears at most once.
type Doctor struct {
	ID          string              `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Email       string              `bson:"email"`
	Password    string              `bson:"password"`
	Image       string              `bson:"image"`
	Speciality  string              `bson:"speciality"`
	Degree      string              `bson:"degree"`
	Experience  string              `bson:"experience"`
	About       string              `bson:"about"`
	Fees        int64               `bson:"fees"`
	Address     Address             `bson:"address"`
	Available   bool                `bson:"available"`
	SlotsBooked map[string][]string `bson:"slotsBooked"`
	TimeModel   `bson:",inline"`
}

func (d *Doctor) HasSlot(slotDate, slotTime string) bool {
	for _, booked := range d.SlotsBooked[slotDate] {
		if booked == slotTime {
			return true
		}
	}
	return false
}

func (d *Doctor) ReserveSlot(slotDate, slotTime string) {
	if d.SlotsBooked == nil {
		d.SlotsBooked = make(map[string][]string)
	}
	d.SlotsBooked[slotDate] = append(d.SlotsBooked[slotDate], slotTime)
	d.UpdatedAt = time.Now()
}

// ReleaseSlot removes slotTime from slotDate's list. Releasing an absent
// entry is a no-op. An emptied date key is dropped from the map.
func (d *Doctor) ReleaseSlot(slotDate, slotTime string) {
	times := d.SlotsBooked[slotDate]
	if len(times) == 0 {
		return
	}
	remaining := make([]string, 0, len(times))
	for _, booked := range times {
		if booked != slotTime {
			remaining = append(remaining, booked)
		}
	}
	if len(remaining) == 0 {
		delete(d.SlotsBooked, slotDate)
		d.UpdatedAt = time.Now()
		return
	}
	d.SlotsBooked[slotDate] = remaining
	d.UpdatedAt = time.Now()
}

func (d *Doctor) SetDataForUpdateProfile(fees int64, address Address, available bool) {
	d.Fees = fees
	d.Address = address
	d.Available = available
	d.UpdatedAt = time.Now()
}

// ConvertToProfileUpdateBsonM builds the update document for a profile
// edit. Only the doctor-editable fields appear; slotsBooked is owned by
// the guarded ReserveSlot/ReleaseSlot writes and must never be part of
// a profile update, or a concurrent reservation gets erased.
func (d *Doctor) ConvertToProfileUpdateBsonM() bson.M {
	return bson.M{
		"fees":      d.Fees,
		"address":   d.Address,
		"available": d.Available,
		"updatedAt": d.UpdatedAt,
	}
}

// Snapshot returns the value copy embedded into appointments at booking
// time, without the password hash and without the live slot map.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		DoctorID:   d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Image:      d.Image,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Experience: d.Experience,
		About:      d.About,
		Fees:       d.Fees,
		Address:    d.Address,
	}
}

type DoctorSnapshot struct {
	DoctorID   string  `json:"doctorId" bson:"doctorId"`
	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email" bson:"email"`
	Image      string  `json:"image" bson:"image"`
	Speciality string  `json:"speciality" bson:"speciality"`
	Degree     string  `json:"degree" bson:"degree"`
	Experience string  `json:"experience" bson:"experience"`
	About      string  `json:"about" bson:"about"`
	Fees       int64   `json:"fees" bson:"fees"`
	Address    Address `json:"address" bson:"address"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2" bson:"line2"`
}

// User is a patient account. Password always stores a bcrypt hash.
type User struct {
	ID        string  `bson:"_id,omitempty"`
	Name      string  `bson:"name"`
	Email     string  `bson:"email"`
	Password  string  `bson:"password"`
	Image     string  `bson:"image,omitempty"`
	Phone     string  `bson:"phone,omitempty"`
	Address   Address `bson:"address,omitempty"`
	Dob       string  `bson:"dob,omitempty"`
	Gender    string  `bson:"gender,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) SetDataForUpdateProfile(name, phone, dob, gender string, address Address) {
	u.Name = name
	u.Phone = phone
	u.Dob = dob
	u.Gender = gender
	u.Address = address
	u.UpdatedAt = time.Now()
}

func (u *User) SetImage(imageURL string) {
	u.Image = imageURL
	u.UpdatedAt = time.Now()
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"name":      u.Name,
		"email":     u.Email,
		"password":  u.Password,
		"image":     u.Image,
		"phone":     u.Phone,
		"address":   u.Address,
		"dob":       u.Dob,
		"gender":    u.Gender,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}

// Snapshot returns the value copy embedded into appointments at booking
// time. It never carries the password hash.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		UserID:  u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Image:   u.Image,
		Phone:   u.Phone,
		Address: u.Address,
		Dob:     u.Dob,
		Gender:  u.Gender,
	}
}

type UserSnapshot struct {
	UserID  string  `json:"userId" bson:"userId"`
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Image   string  `json:"image" bson:"image"`
	Phone   string  `json:"phone" bson:"phone"`
	Address Address `json:"address" bson:"address"`
	Dob     string  `json:"dob" bson:"dob"`
	Gender  string  `json:"gender" bson:"gender"`
}

package requests

import "mime/multipart"

// AddDoctor is decoded from the admin panel's multipart form. The
// portrait image is mandatory.
type AddDoctor struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,password"`
	Speciality string  `json:"speciality" validate:"required"`
	Degree     string  `json:"degree" validate:"required"`
	Experience string  `json:"experience" validate:"required"`
	About      string  `json:"about" validate:"required"`
	Fees       int64   `json:"fees" validate:"required,gt=0"`
	Address    Address `json:"address"`

	Image       multipart.File        `json:"-" validate:"required"`
	ImageHeader *multipart.FileHeader `json:"-" validate:"required"`
}

type UpdateDoctorProfile struct {
	Fees      int64   `json:"fees" validate:"required,gt=0"`
	Address   Address `json:"address"`
	Available bool    `json:"available"`
}

type ChangeAvailability struct {
	DoctorID string `json:"docId" validate:"required"`
}

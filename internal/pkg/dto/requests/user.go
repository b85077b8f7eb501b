package requests

import "mime/multipart"

// UpdateProfile is decoded from a multipart form; Image is nil when the
// caller did not attach a new picture.
type UpdateProfile struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Phone   string  `json:"phone" validate:"required"`
	Dob     string  `json:"dob" validate:"required"`
	Gender  string  `json:"gender" validate:"required,oneof=Male Female Other 'Not Selected'"`
	Address Address `json:"address"`

	Image       multipart.File        `json:"-" validate:"-"`
	ImageHeader *multipart.FileHeader `json:"-" validate:"-"`
}

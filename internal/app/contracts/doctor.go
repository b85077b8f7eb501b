package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	LoginDoctor(ctx context.Context, request *requests.LoginDoctor) (*responses.Auth, error)
	ListDoctors(ctx context.Context) ([]responses.DoctorPublic, error)
	GetDoctorProfileBySession(ctx context.Context, sessionData string) (*responses.DoctorProfile, error)
	UpdateDoctorProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateDoctorProfile) error
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	// UpdateDoctorProfile writes only the doctor-editable profile
	// fields. It must never carry the slot map: a full-document write
	// would erase reservations landing between a read and this write.
	UpdateDoctorProfile(ctx context.Context, doctorModel *models.Doctor) error
	// ReserveSlot adds slotTime to the doctor's slot map for slotDate,
	// guarded so the write fails when the slot landed concurrently.
	// Returns false without error when the guard rejected the write.
	ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error)
	// ReleaseSlot removes slotTime from the doctor's slot map for
	// slotDate. Removing an absent entry is a no-op.
	ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error
	SetAvailability(ctx context.Context, doctorID string, available bool) error
}

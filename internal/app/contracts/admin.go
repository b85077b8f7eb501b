package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	LoginAdmin(ctx context.Context, request *requests.LoginAdmin) (*responses.Auth, error)
	AddDoctor(ctx context.Context, request *requests.AddDoctor) (*responses.AddDoctor, error)
	ListAllDoctors(ctx context.Context) ([]responses.DoctorAdminView, error)
	ChangeDoctorAvailability(ctx context.Context, request *requests.ChangeAvailability) error
}

package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	// Patient-facing operations
	BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error)
	ListUserAppointments(ctx context.Context, sessionData string) ([]responses.Appointment, error)
	CancelUserAppointment(ctx context.Context, sessionData string, request *requests.CancelAppointment) error

	// Doctor-facing operations
	ListDoctorAppointments(ctx context.Context, sessionData string) ([]responses.Appointment, error)
	CompleteDoctorAppointment(ctx context.Context, sessionData string, request *requests.CompleteAppointment) error
	CancelDoctorAppointment(ctx context.Context, sessionData string, request *requests.CancelAppointment) error
	GetDoctorDashboard(ctx context.Context, sessionData string) (*responses.DoctorDashboard, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	SetCancelled(ctx context.Context, appointmentID string) error
	SetCompleted(ctx context.Context, appointmentID string) error
	SetPaid(ctx context.Context, appointmentID string) error
}

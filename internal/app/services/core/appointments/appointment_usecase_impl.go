package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	SessionService        contracts.SessionService
	LockerService         contracts.LockerService
	EventPublisher        contracts.AppointmentEventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	doctorMongoRepository contracts.DoctorRepository,
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	eventPublisher contracts.AppointmentEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			DoctorRepository:      doctorMongoRepository,
			UserRepository:        userMongoRepository,
			SessionService:        sessionService,
			LockerService:         lockerService,
			EventPublisher:        eventPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

// BookAppointment reserves one (doctor, date, time) slot for the caller.
// The redis lock serializes competing bookings for the same slot; the
// guarded slot write catches anything the lock could not (expired TTL,
// a rebooted redis).
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	if !doctor.Available {
		return nil, exceptions.ErrDoctorNotAvailable(nil)
	}
	if doctor.HasSlot(request.SlotDate, request.SlotTime) {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	lockKey := fmt.Sprintf(constvars.SlotLockKeyFormat, request.DoctorID, request.SlotDate, request.SlotTime)
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	reserved, err := uc.DoctorRepository.ReserveSlot(ctx, request.DoctorID, request.SlotDate, request.SlotTime)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, exceptions.ErrSlotWriteConflict(nil)
	}

	appointmentModel := &models.Appointment{
		UserID:     session.UserID,
		DoctorID:   doctor.ID,
		SlotDate:   request.SlotDate,
		SlotTime:   request.SlotTime,
		UserData:   user.Snapshot(),
		DoctorData: doctor.Snapshot(),
		Amount:     doctor.Fees,
		BookedAt:   time.Now(),
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		// Roll back the slot so the doctor's calendar does not hold a
		// reservation without an appointment behind it.
		if releaseErr := uc.DoctorRepository.ReleaseSlot(ctx, request.DoctorID, request.SlotDate, request.SlotTime); releaseErr != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment error releasing slot after failed insert",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(releaseErr),
			)
		}
		return nil, err
	}
	appointmentModel.ID = appointmentID

	uc.publishEvent(ctx, constvars.AppointmentEventBooked, appointmentModel)

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	response := buildAppointmentResponse(appointmentModel)
	return &response, nil
}

func (uc *appointmentUsecase) ListUserAppointments(ctx context.Context, sessionData string) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) CancelUserAppointment(ctx context.Context, sessionData string, request *requests.CancelAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelUserAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.UserID != session.UserID {
		return exceptions.ErrNotAppointmentOwner(nil)
	}

	return uc.cancelAppointment(ctx, appointment)
}

func (uc *appointmentUsecase) ListDoctorAppointments(ctx context.Context, sessionData string) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) CompleteDoctorAppointment(ctx context.Context, sessionData string, request *requests.CompleteAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CompleteDoctorAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.DoctorID != session.DoctorID {
		return exceptions.ErrNotAppointmentOwner(nil)
	}
	if appointment.Cancelled {
		return exceptions.ErrAppointmentCancelled(nil)
	}

	err = uc.AppointmentRepository.SetCompleted(ctx, appointment.ID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventCompleted, appointment)

	uc.Log.Info("appointmentUsecase.CompleteDoctorAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}

func (uc *appointmentUsecase) CancelDoctorAppointment(ctx context.Context, sessionData string, request *requests.CancelAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelDoctorAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.DoctorID != session.DoctorID {
		return exceptions.ErrNotAppointmentOwner(nil)
	}

	return uc.cancelAppointment(ctx, appointment)
}

// GetDoctorDashboard aggregates the caller's appointments into earnings,
// distinct patient count and the five most recent bookings.
func (uc *appointmentUsecase) GetDoctorDashboard(ctx context.Context, sessionData string) (*responses.DoctorDashboard, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}

	var earnings int64
	patients := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.CountsTowardEarnings() {
			earnings += appointment.Amount
		}
		patients[appointment.UserID] = struct{}{}
	}

	latestCount := constvars.DashboardLatestAppointmentsLimit
	if len(appointments) < latestCount {
		latestCount = len(appointments)
	}
	latest := make([]responses.Appointment, 0, latestCount)
	for i := len(appointments) - 1; i >= len(appointments)-latestCount; i-- {
		latest = append(latest, buildAppointmentResponse(&appointments[i]))
	}

	return &responses.DoctorDashboard{
		Earnings:           earnings,
		Appointments:       len(appointments),
		Patients:           len(patients),
		LatestAppointments: latest,
	}, nil
}

// cancelAppointment flips the cancelled flag and frees the slot. A slot
// already released (or never present) stays a no-op.
func (uc *appointmentUsecase) cancelAppointment(ctx context.Context, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if appointment.Cancelled {
		return exceptions.ErrAppointmentCancelled(nil)
	}

	err := uc.AppointmentRepository.SetCancelled(ctx, appointment.ID)
	if err != nil {
		return err
	}

	err = uc.DoctorRepository.ReleaseSlot(ctx, appointment.DoctorID, appointment.SlotDate, appointment.SlotTime)
	if err != nil {
		uc.Log.Error("appointmentUsecase.cancelAppointment error releasing slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventCancelled, appointment)

	uc.Log.Info("appointmentUsecase.cancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}

// publishEvent is best effort: the booking flow never fails because the
// broker is down, the miss is logged instead.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, eventType string, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := &contracts.AppointmentEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		DoctorID:      appointment.DoctorID,
		SlotDate:      appointment.SlotDate,
		SlotTime:      appointment.SlotTime,
		Amount:        appointment.Amount,
	}

	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("appointmentUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:       appointment.ID,
		UserID:   appointment.UserID,
		DoctorID: appointment.DoctorID,
		SlotDate: appointment.SlotDate,
		SlotTime: appointment.SlotTime,
		UserData: responses.AppointmentUserData{
			UserID: appointment.UserData.UserID,
			Name:   appointment.UserData.Name,
			Email:  appointment.UserData.Email,
			Image:  appointment.UserData.Image,
			Phone:  appointment.UserData.Phone,
			Address: responses.Address{
				Line1: appointment.UserData.Address.Line1,
				Line2: appointment.UserData.Address.Line2,
			},
			Dob:    appointment.UserData.Dob,
			Gender: appointment.UserData.Gender,
		},
		DoctorData: responses.AppointmentDoctorData{
			DoctorID:   appointment.DoctorData.DoctorID,
			Name:       appointment.DoctorData.Name,
			Image:      appointment.DoctorData.Image,
			Speciality: appointment.DoctorData.Speciality,
			Degree:     appointment.DoctorData.Degree,
			Fees:       appointment.DoctorData.Fees,
			Address: responses.Address{
				Line1: appointment.DoctorData.Address.Line1,
				Line2: appointment.DoctorData.Address.Line2,
			},
		},
		Amount:      appointment.Amount,
		BookedAt:    appointment.BookedAt,
		Cancelled:   appointment.Cancelled,
		IsCompleted: appointment.IsCompleted,
		Payment:     appointment.Payment,
	}
}

func buildAppointmentResponses(appointments []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, buildAppointmentResponse(&appointments[i]))
	}
	return result
}

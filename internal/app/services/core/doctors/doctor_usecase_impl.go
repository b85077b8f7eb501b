package doctors

import (
	"context"
	"sync"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	SessionService   contracts.SessionService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		instance := &doctorUsecase{
			DoctorRepository: doctorMongoRepository,
			SessionService:   sessionService,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
		doctorUsecaseInstance = instance
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) LoginDoctor(ctx context.Context, request *requests.LoginDoctor) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.LoginDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingDoctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingDoctor == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, existingDoctor.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionModel := &models.Session{
		Role:      constvars.RoleTypeDoctor,
		DoctorID:  existingDoctor.ID,
		Email:     existingDoctor.Email,
		Name:      existingDoctor.Name,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour),
	}

	sessionID, err := uc.SessionService.CreateSession(ctx, sessionModel)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.LoginDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, existingDoctor.ID),
	)
	return &responses.Auth{Token: token}, nil
}

// ListDoctors returns the public roster, unavailable doctors included so
// the frontend can grey them out.
func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]responses.DoctorPublic, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]responses.DoctorPublic, 0, len(doctors))
	for _, doctor := range doctors {
		roster = append(roster, responses.DoctorPublic{
			ID:         doctor.ID,
			Name:       doctor.Name,
			Image:      doctor.Image,
			Speciality: doctor.Speciality,
			Degree:     doctor.Degree,
			Experience: doctor.Experience,
			About:      doctor.About,
			Fees:       doctor.Fees,
			Address: responses.Address{
				Line1: doctor.Address.Line1,
				Line2: doctor.Address.Line2,
			},
			Available:   doctor.Available,
			SlotsBooked: doctor.SlotsBooked,
		})
	}
	return roster, nil
}

func (uc *doctorUsecase) GetDoctorProfileBySession(ctx context.Context, sessionData string) (*responses.DoctorProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existingDoctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if existingDoctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	return &responses.DoctorProfile{
		ID:         existingDoctor.ID,
		Name:       existingDoctor.Name,
		Email:      existingDoctor.Email,
		Image:      existingDoctor.Image,
		Speciality: existingDoctor.Speciality,
		Degree:     existingDoctor.Degree,
		Experience: existingDoctor.Experience,
		About:      existingDoctor.About,
		Fees:       existingDoctor.Fees,
		Address: responses.Address{
			Line1: existingDoctor.Address.Line1,
			Line2: existingDoctor.Address.Line2,
		},
		Available:   existingDoctor.Available,
		SlotsBooked: existingDoctor.SlotsBooked,
	}, nil
}

func (uc *doctorUsecase) UpdateDoctorProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateDoctorProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctorProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	existingDoctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return err
	}
	if existingDoctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	existingDoctor.SetDataForUpdateProfile(request.Fees, models.Address{
		Line1: request.Address.Line1,
		Line2: request.Address.Line2,
	}, request.Available)

	err = uc.DoctorRepository.UpdateDoctorProfile(ctx, existingDoctor)
	if err != nil {
		return err
	}

	uc.Log.Info("doctorUsecase.UpdateDoctorProfileBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, existingDoctor.ID),
	)
	return nil
}

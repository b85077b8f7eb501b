package admin

import (
	"context"
	"crypto/subtle"
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
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

type adminUsecase struct {
	DoctorRepository contracts.DoctorRepository
	MinioStorage     contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAdminUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		instance := &adminUsecase{
			DoctorRepository: doctorMongoRepository,
			MinioStorage:     minioStorage,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
		adminUsecaseInstance = instance
	})
	return adminUsecaseInstance
}

// LoginAdmin compares against the single configured console identity,
// there is no admin collection.
func (uc *adminUsecase) LoginAdmin(ctx context.Context, request *requests.LoginAdmin) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.LoginAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	emailMatch := subtle.ConstantTimeCompare([]byte(request.Email), []byte(uc.InternalConfig.Admin.Email)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(request.Password), []byte(uc.InternalConfig.Admin.Password)) == 1
	if uc.InternalConfig.Admin.Email == "" || !emailMatch || !passwordMatch {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := utils.GenerateAdminJWT(uc.InternalConfig.Admin.Email, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("adminUsecase.LoginAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Auth{Token: token}, nil
}

func (uc *adminUsecase) AddDoctor(ctx context.Context, request *requests.AddDoctor) (*responses.AddDoctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.AddDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingDoctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingDoctor != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	objectName := utils.GenerateFileName("doctor", request.Speciality, utils.ImageExtension(request.ImageHeader))
	imageURL, err := uc.MinioStorage.UploadFile(ctx, request.Image, request.ImageHeader, objectName)
	if err != nil {
		uc.Log.Error("adminUsecase.AddDoctor error uploading portrait",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now()
	doctorModel := &models.Doctor{
		Name:       request.Name,
		Email:      request.Email,
		Password:   hashedPassword,
		Image:      imageURL,
		Speciality: request.Speciality,
		Degree:     request.Degree,
		Experience: request.Experience,
		About:      request.About,
		Fees:       request.Fees,
		Address: models.Address{
			Line1: request.Address.Line1,
			Line2: request.Address.Line2,
		},
		Available:   true,
		SlotsBooked: map[string][]string{},
	}
	doctorModel.CreatedAt = now
	doctorModel.UpdatedAt = now

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctorModel)
	if err != nil {
		uc.Log.Error("adminUsecase.AddDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("adminUsecase.AddDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &responses.AddDoctor{DoctorID: doctorID}, nil
}

func (uc *adminUsecase) ListAllDoctors(ctx context.Context) ([]responses.DoctorAdminView, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]responses.DoctorAdminView, 0, len(doctors))
	for _, doctor := range doctors {
		roster = append(roster, responses.DoctorAdminView{
			ID:         doctor.ID,
			Name:       doctor.Name,
			Email:      doctor.Email,
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

func (uc *adminUsecase) ChangeDoctorAvailability(ctx context.Context, request *requests.ChangeAvailability) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.ChangeDoctorAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	existingDoctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return err
	}
	if existingDoctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	err = uc.DoctorRepository.SetAvailability(ctx, existingDoctor.ID, !existingDoctor.Available)
	if err != nil {
		return err
	}

	uc.Log.Info("adminUsecase.ChangeDoctorAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, existingDoctor.ID),
		zap.Bool("available", !existingDoctor.Available),
	)
	return nil
}

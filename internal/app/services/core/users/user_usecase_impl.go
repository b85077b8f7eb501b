package users

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
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository: userMongoRepository,
			SessionService: sessionService,
			MinioStorage:   minioStorage,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
	}
	userModel.CreatedAt = now
	userModel.UpdatedAt = now

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		uc.Log.Error("userUsecase.RegisterUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := uc.createPatientSession(ctx, userID, userModel.Email, userModel.Name)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Auth{Token: token}, nil
}

func (uc *userUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, existingUser.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := uc.createPatientSession(ctx, existingUser.ID, existingUser.Email, existingUser.Name)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, existingUser.ID),
	)
	return &responses.Auth{Token: token}, nil
}

func (uc *userUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existingUser, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.UserProfile{
		ID:    existingUser.ID,
		Name:  existingUser.Name,
		Email: existingUser.Email,
		Image: existingUser.Image,
		Phone: existingUser.Phone,
		Address: responses.Address{
			Line1: existingUser.Address.Line1,
			Line2: existingUser.Address.Line2,
		},
		Dob:    existingUser.Dob,
		Gender: existingUser.Gender,
	}, nil
}

func (uc *userUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	existingUser, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if existingUser == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	existingUser.SetDataForUpdateProfile(request.Name, request.Phone, request.Dob, request.Gender, models.Address{
		Line1: request.Address.Line1,
		Line2: request.Address.Line2,
	})

	if request.Image != nil && request.ImageHeader != nil {
		objectName := utils.GenerateFileName("profile", existingUser.ID, utils.ImageExtension(request.ImageHeader))
		imageURL, err := uc.MinioStorage.UploadFile(ctx, request.Image, request.ImageHeader, objectName)
		if err != nil {
			uc.Log.Error("userUsecase.UpdateUserProfileBySession error uploading image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		existingUser.SetImage(imageURL)
	}

	err = uc.UserRepository.UpdateUser(ctx, existingUser)
	if err != nil {
		return err
	}

	uc.Log.Info("userUsecase.UpdateUserProfileBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, existingUser.ID),
	)
	return nil
}

func (uc *userUsecase) createPatientSession(ctx context.Context, userID, email, name string) (string, error) {
	sessionModel := &models.Session{
		Role:      constvars.RoleTypePatient,
		UserID:    userID,
		Email:     email,
		Name:      name,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour),
	}

	sessionID, err := uc.SessionService.CreateSession(ctx, sessionModel)
	if err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
}

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewSessionService(repo contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		instance := &sessionService{
			redisRepo: repo,
			Log:       logger,
		}
		sessionServiceInstance = instance
	})
	return sessionServiceInstance
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID := uuid.NewString()
	session.SessionID = sessionID

	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	err := s.redisRepo.Set(ctx, key, session, time.Until(session.ExpiresAt))
	if err != nil {
		s.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	s.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return sessionID, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	data, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if data == "" {
		return "", exceptions.ErrTokenInvalid(nil)
	}
	return data, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrMissingSessionData(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	return s.redisRepo.Delete(ctx, key)
}

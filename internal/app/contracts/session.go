package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type SessionService interface {
	// CreateSession stores the session in redis and returns its id.
	CreateSession(ctx context.Context, session *models.Session) (string, error)
	// GetSessionData returns the raw session JSON stored under sessionID.
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	// ParseSessionData decodes the raw session JSON carried in context.
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

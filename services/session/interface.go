package session

import (
	"context"

	"yachtmatch/models"
)

// Store persists conversation sessions keyed by (app, user). The latest
// session for a user is looked up on every turn; a new one is created on
// first contact.
type Store interface {
	Get(ctx context.Context, userID string) (*models.Session, error)
	Create(ctx context.Context, userID string) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session) error
	Clear(ctx context.Context, userID string) error
}

package repository

import (
	"context"
	"errors"

	"walkey/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWalkSessionNotFound is returned when a walk session lookup yields nothing.
var ErrWalkSessionNotFound = errors.New("walk session not found")

// WalkSessionRepository defines persistence for walk sessions.
type WalkSessionRepository interface {
	// Create stores a new session and fills its generated id.
	Create(ctx context.Context, session *entity.WalkSession) error

	// FindByID retrieves a single session.
	FindByID(ctx context.Context, id int64) (*entity.WalkSession, error)

	// FindActiveByUser returns the user's open session, or ErrWalkSessionNotFound.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.WalkSession, error)

	// FindByUser returns all sessions of a user, newest first, with their routes preloaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WalkSession, error)

	// End writes the end time and actual figures of an open session.
	// It returns ErrWalkSessionNotFound when the session is missing or already ended.
	End(ctx context.Context, session *entity.WalkSession) error
}

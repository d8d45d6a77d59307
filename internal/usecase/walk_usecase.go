package usecase

import (
	"context"

	"walkey/internal/domain/entity"

	"github.com/google/uuid"
)

// WalkHistory is a user's walk sessions with their totals.
type WalkHistory struct {
	User     *entity.User
	Summary  entity.WalkSummary
	Sessions []*entity.WalkSession
}

// WalkUsecase manages walk sessions.
type WalkUsecase interface {
	// StartSession opens a walk on a route. A user may have only one open session.
	StartSession(ctx context.Context, userID uuid.UUID, routeID int64) (*entity.WalkSession, error)

	// EndSession closes the caller's open session with the walked distance (meters) and duration (minutes).
	EndSession(ctx context.Context, userID uuid.UUID, sessionID int64, actualDistance float64, actualDuration int) (*entity.WalkSession, error)

	// GetUserSessions returns the walk history of the user with the given handle.
	GetUserSessions(ctx context.Context, username string) (*WalkHistory, error)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "walkey/internal/delivery/context"
	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WalkServiceParams holds the dependencies of the walk service.
type WalkServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	RouteRepo   repository.RouteRepository
	SessionRepo repository.WalkSessionRepository
	Logger      *slog.Logger
}

// walkService implements the WalkUsecase interface.
type walkService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	routeRepo   repository.RouteRepository
	sessionRepo repository.WalkSessionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewWalkService is the constructor for walkService.
func NewWalkService(params WalkServiceParams) usecase.WalkUsecase {
	return &walkService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		routeRepo:   params.RouteRepo,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *walkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession opens a new walk. The open-session check and insert share one transaction.
func (srv *walkService) StartSession(ctx context.Context, userID uuid.UUID, routeID int64) (*entity.WalkSession, error) {
	if _, err := srv.routeRepo.FindByID(ctx, routeID); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.WithMessage(err, "failed to find route")
	}

	session := &entity.WalkSession{
		UserID:    userID,
		RouteID:   routeID,
		StartTime: srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		sessionRepo := repoFactory.NewWalkSessionRepository()

		// 1. Verify user exists
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Reject a second open session
		active, err := sessionRepo.FindActiveByUser(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrWalkSessionNotFound) {
			return errors.Wrap(err, "failed to find active session")
		}
		if active != nil {
			return domainerrors.ErrSessionAlreadyActive
		}

		// 3. Persist
		return sessionRepo.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Walk session started",
		slog.Int64("session_id", session.ID),
		slog.Int64("route_id", routeID))

	return session, nil
}

// EndSession closes an open session owned by userID.
func (srv *walkService) EndSession(ctx context.Context, userID uuid.UUID, sessionID int64, actualDistance float64, actualDuration int) (*entity.WalkSession, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrWalkSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.WithMessage(err, "failed to find session")
	}

	// Another user's session is reported as missing rather than forbidden.
	if session.UserID != userID {
		return nil, domainerrors.ErrSessionNotFound
	}
	if !session.IsActive() {
		return nil, domainerrors.ErrSessionAlreadyEnded
	}

	session.End(srv.now(), actualDistance, actualDuration)
	if err := srv.sessionRepo.End(ctx, session); err != nil {
		if errors.Is(err, repository.ErrWalkSessionNotFound) {
			return nil, domainerrors.ErrSessionAlreadyEnded
		}

		return nil, errors.WithMessage(err, "failed to end session")
	}

	srv.log(ctx).Info("Walk session ended",
		slog.Int64("session_id", session.ID),
		slog.Float64("actual_distance", actualDistance),
		slog.Int("actual_duration", actualDuration))

	return session, nil
}

// GetUserSessions returns all sessions of a user with planned and actual totals.
func (srv *walkService) GetUserSessions(ctx context.Context, username string) (*usecase.WalkHistory, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.WithMessage(err, "failed to find user")
	}

	sessions, err := srv.sessionRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to find sessions")
	}

	return &usecase.WalkHistory{
		User:     user,
		Summary:  entity.SummarizeWalks(sessions),
		Sessions: sessions,
	}, nil
}

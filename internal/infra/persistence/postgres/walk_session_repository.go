package postgres

import (
	"context"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// walkSessionRepository implements repository.WalkSessionRepository using GORM.
type walkSessionRepository struct {
	db *gorm.DB
}

// NewWalkSessionRepository is the constructor for walkSessionRepository.
func NewWalkSessionRepository(db *gorm.DB) repository.WalkSessionRepository {
	return &walkSessionRepository{db: db}
}

func (repo *walkSessionRepository) Create(ctx context.Context, session *entity.WalkSession) error {
	sessionM := fromWalkSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSessionAlreadyActive.WrapMessage("open session already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRouteNotFound.WrapMessage("walk session references a missing route or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create walk session")
	}

	session.ID = sessionM.ID

	return nil
}

func (repo *walkSessionRepository) FindByID(ctx context.Context, id int64) (*entity.WalkSession, error) {
	var sessionM model.WalkSessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalkSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find walk session")
	}

	return toWalkSessionDomain(&sessionM), nil
}

func (repo *walkSessionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.WalkSession, error) {
	var sessionM model.WalkSessionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalkSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active walk session")
	}

	return toWalkSessionDomain(&sessionM), nil
}

func (repo *walkSessionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WalkSession, error) {
	var rows []*model.WalkSessionModel
	err := repo.db.WithContext(ctx).
		Preload("Route").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find walk sessions")
	}

	sessions := make([]*entity.WalkSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, toWalkSessionDomain(row))
	}

	return sessions, nil
}

// End only touches rows that are still open, so a concurrent second end is a no-op reported as not found.
func (repo *walkSessionRepository) End(ctx context.Context, session *entity.WalkSession) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalkSessionModel{}).
		Where("id = ? AND end_time IS NULL", session.ID).
		Updates(map[string]any{
			"end_time":        session.EndTime,
			"actual_distance": session.ActualDistance,
			"actual_duration": session.ActualDuration,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to end walk session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWalkSessionNotFound
	}

	return nil
}

func toWalkSessionDomain(data *model.WalkSessionModel) *entity.WalkSession {
	if data == nil {
		return nil
	}

	return &entity.WalkSession{
		ID:             data.ID,
		UserID:         data.UserID,
		RouteID:        data.RouteID,
		Route:          toRouteDomain(data.Route),
		StartTime:      data.StartTime,
		EndTime:        data.EndTime,
		ActualDistance: data.ActualDistance,
		ActualDuration: data.ActualDuration,
	}
}

func fromWalkSessionDomain(data *entity.WalkSession) *model.WalkSessionModel {
	if data == nil {
		return nil
	}

	return &model.WalkSessionModel{
		ID:             data.ID,
		UserID:         data.UserID,
		RouteID:        data.RouteID,
		StartTime:      data.StartTime,
		EndTime:        data.EndTime,
		ActualDistance: data.ActualDistance,
		ActualDuration: data.ActualDuration,
	}
}

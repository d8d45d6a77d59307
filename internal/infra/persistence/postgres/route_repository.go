// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRepository implements repository.RouteRepository using GORM.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// FindRoutesByTheme selects routes of a theme whose estimated time lies in [minDuration, maxDuration].
func (repo *routeRepository) FindRoutesByTheme(ctx context.Context, themeID, minDuration, maxDuration int) ([]*entity.Route, error) {
	var rows []*model.RouteModel
	err := repo.db.WithContext(ctx).
		Preload("Theme").
		Where("theme_id = ? AND estimated_time BETWEEN ? AND ?", themeID, minDuration, maxDuration).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find routes by theme")
	}

	routes := make([]*entity.Route, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, toRouteDomain(row))
	}

	return routes, nil
}

// FindByID retrieves a single route with its theme.
func (repo *routeRepository) FindByID(ctx context.Context, id int64) (*entity.Route, error) {
	var row model.RouteModel
	err := repo.db.WithContext(ctx).Preload("Theme").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find route by id")
	}

	return toRouteDomain(&row), nil
}

// UpdateDetailPaths overwrites the detail_paths column of one route.
func (repo *routeRepository) UpdateDetailPaths(ctx context.Context, id int64, path []entity.LatLng) error {
	encoded, err := entity.EncodePath(path)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Where("id = ?", id).
		Update("detail_paths", encoded)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update detail paths")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

// themeRepository implements repository.ThemeRepository using GORM.
type themeRepository struct {
	db *gorm.DB
}

// NewThemeRepository is the constructor for themeRepository.
func NewThemeRepository(db *gorm.DB) repository.ThemeRepository {
	return &themeRepository{db: db}
}

// FindAll returns every theme ordered by id.
func (repo *themeRepository) FindAll(ctx context.Context) ([]*entity.Theme, error) {
	var rows []*model.ThemeModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find themes")
	}

	themes := make([]*entity.Theme, 0, len(rows))
	for _, row := range rows {
		themes = append(themes, toThemeDomain(row))
	}

	return themes, nil
}

// --- Mapper Functions ---

// toRouteDomain converts a RouteModel to a domain Route. A malformed detail_paths
// column maps to an empty path so the route is enriched again and the column overwritten.
func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	route := &entity.Route{
		ID:            data.ID,
		ThemeID:       data.ThemeID,
		Name:          data.Name,
		EstimatedTime: data.EstimatedTime,
		TotalDistance: data.TotalDistance,
		ThumbnailURL:  data.ThumbnailURL,
		Paths:         []string(data.Paths),
	}
	if data.Theme != nil {
		route.ThemeTitle = data.Theme.Title
	}

	if data.DetailPaths != nil {
		if detail, err := entity.DecodePath(*data.DetailPaths); err == nil {
			route.DetailPaths = detail
		}
	}

	return route
}

// toThemeDomain converts a ThemeModel to a domain Theme.
func toThemeDomain(data *model.ThemeModel) *entity.Theme {
	if data == nil {
		return nil
	}

	return &entity.Theme{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

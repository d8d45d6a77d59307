package repository

import (
	"context"
	"errors"

	"walkey/internal/domain/entity"
)

// ErrRouteNotFound is returned when no route matches the requested id.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository defines read access to the route catalog and the detail-path write-back.
type RouteRepository interface {
	// FindRoutesByTheme returns the routes of a theme whose estimated time lies in the
	// closed interval [minDuration, maxDuration], ordered by id.
	FindRoutesByTheme(ctx context.Context, themeID, minDuration, maxDuration int) ([]*entity.Route, error)

	// FindByID retrieves a single route.
	FindByID(ctx context.Context, id int64) (*entity.Route, error)

	// UpdateDetailPaths overwrites the stored dense path of a route.
	UpdateDetailPaths(ctx context.Context, id int64, path []entity.LatLng) error
}

// ThemeRepository defines read access to route themes.
type ThemeRepository interface {
	// FindAll returns every theme ordered by id.
	FindAll(ctx context.Context) ([]*entity.Theme, error)
}

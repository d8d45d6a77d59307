package usecase

import (
	"context"

	"walkey/internal/domain/entity"
)

const (
	// MaxRecommendedRoutes caps the number of routes returned for one recommendation.
	MaxRecommendedRoutes = 5

	// DurationToleranceMinutes is how much longer than requested a route may take.
	// Routes shorter than the request are never recommended.
	DurationToleranceMinutes = 10
)

// RouteUsecase recommends routes and maintains their detailed pedestrian paths.
type RouteUsecase interface {
	// GetRecommendedRoutes returns at most MaxRecommendedRoutes routes of the theme whose estimated
	// time is within [targetMinutes, targetMinutes+DurationToleranceMinutes], closest first.
	// Missing detail paths are filled in best-effort before returning.
	GetRecommendedRoutes(ctx context.Context, themeID, targetMinutes int) ([]*entity.Route, error)

	// EnrichRoute computes and stores the detail path of a single route and reports any failure.
	// A route that already has a detail path is returned as-is unless force is set.
	EnrichRoute(ctx context.Context, routeID int64, force bool) (*entity.Route, error)
}

// ThemeUsecase lists route themes.
type ThemeUsecase interface {
	ListThemes(ctx context.Context) ([]*entity.Theme, error)
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"walkey/config"
	deliverycontext "walkey/internal/delivery/context"
	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/domain/service"
	"walkey/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouteServiceParams holds the dependencies of the route service.
type RouteServiceParams struct {
	fx.In

	Config    *config.Config
	RouteRepo repository.RouteRepository
	Router    service.PedestrianRouter
	Logger    *slog.Logger
}

// routeService implements the RouteUsecase interface.
type routeService struct {
	routeRepo     repository.RouteRepository
	router        service.PedestrianRouter
	enrichEnabled bool
	logger        *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	enrich := true
	if params.Config != nil && params.Config.Recommendation != nil {
		enrich = params.Config.Recommendation.EnrichDetailPaths
	}

	return &routeService{
		routeRepo:     params.RouteRepo,
		router:        params.Router,
		enrichEnabled: enrich,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRecommendedRoutes selects, ranks and truncates candidate routes, then enriches the survivors.
// Only a read failure aborts the request; enrichment problems are logged per route.
func (srv *routeService) GetRecommendedRoutes(ctx context.Context, themeID, targetMinutes int) ([]*entity.Route, error) {
	candidates, err := srv.routeRepo.FindRoutesByTheme(ctx, themeID, targetMinutes, targetMinutes+usecase.DurationToleranceMinutes)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to find candidate routes")
	}

	routes := rankRoutes(candidates, targetMinutes, usecase.MaxRecommendedRoutes)

	srv.log(ctx).Debug("Recommended routes selected",
		slog.Int("theme_id", themeID),
		slog.Int("target_minutes", targetMinutes),
		slog.Int("candidates", len(candidates)),
		slog.Int("selected", len(routes)))

	if srv.enrichEnabled {
		// The caller going away must not abort enrichment; results are persisted for later requests.
		srv.ensureDetailPaths(context.WithoutCancel(ctx), routes)
	}

	return routes, nil
}

// rankRoutes stable-sorts by distance to the target duration and keeps at most limit routes.
// The input slice is not modified.
func rankRoutes(routes []*entity.Route, targetMinutes, limit int) []*entity.Route {
	ranked := slices.Clone(routes)
	if ranked == nil {
		ranked = []*entity.Route{}
	}

	slices.SortStableFunc(ranked, func(a, b *entity.Route) int {
		return cmp.Compare(a.DurationGap(targetMinutes), b.DurationGap(targetMinutes))
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// EnrichRoute is the strict counterpart of the recommendation flow: every failure is returned.
func (srv *routeService) EnrichRoute(ctx context.Context, routeID int64, force bool) (*entity.Route, error) {
	route, err := srv.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.WithMessage(err, "failed to find route")
	}

	if route.HasDetailPath() && !force {
		return route, nil
	}

	if err := srv.enrich(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}

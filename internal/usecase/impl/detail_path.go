package impl

import (
	"context"
	"log/slog"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/service"

	"github.com/pkg/errors"
)

// ensureDetailPaths fills missing detail paths one route at a time. Routes are processed
// sequentially to bound concurrent calls to the rate-limited routing API. A failing route
// is logged and left without a detail path; it never affects its siblings.
func (srv *routeService) ensureDetailPaths(ctx context.Context, routes []*entity.Route) {
	for idx, route := range routes {
		if route.HasDetailPath() {
			continue
		}

		err := srv.enrich(ctx, route)
		if err == nil {
			continue
		}

		attrs := []any{
			slog.Int64("route_id", route.ID),
			slog.Int("index", idx),
			slog.Any("error", err),
		}
		if errors.Is(err, domainerrors.ErrInvalidWaypointSequence) {
			srv.log(ctx).Warn("Skipping detail path for route with too few waypoints", attrs...)
		} else {
			srv.log(ctx).Error("Failed to enrich route detail path", attrs...)
		}
	}
}

// enrich computes, persists and then attaches the detail path of a single route.
// The in-memory route is only updated once the write succeeded.
func (srv *routeService) enrich(ctx context.Context, route *entity.Route) error {
	stops, invalid := route.Waypoints()
	for _, i := range invalid {
		srv.log(ctx).Warn("Dropping unparseable waypoint",
			slog.Int64("route_id", route.ID),
			slog.Int("path_index", i))
	}

	if len(stops) < 2 {
		return errors.WithMessagef(domainerrors.ErrInvalidWaypointSequence, "route %d has %d usable waypoints", route.ID, len(stops))
	}

	path, err := MergeDetailPath(ctx, srv.router, stops)
	if err != nil {
		return err
	}

	if err := srv.routeRepo.UpdateDetailPaths(ctx, route.ID, path); err != nil {
		return domainerrors.NewPersistenceError(err, route.ID)
	}

	route.DetailPaths = path
	srv.log(ctx).Info("Route detail path stored",
		slog.Int64("route_id", route.ID),
		slog.Int("stops", len(stops)),
		slog.Int("points", len(path)))

	return nil
}

// MergeDetailPath stitches the pedestrian segments between consecutive stops into one path.
//
// Every stop appears in the result, in order. For each pair the router's interior points
// (all but the first and last) are inserted between the two stops, skipping a point that
// equals the entry before it and trailing points that equal the next stop. The result
// therefore never holds two identical consecutive routing points and holds each stop once
// at its own position. Any router failure fails the whole merge with a *RoutingServiceError.
// Two equal consecutive stops are both kept: the duplicate guarantee covers routing points only.
func MergeDetailPath(ctx context.Context, router service.PedestrianRouter, stops []entity.LatLng) ([]entity.LatLng, error) {
	for i, stop := range stops {
		if !stop.IsValid() {
			return nil, domainerrors.NewInvalidWaypointError(i, stop.Lat, stop.Lng)
		}
	}
	if len(stops) < 2 {
		return nil, domainerrors.ErrInvalidWaypointSequence
	}

	merged := make([]entity.LatLng, 0, len(stops))
	for i := range len(stops) - 1 {
		from, to := stops[i], stops[i+1]
		merged = append(merged, from)

		segment, err := router.GetPedestrianSegment(ctx, from, to)
		if err != nil {
			return nil, segmentError(err, i)
		}

		for _, p := range interiorPoints(segment, to) {
			if p.Equal(merged[len(merged)-1]) {
				continue
			}
			merged = append(merged, p)
		}
	}

	return append(merged, stops[len(stops)-1]), nil
}

// interiorPoints drops the first and last element of a segment and any trailing points equal to next.
func interiorPoints(segment []entity.LatLng, next entity.LatLng) []entity.LatLng {
	if len(segment) <= 2 {
		return nil
	}

	interior := segment[1 : len(segment)-1]
	for len(interior) > 0 && interior[len(interior)-1].Equal(next) {
		interior = interior[:len(interior)-1]
	}

	return interior
}

func segmentError(err error, segment int) error {
	var rse *domainerrors.RoutingServiceError
	if errors.As(err, &rse) {
		return domainerrors.NewRoutingServiceError(rse.Unwrap(), segment)
	}

	return domainerrors.NewRoutingServiceError(err, segment)
}

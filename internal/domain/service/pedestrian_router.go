package service

import (
	"context"

	"walkey/internal/domain/entity"
)

// PedestrianRouter computes a walkable path between two points.
type PedestrianRouter interface {
	// GetPedestrianSegment returns the dense coordinate sequence of the walking path from
	// start to end. The sequence normally begins near start and ends near end.
	GetPedestrianSegment(ctx context.Context, start, end entity.LatLng) ([]entity.LatLng, error)
}

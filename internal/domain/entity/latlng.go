// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"bytes"
	"math"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// LatLng is a single WGS84 coordinate. It is a pure value type with no identity.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether both components are finite numbers.
func (p LatLng) IsValid() bool {
	return isFinite(p.Lat) && isFinite(p.Lng)
}

// Equal reports exact coordinate equality on both components.
func (p LatLng) Equal(other LatLng) bool {
	return p.Lat == other.Lat && p.Lng == other.Lng
}

// Point converts the coordinate to an orb.Point, which is ordered [lng, lat].
func (p LatLng) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// LatLngFromPoint converts an orb.Point ([lng, lat]) into a LatLng.
func LatLngFromPoint(pt orb.Point) LatLng {
	return LatLng{Lat: pt.Lat(), Lng: pt.Lon()}
}

// LineString converts a coordinate sequence to an orb.LineString.
func LineString(points []LatLng) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, p.Point())
	}

	return ls
}

// waypointJSON distinguishes an absent or null component from a zero coordinate.
type waypointJSON struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (w *waypointJSON) toLatLng() (LatLng, bool) {
	if w == nil || w.Lat == nil || w.Lng == nil {
		return LatLng{}, false
	}

	return LatLng{Lat: *w.Lat, Lng: *w.Lng}, true
}

// ParseWaypoint decodes one stored waypoint string. A string may hold a single
// {"lat","lng"} object or a polyline fragment encoded as an array of them.
// Both components must be present and numeric in every object; null is rejected.
func ParseWaypoint(raw string) ([]LatLng, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return nil, errors.New("empty waypoint")
	}

	var decoded []*waypointJSON
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &decoded); err != nil {
			return nil, errors.Wrap(err, "decode waypoint fragment")
		}
		if len(decoded) == 0 {
			return nil, errors.New("empty waypoint fragment")
		}
	case '{':
		var single *waypointJSON
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, errors.Wrap(err, "decode waypoint")
		}
		decoded = []*waypointJSON{single}
	default:
		return nil, errors.Errorf("waypoint is not an object or array: %.20q", trimmed)
	}

	points := make([]LatLng, 0, len(decoded))
	for i, w := range decoded {
		point, ok := w.toLatLng()
		if !ok {
			return nil, errors.Errorf("waypoint %d is missing lat or lng", i)
		}
		points = append(points, point)
	}

	return points, nil
}

// EncodePath serializes a coordinate sequence for storage.
func EncodePath(points []LatLng) (string, error) {
	encoded, err := json.Marshal(points)
	if err != nil {
		return "", errors.Wrap(err, "encode path")
	}

	return string(encoded), nil
}

// DecodePath parses a stored coordinate sequence. Empty input yields an empty path.
func DecodePath(raw string) ([]LatLng, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	var points []LatLng
	if err := json.Unmarshal(trimmed, &points); err != nil {
		return nil, errors.Wrap(err, "decode path")
	}

	return points, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

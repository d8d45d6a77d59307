package entity

// Route is a walking route in the catalog.
type Route struct {
	ID            int64    // Primary key.
	ThemeID       int      // The theme this route belongs to.
	ThemeTitle    string   // Denormalized theme title, filled when the theme is preloaded.
	Name          string   // Display name.
	EstimatedTime int      // Estimated walking time in minutes.
	TotalDistance float64  // Total distance in meters.
	ThumbnailURL  string   // Thumbnail image URL.
	Paths         []string // Coarse waypoints as stored, each a serialized {lat,lng} or fragment.
	DetailPaths   []LatLng // Dense pedestrian path, empty until enriched.
}

// HasDetailPath reports whether the dense path was already computed.
func (r *Route) HasDetailPath() bool {
	return len(r.DetailPaths) > 0
}

// DurationGap returns the absolute difference between the route's estimated time and target.
func (r *Route) DurationGap(targetMinutes int) int {
	gap := r.EstimatedTime - targetMinutes
	if gap < 0 {
		return -gap
	}

	return gap
}

// Waypoints parses Paths in order and flattens fragments into one stop sequence.
// Entries that fail to parse are skipped and their indexes returned in invalid.
func (r *Route) Waypoints() (points []LatLng, invalid []int) {
	points = make([]LatLng, 0, len(r.Paths))
	for i, raw := range r.Paths {
		parsed, err := ParseWaypoint(raw)
		if err != nil {
			invalid = append(invalid, i)

			continue
		}
		points = append(points, parsed...)
	}

	return points, invalid
}

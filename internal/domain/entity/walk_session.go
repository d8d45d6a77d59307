package entity

import (
	"time"

	"github.com/google/uuid"
)

// WalkSession is one walk a user takes along a route.
// A session is open (active) until EndTime is set.
type WalkSession struct {
	ID             int64
	UserID         uuid.UUID
	RouteID        int64
	Route          *Route // Preloaded route, nil unless requested.
	StartTime      time.Time
	EndTime        *time.Time
	ActualDistance float64 // Meters actually walked, reported when the session ends.
	ActualDuration int     // Minutes actually walked, reported when the session ends.
}

// IsActive reports whether the session has not been ended yet.
func (s *WalkSession) IsActive() bool {
	return s.EndTime == nil
}

// End closes the session with the walked distance and duration.
func (s *WalkSession) End(at time.Time, actualDistance float64, actualDuration int) {
	s.EndTime = &at
	s.ActualDistance = actualDistance
	s.ActualDuration = actualDuration
}

// WalkSummary aggregates a user's walk history.
type WalkSummary struct {
	TotalDistance  float64 `json:"total_distance"`  // Sum of the routes' planned distances.
	TotalDuration  int     `json:"total_duration"`  // Sum of the routes' estimated times.
	ActualDistance float64 `json:"actual_distance"` // Sum of distances actually walked.
	ActualDuration int     `json:"actual_duration"` // Sum of minutes actually walked.
}

// SummarizeWalks totals planned and actual figures across sessions.
// Sessions without a preloaded route only contribute actual figures.
func SummarizeWalks(sessions []*WalkSession) WalkSummary {
	var summary WalkSummary
	for _, s := range sessions {
		summary.ActualDistance += s.ActualDistance
		summary.ActualDuration += s.ActualDuration
		if s.Route != nil {
			summary.TotalDistance += s.Route.TotalDistance
			summary.TotalDuration += s.Route.EstimatedTime
		}
	}

	return summary
}

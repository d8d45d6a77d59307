package errors

import (
	"fmt"
	"net/http"

	"walkey/internal/errors"
)

// ErrInvalidWaypointSequence is returned when a route has fewer than two usable waypoints,
// so no pedestrian path can be computed for it.
var ErrInvalidWaypointSequence = NewBaseError(
	http.StatusUnprocessableEntity,
	"INVALID_WAYPOINT_SEQUENCE",
	"경로 좌표가 두 개 이상 필요합니다",
	"",
)

// InvalidWaypointError reports a waypoint whose coordinates are not finite numbers.
type InvalidWaypointError struct {
	Index int
	Lat   float64
	Lng   float64
}

// NewInvalidWaypointError creates an error identifying the offending waypoint.
func NewInvalidWaypointError(index int, lat, lng float64) *InvalidWaypointError {
	return &InvalidWaypointError{Index: index, Lat: lat, Lng: lng}
}

func (e *InvalidWaypointError) Error() string {
	return fmt.Sprintf("invalid waypoint at index %d: lat=%v lng=%v", e.Index, e.Lat, e.Lng)
}

func (e *InvalidWaypointError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *InvalidWaypointError) ErrorCode() string { return "INVALID_WAYPOINT" }
func (e *InvalidWaypointError) Message() string {
	return "잘못된 경로 좌표가 포함되어 있습니다"
}
func (e *InvalidWaypointError) Details() string { return e.Error() }

// RoutingServiceError wraps any failure of the external pedestrian-routing service:
// transport errors, timeouts, non-2xx answers, malformed bodies and an open circuit.
type RoutingServiceError struct {
	err     error
	segment int
}

// NewRoutingServiceError wraps err for the given segment index. Use -1 when the segment is unknown.
func NewRoutingServiceError(err error, segment int) *RoutingServiceError {
	return &RoutingServiceError{err: err, segment: segment}
}

func (e *RoutingServiceError) Error() string {
	if e.segment < 0 {
		return errors.Wrap(e.err, "routing service failed").Error()
	}

	return errors.Wrapf(e.err, "routing service failed on segment %d", e.segment).Error()
}

// Segment returns the index of the failed waypoint pair, or -1.
func (e *RoutingServiceError) Segment() int { return e.segment }

func (e *RoutingServiceError) Unwrap() error     { return e.err }
func (e *RoutingServiceError) HTTPCode() int     { return http.StatusBadGateway }
func (e *RoutingServiceError) ErrorCode() string { return "ROUTING_SERVICE_FAILED" }
func (e *RoutingServiceError) Message() string {
	return "보행자 경로 서비스 호출에 실패했습니다"
}
func (e *RoutingServiceError) Details() string { return "" }

// PersistenceError reports that a computed detail path could not be written back.
type PersistenceError struct {
	err     error
	routeID int64
}

// NewPersistenceError wraps a write-back failure for routeID.
func NewPersistenceError(err error, routeID int64) *PersistenceError {
	return &PersistenceError{err: err, routeID: routeID}
}

func (e *PersistenceError) Error() string {
	return errors.Wrapf(e.err, "persist detail path for route %d", e.routeID).Error()
}

func (e *PersistenceError) Unwrap() error     { return e.err }
func (e *PersistenceError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *PersistenceError) ErrorCode() string { return "DETAIL_PATH_PERSIST_FAILED" }
func (e *PersistenceError) Message() string   { return "상세 경로 저장에 실패했습니다" }
func (e *PersistenceError) Details() string   { return "" }

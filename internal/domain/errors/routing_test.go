package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutingServiceError(t *testing.T) {
	cause := stderrors.New("dial tcp: timeout")
	err := NewRoutingServiceError(cause, 2)

	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "ROUTING_SERVICE_FAILED", err.ErrorCode())
	assert.Equal(t, 2, err.Segment())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "segment 2")

	var appErr AppError = err
	assert.NotEmpty(t, appErr.Message())
}

func TestInvalidWaypointError(t *testing.T) {
	err := NewInvalidWaypointError(3, 37.5, 0)

	var target *InvalidWaypointError
	assert.True(t, stderrors.As(error(err), &target))
	assert.Equal(t, 3, target.Index)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
	assert.Contains(t, err.Details(), "index 3")
}

func TestPersistenceError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewPersistenceError(cause, 42)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "route 42")
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

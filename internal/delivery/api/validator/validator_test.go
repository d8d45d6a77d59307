package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	RouteID  int64   `json:"route_id" validate:"required,gt=0"`
	Distance float64 `json:"actual_distance" validate:"gte=0"`
	Token    string  `json:"id_token,omitempty" validate:"required"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{RouteID: 1, Token: "x"}))

	err := v.Validate(&sampleRequest{Distance: -1})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "route_id is required")
		assert.Contains(t, err.Error(), "actual_distance must be at least 0")
		assert.Contains(t, err.Error(), "id_token is required")
	}

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"route_id":        "route_id is required",
		"actual_distance": "actual_distance must be at least 0",
		"id_token":        "id_token is required",
	}, verr.Fields())
}

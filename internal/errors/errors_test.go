package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCanceled(t *testing.T) {
	assert.True(t, IsCanceled(context.Canceled))
	assert.True(t, IsCanceled(Wrap(context.Canceled, "send request")))
	assert.False(t, IsCanceled(context.DeadlineExceeded))
	assert.False(t, IsCanceled(New("502 bad gateway")))
	assert.False(t, IsCanceled(nil))
}

func TestWrap_KeepsTarget(t *testing.T) {
	sentinel := New("route not found")
	err := Wrapf(sentinel, "route %d", 7)

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, "route 7: route not found", err.Error())
}

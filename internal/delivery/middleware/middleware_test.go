package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"walkey/config"
	deliverycontext "walkey/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "walk-7f3a.01_b", keep: true},
		{name: "missing id minted", incoming: ""},
		{name: "header injection replaced", incoming: "abc\r\nX-Evil: 1"},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "spaces replaced", incoming: "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
			if tt.incoming != "" {
				req.Header[deliverycontext.HeaderXRequestID] = []string{tt.incoming}
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenEcho, seenCtx string
			handler := NewRequestIDMiddleware(newTestLogger()).Process(func(c echo.Context) error {
				seenEcho = deliverycontext.GetRequestID(c)
				seenCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})
			require.NoError(t, handler(c))

			echoed := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, echoed, seenEcho)
			assert.Equal(t, echoed, seenCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, echoed)
			} else {
				assert.NotEqual(t, tt.incoming, echoed)
				assert.Len(t, echoed, 36)
			}
		})
	}
}

func TestLoggerMiddleware_RecordsRouteTemplate(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{}
	m := NewLoggerMiddleware(newTestLogger(), cfg)
	e.Use(m.Handle)
	e.GET("/api/routes/:id/detail-path", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/routes/:id/detail-path", "200"))
	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/routes/"+id+"/detail-path", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/routes/:id/detail-path", "200"))
	assert.Equal(t, 2.0, after-before, "ids collapse into one route label")
}

func TestLoggerMiddleware_CountsCommittedErrorStatus(t *testing.T) {
	e := echo.New()
	m := NewLoggerMiddleware(newTestLogger(), &config.Config{})
	e.Use(m.Handle)
	e.GET("/api/themes", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/themes", "503"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/themes", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/themes", "503"))
	assert.Equal(t, 1.0, after-before)
}

func TestLoggerMiddleware_UnmatchedPathKeepsRawURLOutOfLabels(t *testing.T) {
	e := echo.New()
	m := NewLoggerMiddleware(newTestLogger(), &config.Config{})
	e.Use(m.Handle)
	e.GET("/api/themes", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere/12345", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/nowhere/12345", "404")))
}

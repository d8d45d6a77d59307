// Package tmap implements service.PedestrianRouter on top of the SK Open API (Tmap)
// pedestrian routing endpoint.
package tmap

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"walkey/config"
	deliverycontext "walkey/internal/delivery/context"
	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/service"
	"walkey/internal/errors"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	pedestrianPath  = "/tmap/routes/pedestrian?version=1"
	coordTypeWGS84  = "WGS84GEO"
	breakerName     = "tmap-pedestrian"
	maxResponseSize = 4 << 20
)

// pedestrianRequest is the POST body of the pedestrian route endpoint. X is longitude, Y latitude.
type pedestrianRequest struct {
	StartX       float64 `json:"startX"`
	StartY       float64 `json:"startY"`
	EndX         float64 `json:"endX"`
	EndY         float64 `json:"endY"`
	StartName    string  `json:"startName"`
	EndName      string  `json:"endName"`
	ReqCoordType string  `json:"reqCoordType"`
	ResCoordType string  `json:"resCoordType"`
}

// statusError is returned for non-2xx upstream answers.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return "tmap responded " + http.StatusText(e.code) + ": " + e.body
}

// Client calls the pedestrian routing API through a rate limiter and a circuit breaker.
type Client struct {
	baseURL    string
	appKey     string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]entity.LatLng]
	logger     *slog.Logger
}

// NewPedestrianRouter builds the routing client from application config.
func NewPedestrianRouter(cfg *config.Config, logger *slog.Logger) (service.PedestrianRouter, error) {
	return New(cfg.Routing, logger)
}

// New creates a Client. Zero-valued settings fall back to the config defaults;
// the caller's config is left untouched.
func New(routingCfg *config.RoutingConfig, logger *slog.Logger) (*Client, error) {
	if routingCfg == nil {
		return nil, errors.New("routing config is required")
	}
	cfg := *routingCfg
	cfg.ApplyDefaults()

	if cfg.AppKey == "" {
		logger.Warn("Routing app key is empty; upstream calls will be rejected")
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		appKey:     cfg.AppKey,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		logger:     logger.With(slog.String("component", "tmap")),
	}

	routingBreakerState.WithLabelValues(breakerName).Set(0)
	c.breaker = gobreaker.NewCircuitBreaker[[]entity.LatLng](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailureThreshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Routing circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			routingBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return c, nil
}

// GetPedestrianSegment returns the walking path between start and end as a flat coordinate sequence.
// Every failure is reported as a *RoutingServiceError.
func (c *Client) GetPedestrianSegment(ctx context.Context, start, end entity.LatLng) ([]entity.LatLng, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		routingRequestsTotal.WithLabelValues(outcomeRateLimited).Inc()

		return nil, domainerrors.NewRoutingServiceError(errors.Wrap(err, "rate limiter"), -1)
	}

	points, err := c.breaker.Execute(func() ([]entity.LatLng, error) {
		return c.fetch(ctx, start, end)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			routingRequestsTotal.WithLabelValues(outcomeRejected).Inc()
		}

		return nil, domainerrors.NewRoutingServiceError(err, -1)
	}

	routingRequestsTotal.WithLabelValues(outcomeSuccess).Inc()
	c.logger.DebugContext(ctx, "Pedestrian segment resolved",
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(ctx)),
		slog.Int("points", len(points)),
		slog.Float64("meters", geo.LengthHaversine(entity.LineString(points))))

	return points, nil
}

func (c *Client) fetch(ctx context.Context, start, end entity.LatLng) ([]entity.LatLng, error) {
	body, err := json.Marshal(pedestrianRequest{
		StartX:       start.Lng,
		StartY:       start.Lat,
		EndX:         end.Lng,
		EndY:         end.Lat,
		StartName:    "start",
		EndName:      "end",
		ReqCoordType: coordTypeWGS84,
		ResCoordType: coordTypeWGS84,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+pedestrianPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("appKey", c.appKey)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	began := time.Now()
	resp, err := c.httpClient.Do(req)
	routingRequestDuration.Observe(time.Since(began).Seconds())
	if err != nil {
		routingRequestsTotal.WithLabelValues(outcomeTransport).Inc()

		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		routingRequestsTotal.WithLabelValues(outcomeTransport).Inc()

		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		routingRequestsTotal.WithLabelValues(outcomeHTTPError).Inc()

		return nil, &statusError{code: resp.StatusCode, body: truncate(string(payload), 256)}
	}

	points, err := decodeSegment(payload)
	if err != nil {
		routingRequestsTotal.WithLabelValues(outcomeDecodeError).Inc()

		return nil, err
	}

	return points, nil
}

// decodeSegment flattens every LineString feature of the response, in order, converting
// [lng, lat] positions to LatLng. Point features (turn instructions) are ignored.
func decodeSegment(payload []byte) ([]entity.LatLng, error) {
	fc, err := geojson.UnmarshalFeatureCollection(payload)
	if err != nil {
		return nil, errors.Wrap(err, "decode feature collection")
	}

	var points []entity.LatLng
	for _, feature := range fc.Features {
		line, ok := feature.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		for _, pt := range line {
			points = append(points, entity.LatLngFromPoint(pt))
		}
	}

	if len(points) == 0 {
		return nil, errors.New("response contains no line geometry")
	}

	return points, nil
}

// isBreakerSuccess keeps caller-side problems from tripping the breaker: client errors
// other than 429 and caller cancellation are not upstream failures.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.IsCanceled(err) {
		return true
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 400 && se.code < 500 && se.code != http.StatusTooManyRequests
	}

	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

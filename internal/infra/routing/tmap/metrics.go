package tmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	outcomeSuccess     = "success"
	outcomeHTTPError   = "http_error"
	outcomeTransport   = "transport_error"
	outcomeDecodeError = "decode_error"
	outcomeRejected    = "rejected"
	outcomeRateLimited = "rate_limited"
)

var (
	routingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walkey_routing_requests_total",
			Help: "Pedestrian routing requests by outcome",
		},
		[]string{"outcome"},
	)

	routingRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "walkey_routing_request_duration_seconds",
			Help:    "Latency of pedestrian routing HTTP calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	routingBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "walkey_routing_circuit_breaker_state",
			Help: "Routing circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

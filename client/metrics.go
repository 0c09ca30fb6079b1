package client

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aeroclub/vereinsflieger-go/client/internal/api"
)

// metrics records one sample per dispatched request.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ api.Observer = (*metrics)(nil)

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vereinsflieger_client",
			Name:      "requests_total",
			Help:      "Requests sent to the service, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vereinsflieger_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of service requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	))
	if err != nil {
		return nil, err
	}
	return &metrics{requests: requests, duration: duration}, nil
}

// register adds c to reg, reusing an identical collector registered by an
// earlier client.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

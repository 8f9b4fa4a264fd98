package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

// Metrics are the client-side estimation call metrics.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics registers the estimation metrics with reg. Collectors already
// registered by an earlier client are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bemcost_estimation_requests_total",
			Help: "Estimation service calls by result",
		},
		[]string{"result"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bemcost_estimation_latency_seconds",
			Help:    "Estimation service call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}

	return &Metrics{Requests: requests, Latency: latency}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// NewMetricsInterceptor records a count and latency per call, labelled by
// classify(err).
func NewMetricsInterceptor(m *Metrics, classify func(error) string) Interceptor {
	return func(ctx context.Context, req *models.CalculateRequest, handler Handler) ([]byte, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		// Record metrics
		result := classify(err)
		m.Requests.WithLabelValues(result).Inc()
		m.Latency.WithLabelValues(result).Observe(time.Since(start).Seconds())

		return resp, err
	}
}

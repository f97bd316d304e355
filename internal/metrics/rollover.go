package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultInvalid = "invalid"
)

// Rollover holds the Prometheus collectors describing rollover runs. It owns
// a private registry so tests can create as many instances as they need.
type Rollover struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	clones   prometheus.Counter
	duration prometheus.Histogram
}

// NewRollover registers the rollover collectors on a fresh registry.
func NewRollover() *Rollover {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "promo_rollover_runs_total",
		Help: "Rollover runs by result",
	}, []string{"result"})

	clones := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "promo_rollover_clones_total",
		Help: "Promotional events created by committed rollovers",
	})

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "promo_rollover_duration_seconds",
		Help:    "Duration of rollover runs in seconds",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(runs, clones, duration)

	return &Rollover{
		registry: registry,
		runs:     runs,
		clones:   clones,
		duration: duration,
	}
}

// Observe records one rollover run. created is only counted for successful
// runs since failed runs are rolled back.
func (m *Rollover) Observe(result string, created int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(result).Inc()
	if result == ResultSuccess {
		m.clones.Add(float64(created))
	}
	m.duration.Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Rollover) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

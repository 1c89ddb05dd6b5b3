package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors exported on /metrics.
type Metrics struct {
	profileOperations *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Get returns the process-wide metrics, registering them with the default
// Prometheus registry on first use.
func Get() *Metrics {
	once.Do(func() {
		instance = newMetrics()
		prometheus.MustRegister(instance.profileOperations, instance.requestDuration)
	})
	return instance
}

func newMetrics() *Metrics {
	return &Metrics{
		profileOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "profilekit",
				Subsystem: "profile",
				Name:      "operations_total",
				Help:      "Profile store operations by operation name and outcome",
			},
			[]string{"op", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "profilekit",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "API request latency by method, route pattern and status code",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// ProfileOperation counts one finished profile operation.
func (m *Metrics) ProfileOperation(op, outcome string) {
	if m == nil {
		return
	}
	m.profileOperations.WithLabelValues(op, outcome).Inc()
}

// ObserveRequest records the latency of one API request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

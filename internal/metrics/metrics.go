// Package metrics holds the Prometheus instruments of the application.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersCreated         prometheus.Counter
	RegistrationFailures *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a dedicated registry and registers every metric on it, together
// with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "naga_users_created_total",
			Help: "Total number of users created in the system",
		}),
		RegistrationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "naga_user_registration_failures_total",
			Help: "Total number of rejected user registrations by error code",
		}, []string{"code"}),
		registry: registry,
	}
}

// IncrementUsersCreated increments the users created counter by 1.
func (m *Metrics) IncrementUsersCreated() {
	if m == nil {
		return
	}
	m.UsersCreated.Inc()
}

// IncrementRegistrationFailures counts a rejected registration under code.
func (m *Metrics) IncrementRegistrationFailures(code string) {
	if m == nil {
		return
	}
	m.RegistrationFailures.WithLabelValues(code).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

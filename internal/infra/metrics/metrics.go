// Package metrics exposes Prometheus counters for the auth flows.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	AuthEvents         *prometheus.CounterVec
	MailDeliveries     *prometheus.CounterVec
	HousekeepingPurged *prometheus.CounterVec
}

// New builds the collectors and registers them with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruit_auth_events_total",
				Help: "Auth activity events recorded, by action.",
			},
			[]string{"action"},
		),
		MailDeliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruit_mail_deliveries_total",
				Help: "Mail delivery attempts, by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		HousekeepingPurged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruit_housekeeping_purged_total",
				Help: "Expired records removed by housekeeping, by record type.",
			},
			[]string{"record"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AuthEvents,
		m.MailDeliveries,
		m.HousekeepingPurged,
	)

	return m
}

// RecordAuthEvent counts one audit action.
func (m *Metrics) RecordAuthEvent(action string) {
	m.AuthEvents.WithLabelValues(action).Inc()
}

// RecordMailDelivery counts one delivery attempt.
func (m *Metrics) RecordMailDelivery(kind string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.MailDeliveries.WithLabelValues(kind, outcome).Inc()
}

// RecordPurged adds n removed records of the given type.
func (m *Metrics) RecordPurged(record string, n int64) {
	if n > 0 {
		m.HousekeepingPurged.WithLabelValues(record).Add(float64(n))
	}
}

// RegisterDBStats exports connection pool statistics for db.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return errors.Wrap(err, "failed to register db stats collector")
	}

	return nil
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

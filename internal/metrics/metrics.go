// Package metrics exposes Prometheus counters for the domain events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	registry  *prometheus.Registry
	analyses  *prometheus.CounterVec
	followUps *prometheus.CounterVec
	logins    *prometheus.CounterVec
	accounts  *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prakriti_analyses_total",
			Help: "Analyses created, by primary dosha.",
		}, []string{"primary"}),
		followUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prakriti_followup_edits_total",
			Help: "Follow-up edits on analyses, by operation.",
		}, []string{"op"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prakriti_logins_total",
			Help: "Login attempts, by outcome.",
		}, []string{"outcome"}),
		accounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prakriti_account_events_total",
			Help: "Account lifecycle events.",
		}, []string{"event"}),
	}
	reg.MustRegister(m.analyses, m.followUps, m.logins, m.accounts)
	return m
}

func (m *Metrics) AnalysisCreated(primary string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(primary).Inc()
}

func (m *Metrics) FollowUpEdited(op string) {
	if m == nil {
		return
	}
	m.followUps.WithLabelValues(op).Inc()
}

func (m *Metrics) Login(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AccountEvent(event string) {
	if m == nil {
		return
	}
	m.accounts.WithLabelValues(event).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

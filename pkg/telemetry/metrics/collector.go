package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/obrakeo/vfxnaming/pkg/config"
)

// Status label values for recorded operations.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Collector owns the Prometheus metrics of the vfxnaming tool.
type Collector struct {
	registry *prometheus.Registry

	// Solve/parse counts by rule and status.
	solvesTotal *prometheus.CounterVec
	parsesTotal *prometheus.CounterVec

	// Session store operations by op (save, load), backend and status.
	sessionOpsTotal *prometheus.CounterVec

	// Watch-mode reload count.
	reloadsTotal prometheus.Counter

	// Live registry sizes, updated after each (re)load.
	tokensRegistered prometheus.Gauge
	rulesRegistered  prometheus.Gauge
}

// NewCollector creates a collector and registers its metrics. If
// registry is nil a fresh one is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}
	subsystem := cfg.Subsystem
	if subsystem == "" {
		subsystem = config.DefaultMetricsSubsystem
	}

	c := &Collector{
		registry: registry,
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solves_total",
				Help:      "Total number of name solve operations",
			},
			[]string{"rule", "status"},
		),
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parses_total",
				Help:      "Total number of name parse operations",
			},
			[]string{"rule", "status"},
		),
		sessionOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "store_operations_total",
				Help:      "Total number of session store operations",
			},
			[]string{"op", "backend", "status"},
		),
		reloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reloads_total",
				Help:      "Total number of watch-mode session reloads",
			},
		),
		tokensRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tokens_registered",
				Help:      "Number of tokens currently registered",
			},
		),
		rulesRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rules_registered",
				Help:      "Number of rules currently registered",
			},
		),
	}

	registry.MustRegister(
		c.solvesTotal,
		c.parsesTotal,
		c.sessionOpsTotal,
		c.reloadsTotal,
		c.tokensRegistered,
		c.rulesRegistered,
	)
	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// RecordSolve records a solve attempt against a rule.
func (c *Collector) RecordSolve(rule, status string) {
	c.solvesTotal.WithLabelValues(rule, status).Inc()
}

// RecordParse records a parse attempt against a rule.
func (c *Collector) RecordParse(rule, status string) {
	c.parsesTotal.WithLabelValues(rule, status).Inc()
}

// RecordStoreOp records a session store save or load.
func (c *Collector) RecordStoreOp(op, backend, status string) {
	c.sessionOpsTotal.WithLabelValues(op, backend, status).Inc()
}

// RecordReload records one watch-mode session reload.
func (c *Collector) RecordReload() {
	c.reloadsTotal.Inc()
}

// SetRegistrySizes updates the live token and rule gauges.
func (c *Collector) SetRegistrySizes(tokens, rules int) {
	c.tokensRegistered.Set(float64(tokens))
	c.rulesRegistered.Set(float64(rules))
}

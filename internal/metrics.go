package internal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// Metrics holds orchestration counters. A nil *Metrics records nothing.
type Metrics struct {
	OrdersTotal  *prometheus.CounterVec
	StepsTotal   *prometheus.CounterVec
	StepDuration *prometheus.HistogramVec
	WebhookTotal *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OrdersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_orders_total",
				Help: "Orders handled by POST /orders, by result",
			},
			[]string{"result"},
		),
		StepsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_steps_total",
				Help: "Outbound integration calls by step and outcome",
			},
			[]string{"step", "outcome"},
		),
		StepDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "onboard_step_duration_seconds",
				Help:    "Outbound integration call latency",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"step"},
		),
		WebhookTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_webhooks_total",
				Help: "Inbound provider webhooks by provider and event type",
			},
			[]string{"provider", "type"},
		),
	}
}

func (m *Metrics) observeStep(step string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeFailed
	}
	m.StepsTotal.WithLabelValues(step, outcome).Inc()
	m.StepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

func (m *Metrics) skipStep(step string) {
	if m == nil {
		return
	}
	m.StepsTotal.WithLabelValues(step, outcomeSkipped).Inc()
}

func (m *Metrics) order(result string) {
	if m == nil {
		return
	}
	m.OrdersTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) webhook(provider, eventType string) {
	if m == nil {
		return
	}
	m.WebhookTotal.WithLabelValues(provider, eventType).Inc()
}

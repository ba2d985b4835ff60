package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the submission flow.
type LeadMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	integrationTotal   *prometheus.CounterVec
	integrationLatency *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vipsignup",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		integrationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vipsignup",
			Subsystem: "leads",
			Name:      "integration_total",
			Help:      "Total integration fan-out attempts",
		}, []string{"integration", "status"}),
		integrationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vipsignup",
			Subsystem: "leads",
			Name:      "integration_latency_seconds",
			Help:      "Latency of integration fan-out calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"integration"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.integrationTotal, m.integrationLatency)
	return m
}

// ObserveSubmission records one inbound submission outcome
// (accepted, invalid, error).
func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveIntegration records one fan-out attempt per integration.
func (m *LeadMetrics) ObserveIntegration(integration string, ok bool) {
	if m == nil {
		return
	}
	status := "failure"
	if ok {
		status = "success"
	}
	m.integrationTotal.WithLabelValues(integration, status).Inc()
}

// ObserveIntegrationLatency records the duration of one fan-out call.
func (m *LeadMetrics) ObserveIntegrationLatency(integration string, seconds float64) {
	if m == nil {
		return
	}
	m.integrationLatency.WithLabelValues(integration).Observe(seconds)
}

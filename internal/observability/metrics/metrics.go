package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the lead intake pipeline.
type LeadMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	analyticsLatency   *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "timberridge",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total inbound lead submissions",
		}, []string{"source", "status"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "timberridge",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Total operator notification emails",
		}, []string{"status"}),
		analyticsLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "timberridge",
			Subsystem: "analytics",
			Name:      "summary_latency_seconds",
			Help:      "Latency of analytics summary computation",
			Buckets:   prometheus.DefBuckets,
		}, []string{"period"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.notificationsTotal, m.analyticsLatency)
	return m
}

func (m *LeadMetrics) ObserveSubmission(source, status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(source, status).Inc()
}

func (m *LeadMetrics) ObserveNotification(status string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(status).Inc()
}

func (m *LeadMetrics) ObserveAnalyticsLatency(period string, seconds float64) {
	if m == nil {
		return
	}
	m.analyticsLatency.WithLabelValues(period).Observe(seconds)
}

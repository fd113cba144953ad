package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveSubmission("contact_page", "created")
	m.ObserveSubmission("contact_page", "created")
	m.ObserveSubmission("guide-landing-page", "validation_failed")

	got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("contact_page", "created"))
	if got != 2 {
		t.Errorf("submissions contact_page/created = %v, want 2", got)
	}
	got = testutil.ToFloat64(m.submissionsTotal.WithLabelValues("guide-landing-page", "validation_failed"))
	if got != 1 {
		t.Errorf("submissions guide/validation_failed = %v, want 1", got)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *LeadMetrics
	m.ObserveSubmission("contact_page", "created")
	m.ObserveNotification("sent")
	m.ObserveAnalyticsLatency("30d", 0.1)
}

func TestObserveNotification(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveNotification("sent")
	m.ObserveNotification("failed")
	m.ObserveNotification("failed")

	if got := testutil.ToFloat64(m.notificationsTotal.WithLabelValues("failed")); got != 2 {
		t.Errorf("notifications failed = %v, want 2", got)
	}
}

package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/timberridge/outdoor-living-backend/internal/observability/metrics"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// Handler serves the gated analytics summary endpoint.
type Handler struct {
	agg     *Aggregator
	cache   *SummaryCache
	metrics *metrics.LeadMetrics
	logger  *logging.Logger
}

// NewHandler creates an analytics handler. cache and m may be nil.
func NewHandler(agg *Aggregator, cache *SummaryCache, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		agg:     agg,
		cache:   cache,
		metrics: m,
		logger:  logger,
	}
}

// GetSummary handles GET /admin/analytics?period=30d.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	period := ParsePeriod(r.URL.Query().Get("period"))

	if cached, ok := h.cache.Get(r.Context(), period); ok {
		writeSummary(w, cached)
		return
	}

	start := time.Now()
	summary, err := h.agg.Summarize(r.Context(), period)
	if err != nil {
		h.logger.Error("analytics summary failed", "error", err, "period", period)
		http.Error(w, "failed to compute analytics", http.StatusInternalServerError)
		return
	}
	h.metrics.ObserveAnalyticsLatency(string(period), time.Since(start).Seconds())

	h.cache.Set(r.Context(), period, summary)
	writeSummary(w, summary)
}

func writeSummary(w http.ResponseWriter, s *Summary) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

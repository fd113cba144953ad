package leads

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/timberridge/outdoor-living-backend/internal/observability/metrics"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// Notifier delivers the operator email after a lead is stored. Implementations
// are best-effort and must never surface a failure to the caller.
type Notifier interface {
	LeadReceived(ctx context.Context, lead *Lead, isContactForm bool)
}

// Handler handles HTTP requests for lead capture.
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
}

// NewHandler creates a new leads handler. notifier and m may be nil.
func NewHandler(repo Repository, notifier Notifier, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// SubmissionResponse is the envelope returned by the public lead endpoints.
type SubmissionResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	LeadID  string   `json:"leadId,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Details string   `json:"details,omitempty"`
}

// CreateContactLead handles POST /api/contact (the full contact form).
func (h *Handler) CreateContactLead(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, SourceContactPage, true)
}

// CreateGuideLead handles POST /api/leads (the design-guide download form).
func (h *Handler) CreateGuideLead(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, SourceGuideLanding, false)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, defaultSource string, isContactForm bool) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Error("failed to decode submission", "error", err)
		writeJSON(w, http.StatusBadRequest, SubmissionResponse{
			Success: false,
			Errors:  []string{"Invalid request body"},
		})
		return
	}

	req, validationErrs := Validate(sub, defaultSource)
	if len(validationErrs) > 0 {
		h.metrics.ObserveSubmission(defaultSource, "validation_failed")
		writeJSON(w, http.StatusBadRequest, SubmissionResponse{
			Success: false,
			Errors:  validationErrs,
		})
		return
	}

	lead, err := h.repo.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create lead", "error", err, "source", req.Source)
		h.metrics.ObserveSubmission(req.Source, "persistence_failed")
		writeJSON(w, http.StatusInternalServerError, SubmissionResponse{
			Success: false,
			Errors:  []string{"Something went wrong. Please try again."},
			Details: "failed to save your request",
		})
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "source", lead.Source)
	h.metrics.ObserveSubmission(lead.Source, "created")

	// Best-effort: the notifier catches and logs its own failures, a lost
	// email never fails a stored submission.
	if h.notifier != nil {
		h.notifier.LeadReceived(r.Context(), lead, isContactForm)
	}

	writeJSON(w, http.StatusCreated, SubmissionResponse{
		Success: true,
		Message: "Thanks for reaching out! We'll be in touch within one business day.",
		LeadID:  lead.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

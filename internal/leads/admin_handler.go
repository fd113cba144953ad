package leads

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"time"

	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// maxAdminListSize caps the dashboard lead listing.
const maxAdminListSize = 100

// AdminHandler serves the gated dashboard endpoints for raw lead data.
type AdminHandler struct {
	repo   Repository
	logger *logging.Logger
}

func NewAdminHandler(repo Repository, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{repo: repo, logger: logger}
}

// ListLeadsResponse is the response for listing leads.
type ListLeadsResponse struct {
	Total int     `json:"total"`
	Leads []*Lead `json:"leads"`
}

// ListLeads handles GET /admin/leads. Newest first, capped at 100.
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListMostRecent(r.Context(), maxAdminListSize)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		http.Error(w, "failed to list leads", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ListLeadsResponse{
		Total: len(list),
		Leads: list,
	})
}

// ExportLeads handles GET /admin/leads/export, streaming every stored
// lead as a CSV download for the dashboard's export button.
func (h *AdminHandler) ExportLeads(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to export leads", "error", err)
		http.Error(w, "failed to export leads", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "email", "first_name", "last_name", "phone", "location", "project_type", "message", "source", "customer_type", "created_at"})
	for _, l := range list {
		_ = cw.Write([]string{
			l.ID,
			l.Email,
			l.FirstName,
			l.LastName,
			l.Phone,
			l.Location,
			l.ProjectType,
			l.Message,
			l.Source,
			l.CustomerType,
			l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("csv export write failed", "error", err)
	}
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/timberridge/outdoor-living-backend/internal/analytics"
	httpmiddleware "github.com/timberridge/outdoor-living-backend/internal/http/middleware"
	"github.com/timberridge/outdoor-living-backend/internal/leads"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger           *logging.Logger
	LeadsHandler     *leads.Handler
	AdminLeads       *leads.AdminHandler
	AnalyticsHandler *analytics.Handler
	MetricsHandler   http.Handler

	// Access gate for /admin. Bypassed outside production.
	AdminAPIKey string
	Env         string

	// Per-IP limit for the public lead endpoints. Zero disables limiting.
	LeadRateLimit float64
	LeadRateBurst int

	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Public lead capture
	r.Group(func(public chi.Router) {
		if cfg.LeadRateLimit > 0 {
			public.Use(httpmiddleware.RateLimit(cfg.LeadRateLimit, cfg.LeadRateBurst))
		}
		public.Post("/api/contact", cfg.LeadsHandler.CreateContactLead)
		public.Post("/api/leads", cfg.LeadsHandler.CreateGuideLead)
	})

	// Admin dashboard, behind the shared-key gate
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(httpmiddleware.RequireAdminKey(cfg.AdminAPIKey, cfg.Env, cfg.Logger))
		admin.Get("/leads", cfg.AdminLeads.ListLeads)
		admin.Get("/leads/export", cfg.AdminLeads.ExportLeads)
		if cfg.AnalyticsHandler != nil {
			admin.Get("/analytics", cfg.AnalyticsHandler.GetSummary)
		}
	})

	return r
}

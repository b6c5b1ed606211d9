package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clipfund/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the use-case ports, the
// content validator, the cron shared secret and a structured logger, and
// registers all routes on a chi.Router.
type Handler struct {
	campaigns   port.CampaignUseCase
	submissions port.SubmissionUseCase
	sweeps      port.SweepUseCase
	users       port.UserUseCase
	validator   port.ContentValidator
	cronSecret  string
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	submissions port.SubmissionUseCase,
	sweeps port.SweepUseCase,
	users port.UserUseCase,
	validator port.ContentValidator,
	cronSecret string,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns:   campaigns,
		submissions: submissions,
		sweeps:      sweeps,
		users:       users,
		validator:   validator,
		cronSecret:  cronSecret,
		logger:      logger,
	}
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Post("/{id}/refresh-views", h.handleRefreshViews)
		})
		r.Post("/submissions", h.handleCreateSubmission)
		r.Get("/submissions", h.handleListSubmissions)
		r.Get("/profile/{wallet}", h.handleProfile)
		r.Post("/users", h.handleConnectUser)
		r.Post("/validate", h.handleValidate)
		r.Get("/cron/update-views", h.handleCronUpdateViews)
		r.Get("/cron/auto-distribute", h.handleCronAutoDistribute)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

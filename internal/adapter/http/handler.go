package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"anonvote/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the factory and the
// per-campaign operations as JSON endpoints on a chi.Router.
type Handler struct {
	factory   port.CampaignFactory
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Mutating routes
// that act on behalf of a caller require the X-Caller-Identity header.
func NewHandler(factory port.CampaignFactory, campaigns port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{factory: factory, campaigns: campaigns, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Get("/", h.handleDeployedCampaigns)
		r.With(requireCaller).Post("/", h.handleCreateCampaign)
		r.Get("/count", h.handleCampaignCount)
		r.Get("/by-id/{id}", h.handleCampaignByID)
		r.Get("/by-id/{id}/address", h.handleCampaignAddressByID)

		r.Route("/{address}", func(r chi.Router) {
			r.Use(h.campaignAddress)
			r.Get("/", h.handleSummary)
			r.Get("/status", h.handleStatus)

			r.Get("/candidates", h.handleCandidates)
			r.Get("/candidates/count", h.handleCandidatesCount)
			r.Get("/candidates/{candidateID}", h.handleCandidate)
			r.With(requireCaller).Post("/candidates", h.handleAddCandidate)

			r.With(requireCaller).Post("/votes", h.handleVote)
			r.Get("/voters/count", h.handleVotersCount)
			r.Get("/voters/{identity}", h.handleVoter)
			r.Get("/owner/{identity}", h.handleIsOwner)

			r.Get("/group", h.handleGroup)
			r.Post("/group/members", h.handleJoinGroup)
			r.Get("/group/members/{commitment}", h.handleIsMember)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

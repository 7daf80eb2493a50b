package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"anonvote/internal/core/domain"
)

type createCampaignRequest struct {
	CandidateNames    []string `json:"candidate_names"`
	DurationInMinutes int      `json:"duration_in_minutes"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	// StartTime is a unix timestamp in seconds.
	StartTime      int64    `json:"start_time"`
	Date           string   `json:"date"`
	EligibleVoters []string `json:"eligible_voters"`
	// IsPublic defaults to true when omitted.
	IsPublic *bool `json:"is_public"`
}

func (req createCampaignRequest) params() (domain.CampaignParams, error) {
	p := domain.CampaignParams{
		CandidateNames:  req.CandidateNames,
		DurationMinutes: req.DurationInMinutes,
		Name:            req.Name,
		Description:     req.Description,
		StartTime:       time.Unix(req.StartTime, 0).UTC(),
		Date:            req.Date,
		Private:         req.IsPublic != nil && !*req.IsPublic,
	}
	for _, v := range req.EligibleVoters {
		id, err := domain.ParseIdentity(v)
		if err != nil {
			return p, err
		}
		p.EligibleVoters = append(p.EligibleVoters, id)
	}
	return p, nil
}

type metadataResponse struct {
	CampaignNumber      int    `json:"campaign_number"`
	CampaignAddress     string `json:"campaign_address"`
	CampaignName        string `json:"campaign_name"`
	CampaignDescription string `json:"campaign_description"`
	DurationInMinutes   int    `json:"duration_in_minutes"`
	StartTime           int64  `json:"start_time"`
	Date                string `json:"date"`
}

type addressResponse struct {
	CampaignAddress string `json:"campaign_address"`
}

// handleCreateCampaign creates a campaign owned by the caller and returns
// its address with 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	params, err := req.params()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	addr, err := h.factory.CreateCampaign(r.Context(), callerFrom(r.Context()), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addressResponse{CampaignAddress: string(addr)})
}

// handleDeployedCampaigns lists campaign addresses in creation order.
func (h *Handler) handleDeployedCampaigns(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.factory.DeployedCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, string(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.factory.CampaignCount(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *Handler) handleCampaignByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.factory.CampaignByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metadataResponse{
		CampaignNumber:      m.Number,
		CampaignAddress:     string(m.Address),
		CampaignName:        m.Name,
		CampaignDescription: m.Description,
		DurationInMinutes:   m.DurationMinutes,
		StartTime:           m.StartTime.Unix(),
		Date:                m.Date,
	})
}

func (h *Handler) handleCampaignAddressByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	addr, err := h.factory.CampaignAddressByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addressResponse{CampaignAddress: string(addr)})
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return v, nil
}

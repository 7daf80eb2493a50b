package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"anonvote/internal/core/domain"
)

type summaryResponse struct {
	CampaignAddress     string `json:"campaign_address"`
	CampaignNumber      int    `json:"campaign_number"`
	Owner               string `json:"owner"`
	CampaignName        string `json:"campaign_name"`
	CampaignDescription string `json:"campaign_description"`
	DurationInMinutes   int    `json:"duration_in_minutes"`
	StartTime           int64  `json:"start_time"`
	EndTime             int64  `json:"end_time"`
	Date                string `json:"date"`
	GroupID             uint64 `json:"group_id"`
	IsPublic            bool   `json:"is_public"`
	Status              string `json:"status"`
	RemainingSeconds    int64  `json:"remaining_seconds"`
	CandidatesCount     int    `json:"candidates_count"`
	VotersCount         int64  `json:"voters_count"`
}

type statusResponse struct {
	VotingOpen       bool  `json:"voting_open"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

type candidateResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	VoteCount int64  `json:"vote_count"`
}

type voterResponse struct {
	Identity string `json:"identity"`
	Voted    bool   `json:"voted"`
	Eligible bool   `json:"eligible"`
}

type addCandidateRequest struct {
	Name string `json:"name"`
}

type voteRequest struct {
	CandidateID *int `json:"candidate_id"`
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.campaigns.Summary(r.Context(), addressFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		CampaignAddress:     string(s.Address),
		CampaignNumber:      s.Number,
		Owner:               string(s.Owner),
		CampaignName:        s.Name,
		CampaignDescription: s.Description,
		DurationInMinutes:   s.DurationMinutes,
		StartTime:           s.StartTime.Unix(),
		EndTime:             s.EndTime.Unix(),
		Date:                s.Date,
		GroupID:             uint64(s.GroupID),
		IsPublic:            !s.Private,
		Status:              string(s.Status),
		RemainingSeconds:    int64(s.Remaining.Seconds()),
		CandidatesCount:     s.CandidatesCount,
		VotersCount:         s.VotersCount,
	})
}

// handleStatus reports whether voting is open and the seconds left. Both
// values come from one summary so they agree with each other.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	s, err := h.campaigns.Summary(r.Context(), addressFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		VotingOpen:       s.Status == domain.StatusOpen,
		RemainingSeconds: int64(s.Remaining.Seconds()),
	})
}

// handleCandidates returns every candidate with its tally.
func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.Candidates(r.Context(), addressFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]candidateResponse, 0, len(list))
	for i, c := range list {
		out = append(out, candidateResponse{ID: i, Name: c.Name, VoteCount: c.VoteCount})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCandidatesCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.campaigns.CandidatesCount(r.Context(), addressFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *Handler) handleCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "candidateID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.Candidate(r.Context(), addressFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, candidateResponse{ID: id, Name: c.Name, VoteCount: c.VoteCount})
}

// handleAddCandidate appends a candidate. Only the campaign owner may call
// it; others get 403.
func (h *Handler) handleAddCandidate(w http.ResponseWriter, r *http.Request) {
	var req addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	id, err := h.campaigns.AddCandidate(r.Context(), callerFrom(r.Context()), addressFrom(r.Context()), req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, candidateResponse{ID: id, Name: req.Name})
}

// handleVote casts the caller's ballot. Success has no body.
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CandidateID == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "candidate_id is required"})
		return
	}
	if err := h.campaigns.Vote(r.Context(), callerFrom(r.Context()), addressFrom(r.Context()), *req.CandidateID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleVotersCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.campaigns.VotersCount(r.Context(), addressFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": n})
}

func (h *Handler) handleVoter(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseIdentity(chi.URLParam(r, "identity"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	addr := addressFrom(r.Context())
	voted, err := h.campaigns.IsVoted(r.Context(), addr, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	eligible, err := h.campaigns.IsEligible(r.Context(), addr, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, voterResponse{Identity: string(id), Voted: voted, Eligible: eligible})
}

func (h *Handler) handleIsOwner(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseIdentity(chi.URLParam(r, "identity"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok, err := h.campaigns.IsOwner(r.Context(), addressFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_owner": ok})
}

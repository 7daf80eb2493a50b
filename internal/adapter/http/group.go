package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"anonvote/internal/core/domain"
)

type groupResponse struct {
	GroupID     uint64 `json:"group_id"`
	MemberCount int    `json:"member_count"`
}

type joinGroupRequest struct {
	// IdentityCommitment is decimal or 0x-prefixed hex. It is a string so
	// values above 2^53 survive JSON.
	IdentityCommitment string `json:"identity_commitment"`
}

type memberResponse struct {
	IdentityCommitment string `json:"identity_commitment"`
	IsMember           bool   `json:"is_member"`
}

func (h *Handler) handleGroup(w http.ResponseWriter, r *http.Request) {
	info, err := h.campaigns.Group(r.Context(), addressFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groupResponse{GroupID: uint64(info.GroupID), MemberCount: info.MemberCount})
}

// handleJoinGroup enrolls an identity commitment in the campaign group. No
// caller identity is needed: the commitment is deliberately unlinked.
func (h *Handler) handleJoinGroup(w http.ResponseWriter, r *http.Request) {
	var req joinGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	commitment, err := domain.ParseCommitment(req.IdentityCommitment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.campaigns.JoinGroup(r.Context(), addressFrom(r.Context()), commitment); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberResponse{IdentityCommitment: string(commitment), IsMember: true})
}

func (h *Handler) handleIsMember(w http.ResponseWriter, r *http.Request) {
	commitment, err := domain.ParseCommitment(chi.URLParam(r, "commitment"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok, err := h.campaigns.IsMember(r.Context(), addressFrom(r.Context()), commitment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memberResponse{IdentityCommitment: string(commitment), IsMember: ok})
}

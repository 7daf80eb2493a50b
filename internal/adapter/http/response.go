package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"anonvote/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps election errors onto HTTP status codes. Anything unknown
// is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidCandidate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotOwner), errors.Is(err, domain.ErrNotEligible):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrCampaignNotFound), errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVotingNotOpen), errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrMemberExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err to the client. Internal errors are logged and
// replaced by a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

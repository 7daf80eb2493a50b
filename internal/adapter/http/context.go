package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"anonvote/internal/core/domain"
)

// CallerHeader carries the authenticated principal. Authentication itself
// happens upstream; this service trusts the header.
const CallerHeader = "X-Caller-Identity"

type ctxKey int

const (
	callerKey ctxKey = iota
	addressKey
)

// requireCaller rejects requests without a caller identity with 401.
func requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := domain.ParseIdentity(r.Header.Get(CallerHeader))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + CallerHeader + " header"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey, caller)))
	})
}

func callerFrom(ctx context.Context) domain.Identity {
	caller, _ := ctx.Value(callerKey).(domain.Identity)
	return caller
}

// campaignAddress validates the {address} path parameter once for every
// campaign route.
func (h *Handler) campaignAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), addressKey, addr)))
	})
}

func addressFrom(ctx context.Context) domain.Address {
	addr, _ := ctx.Value(addressKey).(domain.Address)
	return addr
}

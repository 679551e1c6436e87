package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/coursehub/backend/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// WithAuth verifies the bearer token and stores the caller's user id in the
// request context.
func (h *Handler) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}

		userID, err := h.tokens.Parse(token)
		if err != nil {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func userIDFrom(ctx context.Context) int {
	id, _ := ctx.Value(userIDKey).(int)
	return id
}

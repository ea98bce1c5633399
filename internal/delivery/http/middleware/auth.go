package middleware

import (
	"log/slog"
	"net/http"

	h "teamcalendar/internal/delivery/http/helpers"
)

// RequireAuth returns a wrapper that only calls next when the session has the authenticated flag.
// Otherwise it responds with 401 and does not call next.
func RequireAuth(store SessionStore, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session := store.Load(r)
			if !session.Authenticated() {
				logger.DebugContext(r.Context(), "unauthenticated request", "path", r.URL.Path, "method", r.Method)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			next(w, r)
		}
	}
}

// internal/app/features/userinfo/routes.go
package userinfo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers GET /auth/me behind requireAuth.
func MountRoutes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Get("/auth/me", h.ServeMe)
}

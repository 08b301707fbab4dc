// internal/app/features/logout/routes.go
package logout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Post("/auth/logout", h.HandleLogout)
}

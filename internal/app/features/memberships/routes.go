// internal/app/features/memberships/routes.go
package memberships

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/memberships", h.ServeList)
	r.Get("/memberships-dash", h.ServeDash)
	r.Get("/memberships/{id}", h.ServeShow)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.Post("/memberships", h.HandleCreate)
		pr.Put("/memberships/{id}", h.HandleUpdate)
		pr.Delete("/memberships/{id}", h.HandleDelete)
	})
}

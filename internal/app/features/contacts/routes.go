// internal/app/features/contacts/routes.go
package contacts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/contacts", h.ServeList)
	r.Get("/contacts/{id}", h.ServeShow)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.Post("/contacts", h.HandleCreate)
		pr.Put("/contacts/{id}", h.HandleUpdate)
		pr.Delete("/contacts/{id}", h.HandleDelete)
	})
}

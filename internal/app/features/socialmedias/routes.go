// internal/app/features/socialmedias/routes.go
package socialmedias

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/social-medias", h.ServeList)
	r.Get("/social-medias/{id}", h.ServeShow)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.Post("/social-medias", h.HandleCreate)
		pr.Put("/social-medias/{id}", h.HandleUpdate)
		pr.Delete("/social-medias/{id}", h.HandleDelete)
	})
}

// internal/app/features/joinrequests/routes.go
package joinrequests

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/join-requests", h.ServeList)
	r.Get("/join-requests/{id}", h.ServeShow)
	r.Get("/join-requests-charts", h.ServeCharts)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.Post("/join-requests", h.HandleCreate)
		pr.Put("/join-requests/{id}", h.HandleUpdate)
		pr.Delete("/join-requests/{id}", h.HandleDelete)
	})
}

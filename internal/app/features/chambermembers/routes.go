// internal/app/features/chambermembers/routes.go
package chambermembers

import (
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/go-chi/chi/v5"
)

// Routes registers the chamber member endpoints on r.
func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/chamber-members", h.ServeList)
	r.Get("/chamber-members-dash", h.ServeDash)
	r.Get("/chamber-members/{id}", h.ServeShow)

	upload := reqdecode.AllowUpload(h.Assets.ImageMaxBytes())

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.With(upload).Post("/chamber-members", h.HandleCreate)
		pr.Put("/chamber-members/{id}/update-data", h.HandleUpdateData)
		pr.With(upload).Post("/chamber-members/{id}/update-image", h.HandleUpdateImage)
		pr.Put("/chamber-members/{id}", h.HandleUpdate)
		pr.Delete("/chamber-members/{id}/image", h.HandleDeleteImage)
		pr.Delete("/chamber-members/{id}", h.HandleDelete)
	})
}

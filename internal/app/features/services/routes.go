// internal/app/features/services/routes.go
package services

import (
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/go-chi/chi/v5"
)

// Routes registers the service endpoints on r. Writes go through
// requireAuth.
//
// Example from bootstrap:
//
//	services.Routes(r, servicesHandler, guard.RequireToken)
func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/services", h.ServeList)
	r.Get("/services-dash", h.ServeDash)
	r.Get("/services/{id}", h.ServeShow)

	upload := reqdecode.AllowUpload(h.Assets.ImageMaxBytes())

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.With(upload).Post("/services", h.HandleCreate)
		pr.Put("/services/{id}/update-data", h.HandleUpdateData)
		pr.With(upload).Post("/services/{id}/update-image", h.HandleUpdateImage)
		pr.Delete("/services/{id}/image", h.HandleDeleteImage)
		pr.Delete("/services/{id}", h.HandleDelete)
	})
}

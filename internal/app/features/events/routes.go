// internal/app/features/events/routes.go
package events

import (
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/go-chi/chi/v5"
)

// Routes registers the event endpoints on r. Writes go through
// requireAuth.
//
// Example from bootstrap:
//
//	events.Routes(r, eventsHandler, guard.RequireToken)
func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/events", h.ServeList)
	r.Get("/events-dash", h.ServeDash)
	r.Get("/events/{id}", h.ServeShow)

	upload := reqdecode.AllowUpload(h.Assets.ImageMaxBytes())

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.With(upload).Post("/events", h.HandleCreate)
		pr.Put("/events/{id}/update-data", h.HandleUpdateData)
		pr.With(upload).Post("/events/{id}/update-image", h.HandleUpdateImage)
		pr.Delete("/events/{id}/image", h.HandleDeleteImage)
		pr.Delete("/events/{id}", h.HandleDelete)
	})
}

// internal/app/features/labels/routes.go
package labels

import (
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/labels", h.ServeList)
	r.Get("/labels/{id}", h.ServeShow)

	upload := reqdecode.AllowUpload(h.Assets.VideoMaxBytes())

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.Post("/labels", h.HandleCreate)
		pr.Put("/labels/{id}", h.HandleUpdate)
		pr.With(upload).Post("/labels/{id}/update-video", h.HandleUpdateVideo)
		pr.Delete("/labels/{id}", h.HandleDelete)
	})
}

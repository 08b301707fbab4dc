// internal/app/features/services/write.go
package services

import (
	"errors"
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/store/audit"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /services. The image is optional.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in serviceInput
	form, err := reqdecode.Bind(w, r, &in)
	if err != nil {
		apiresp.Malformed(w)
		return
	}
	res := inputval.Validate(in)
	up := h.Assets.CheckImage("img", form.File("img"), false, res)
	if res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	ctx, cancel := timeouts.WithUpload(r.Context())
	defer cancel()

	sv := in.model()
	var stored string
	if up != nil {
		if stored, err = h.Assets.Store(ctx, models.NamespaceServices, up); err != nil {
			apiresp.ServerError(w, h.Log, "store service image failed", err)
			return
		}
		sv.ImgPath = &stored
	}

	created, err := h.Repo.Create(ctx, sv)
	if err != nil {
		h.Assets.Discard(ctx, stored)
		apiresp.ServerError(w, h.Log, "create service failed", err)
		return
	}

	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Success(w, http.StatusOK, "Service created successfully", h.dash(created))
}

// HandleUpdateData handles PUT /services/{id}/update-data.
func (h *Handler) HandleUpdateData(w http.ResponseWriter, r *http.Request) {
	var in serviceInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	sv, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	updated, err := h.Repo.UpdateData(ctx, sv.ID, in.data())
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update service failed", err)
		return
	}

	h.Audit.Updated(ctx, r, auth.UserID(r), kind, sv.ID)
	apiresp.OK(w, "Service data updated successfully.", h.dash(updated))
}

// HandleUpdateImage handles POST /services/{id}/update-image.
func (h *Handler) HandleUpdateImage(w http.ResponseWriter, r *http.Request) {
	form, err := reqdecode.Parse(w, r)
	if err != nil {
		apiresp.Malformed(w)
		return
	}
	res := &inputval.Result{}
	up := h.Assets.CheckImage("img", form.File("img"), true, res)
	if res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	sv, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithUpload(r.Context())
	defer cancel()

	var updated models.Service
	_, err = h.Assets.Replace(ctx, models.NamespaceServices, up, sv.ImgPath, func(path string) error {
		var err error
		updated, err = h.Repo.SetImage(ctx, sv.ID, path)
		return err
	})
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "replace service image failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetReplaced, kind, sv.ID)
	apiresp.OK(w, "Service image updated successfully.", h.dash(updated))
}

// HandleDeleteImage handles DELETE /services/{id}/image.
func (h *Handler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	sv, ok := h.load(w, r)
	if !ok {
		return
	}
	if !sv.HasImage() {
		apiresp.NoOp(w, "El servicio no tiene una imagen para eliminar.")
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Assets.Remove(ctx, sv.ImgPath); err != nil {
		apiresp.ServerError(w, h.Log, "delete service image failed", err)
		return
	}
	updated, err := h.Repo.ClearImage(ctx, sv.ID)
	if err != nil {
		apiresp.ServerError(w, h.Log, "clear service image failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetRemoved, kind, sv.ID)
	apiresp.OK(w, "La imagen del servicio se eliminó exitosamente.", h.dash(updated))
}

// HandleDelete handles DELETE /services/{id}. The image goes first.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sv, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Assets.Remove(ctx, sv.ImgPath); err != nil {
		apiresp.ServerError(w, h.Log, "delete service image failed", err)
		return
	}
	if err := h.Repo.Delete(ctx, sv.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete service failed", err)
		return
	}

	h.Log.Info("service deleted", zap.Int64("id", sv.ID))
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, sv.ID)
	apiresp.Done(w, "Service deleted successfully.")
}

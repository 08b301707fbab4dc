// internal/app/features/events/write.go
package events

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

// HandleCreate handles POST /events. The image is optional.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in eventInput
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

	e := in.model()
	var stored string
	if up != nil {
		if stored, err = h.Assets.Store(ctx, models.NamespaceEvents, up); err != nil {
			apiresp.ServerError(w, h.Log, "store event image failed", err)
			return
		}
		e.ImgPath = &stored
	}

	created, err := h.Repo.Create(ctx, e)
	if err != nil {
		h.Assets.Discard(ctx, stored)
		apiresp.ServerError(w, h.Log, "create event failed", err)
		return
	}

	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Success(w, http.StatusOK, "Event created successfully", h.dash(created))
}

// HandleUpdateData handles PUT /events/{id}/update-data.
func (h *Handler) HandleUpdateData(w http.ResponseWriter, r *http.Request) {
	var in eventInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	e, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	updated, err := h.Repo.UpdateData(ctx, e.ID, in.data())
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update event failed", err)
		return
	}

	h.Audit.Updated(ctx, r, auth.UserID(r), kind, e.ID)
	apiresp.OK(w, "Event data updated successfully.", h.dash(updated))
}

// HandleUpdateImage handles POST /events/{id}/update-image.
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

	e, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithUpload(r.Context())
	defer cancel()

	var updated models.Event
	_, err = h.Assets.Replace(ctx, models.NamespaceEvents, up, e.ImgPath, func(path string) error {
		var err error
		updated, err = h.Repo.SetImage(ctx, e.ID, path)
		return err
	})
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "replace event image failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetReplaced, kind, e.ID)
	apiresp.OK(w, "Event image updated successfully.", h.dash(updated))
}

// HandleDeleteImage handles DELETE /events/{id}/image.
func (h *Handler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	e, ok := h.load(w, r)
	if !ok {
		return
	}
	if !e.HasImage() {
		apiresp.NoOp(w, "The event has no image to delete.")
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Assets.Remove(ctx, e.ImgPath); err != nil {
		apiresp.ServerError(w, h.Log, "delete event image failed", err)
		return
	}
	updated, err := h.Repo.ClearImage(ctx, e.ID)
	if err != nil {
		apiresp.ServerError(w, h.Log, "clear event image failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetRemoved, kind, e.ID)
	apiresp.OK(w, "Event image deleted successfully.", h.dash(updated))
}

// HandleDelete handles DELETE /events/{id}. The image goes first.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	e, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Assets.Remove(ctx, e.ImgPath); err != nil {
		apiresp.ServerError(w, h.Log, "delete event image failed", err)
		return
	}
	if err := h.Repo.Delete(ctx, e.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete event failed", err)
		return
	}

	h.Log.Info("event deleted", zap.Int64("id", e.ID))
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, e.ID)
	apiresp.Done(w, "Event deleted successfully.")
}

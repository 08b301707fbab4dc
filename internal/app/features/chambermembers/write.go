// internal/app/features/chambermembers/write.go
package chambermembers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/store/audit"
	chambermemberstore "github.com/dalemusser/chamberhub/internal/app/store/chambermembers"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /chamber-members.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
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

	m := in.model()
	var stored string
	if up != nil {
		if stored, err = h.Assets.Store(ctx, models.NamespaceChamberMembers, up); err != nil {
			apiresp.ServerError(w, h.Log, "store chamber member image failed", err)
			return
		}
		m.ImgPath = &stored
	}

	created, err := h.Repo.Create(ctx, m)
	if err != nil {
		h.Assets.Discard(ctx, stored)
		apiresp.ServerError(w, h.Log, "create chamber member failed", err)
		return
	}

	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Created(w, "Chamber member created successfully.", h.dash(created))
}

// HandleUpdateData handles PUT /chamber-members/{id}/update-data.
func (h *Handler) HandleUpdateData(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r, msgNotFound)
	if !ok {
		return
	}
	var in dataInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	updated, err := h.Repo.Update(ctx, m.ID, in.data())
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update chamber member failed", err)
		return
	}

	h.Audit.Updated(ctx, r, auth.UserID(r), kind, m.ID)
	apiresp.OK(w, "Chamber member data updated successfully.", h.dash(updated))
}

// HandleUpdate handles the legacy PUT /chamber-members/{id}. A new img_path
// must already be stored; the previous object is removed once the record
// points elsewhere.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r, msgNotFound)
	if !ok {
		return
	}
	var in legacyInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := in.validate(); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if in.ImgPath != nil && (m.ImgPath == nil || *m.ImgPath != *in.ImgPath) {
		res, err := h.checkImgPath(ctx, m.ID, *in.ImgPath)
		if err != nil {
			apiresp.ServerError(w, h.Log, "check chamber member image failed", err)
			return
		}
		if res.HasErrors() {
			apiresp.Validation(w, res)
			return
		}
	}

	updated, err := h.Repo.Update(ctx, m.ID, in.data())
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if errors.Is(err, chambermemberstore.ErrImageTaken) {
		res := &inputval.Result{}
		res.Add("img_path", msgImgTaken)
		apiresp.Validation(w, res)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update chamber member failed", err)
		return
	}

	if in.ImgPath != nil && m.HasImage() && *m.ImgPath != *in.ImgPath {
		if err := h.Assets.Remove(ctx, m.ImgPath); err != nil {
			h.Log.Warn("failed to delete previous chamber member image",
				zap.Int64("id", m.ID), zap.String("path", *m.ImgPath), zap.Error(err))
		}
	}

	h.Audit.Updated(ctx, r, auth.UserID(r), kind, m.ID)
	apiresp.OK(w, "Chamber member updated successfully.", h.dash(updated))
}

// checkImgPath requires path to be a stored object no other member points at.
func (h *Handler) checkImgPath(ctx context.Context, id int64, path string) (*inputval.Result, error) {
	res := &inputval.Result{}
	taken, err := h.Repo.ImageTaken(ctx, path, id)
	if err != nil {
		return nil, err
	}
	if taken {
		res.Add("img_path", msgImgTaken)
		return res, nil
	}
	exists, err := h.Assets.Exists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		res.Add("img_path", msgImgNotStored)
	}
	return res, nil
}

// HandleUpdateImage handles POST /chamber-members/{id}/update-image.
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

	m, ok := h.load(w, r, msgNotFound)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithUpload(r.Context())
	defer cancel()

	var updated models.ChamberMember
	_, err = h.Assets.Replace(ctx, models.NamespaceChamberMembers, up, m.ImgPath, func(path string) error {
		var err error
		updated, err = h.Repo.SetImage(ctx, m.ID, path)
		return err
	})
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "replace chamber member image failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetReplaced, kind, m.ID)
	apiresp.OK(w, "Chamber member image updated successfully.", h.dash(updated))
}

// HandleDeleteImage handles DELETE /chamber-members/{id}/image.
func (h *Handler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r, "No se encontró el miembro de la cámara con el ID proporcionado.")
	if !ok {
		return
	}
	if !m.HasImage() {
		apiresp.NoOp(w, "El miembro no tiene una imagen para eliminar.")
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Assets.Remove(ctx, m.ImgPath); err != nil {
		apiresp.ServerError(w, h.Log, "delete chamber member image failed", err)
		return
	}
	updated, err := h.Repo.ClearImage(ctx, m.ID)
	if err != nil {
		apiresp.ServerError(w, h.Log, "clear chamber member image failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetRemoved, kind, m.ID)
	apiresp.OK(w, "La imagen del miembro de la cámara se eliminó exitosamente.", h.dash(updated))
}

// HandleDelete handles DELETE /chamber-members/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r, msgNotFound)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Assets.Remove(ctx, m.ImgPath); err != nil {
		apiresp.ServerError(w, h.Log, "delete chamber member image failed", err)
		return
	}
	if err := h.Repo.Delete(ctx, m.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete chamber member failed", err)
		return
	}

	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, m.ID)
	apiresp.Done(w, "Chamber member deleted successfully.")
}

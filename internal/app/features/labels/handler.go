// internal/app/features/labels/handler.go
//
// Labels are short pieces of site copy. The label with id
// models.VideoLabelID is special: its text is the stored path of the site
// video, managed through update-video and always returned as a public URL.
package labels

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/store/audit"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const kind = "labels"

const (
	msgNotFound = "No label found with the provided ID."
	msgEmpty    = "No labels found."
	msgNoVideo  = "No video label found."
)

type Repo interface {
	List(ctx context.Context) ([]models.Label, error)
	Get(ctx context.Context, id int64) (models.Label, error)
	Create(ctx context.Context, l models.Label) (models.Label, error)
	SetText(ctx context.Context, id int64, text string) (models.Label, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Repo   Repo
	Assets *assets.Manager
	Audit  *auditlog.Logger
	Log    *zap.Logger
}

func NewHandler(repo Repo, am *assets.Manager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Assets: am, Audit: audit, Log: logger}
}

// view resolves the video label's stored path to its URL.
func (h *Handler) view(l models.Label) models.Label {
	if l.HasVideo() {
		l.Text = h.Assets.URLOf(l.Text)
	}
	return l
}

type textInput struct {
	Text *string `schema:"text" validate:"required,max=512"`
}

// ServeList handles GET /labels.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	ls, err := h.Repo.List(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list labels failed", err)
		return
	}
	if len(ls) == 0 {
		apiresp.Empty(w, msgEmpty)
		return
	}
	out := make([]models.Label, 0, len(ls))
	for _, l := range ls {
		out = append(out, h.view(l))
	}
	apiresp.OK(w, "Labels retrieved successfully.", out)
}

// ServeShow handles GET /labels/{id}.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	l, ok := h.load(w, r)
	if !ok {
		return
	}
	apiresp.OK(w, "Label retrieved successfully.", h.view(l))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Label, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.Label{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	l, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.Label{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load label failed", err)
		return models.Label{}, false
	}
	return l, true
}

// HandleCreate handles POST /labels.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in textInput
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

	created, err := h.Repo.Create(ctx, models.Label{Text: *in.Text})
	if err != nil {
		apiresp.ServerError(w, h.Log, "create label failed", err)
		return
	}
	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Success(w, http.StatusOK, "Label created successfully.", created)
}

// HandleUpdate handles PUT /labels/{id}. The video label is refused.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	l, ok := h.load(w, r)
	if !ok {
		return
	}
	var in textInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	res := inputval.Validate(in)
	if l.IsVideo() {
		res.Add("text", "The video label can only be changed by uploading a video.")
	}
	if res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	updated, err := h.Repo.SetText(ctx, l.ID, *in.Text)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update label failed", err)
		return
	}
	h.Audit.Updated(ctx, r, auth.UserID(r), kind, l.ID)
	apiresp.OK(w, "Label updated successfully.", updated)
}

// HandleUpdateVideo handles POST /labels/{id}/update-video. Only the video
// label accepts a video.
func (h *Handler) HandleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	form, err := reqdecode.Parse(w, r)
	if err != nil {
		apiresp.Malformed(w)
		return
	}
	res := &inputval.Result{}
	up := h.Assets.CheckVideo("video", form.File("video"), true, res)
	if res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	id, ok := reqdecode.ID(r)
	if !ok || id != models.VideoLabelID {
		apiresp.NotFound(w, msgNoVideo)
		return
	}

	ctx, cancel := timeouts.WithUpload(r.Context())
	defer cancel()

	l, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNoVideo)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load video label failed", err)
		return
	}

	var old *string
	if l.HasVideo() {
		old = &l.Text
	}
	var updated models.Label
	_, err = h.Assets.Replace(ctx, models.NamespaceVideos, up, old, func(path string) error {
		var err error
		updated, err = h.Repo.SetText(ctx, l.ID, path)
		return err
	})
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNoVideo)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "replace video failed", err)
		return
	}

	h.Audit.RecordChanged(ctx, r, auth.UserID(r), audit.EventAssetReplaced, kind, l.ID)
	apiresp.OK(w, "Video label updated successfully.", h.view(updated))
}

// HandleDelete handles DELETE /labels/{id}. Deleting the video label also
// deletes the video.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	l, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if l.HasVideo() {
		if err := h.Assets.Remove(ctx, &l.Text); err != nil {
			apiresp.ServerError(w, h.Log, "delete video failed", err)
			return
		}
	}
	if err := h.Repo.Delete(ctx, l.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete label failed", err)
		return
	}
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, l.ID)
	apiresp.Done(w, "Label deleted successfully.")
}

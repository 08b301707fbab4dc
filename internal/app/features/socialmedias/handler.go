// internal/app/features/socialmedias/handler.go
package socialmedias

import (
	"context"
	"errors"
	"net/http"

	socialmediastore "github.com/dalemusser/chamberhub/internal/app/store/socialmedias"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const kind = "social_medias"

const (
	msgNotFound = "No social media found with the provided ID."
	msgEmpty    = "No social media records found."
)

type Repo interface {
	List(ctx context.Context) ([]models.SocialMedia, error)
	Get(ctx context.Context, id int64) (models.SocialMedia, error)
	Create(ctx context.Context, sm models.SocialMedia) (models.SocialMedia, error)
	Update(ctx context.Context, id int64, d socialmediastore.Data) (models.SocialMedia, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Repo  Repo
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(repo Repo, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Audit: audit, Log: logger}
}

type createInput struct {
	Type  *string `schema:"type" validate:"required,max=24"`
	Label *string `schema:"label" validate:"required,max=128"`
	URL   *string `schema:"url" validate:"required,max=512"`
}

// updateInput only checks the fields that were sent.
type updateInput struct {
	Type  *string `schema:"type" validate:"omitnil,required,max=24"`
	Label *string `schema:"label" validate:"omitnil,required,max=128"`
	URL   *string `schema:"url" validate:"omitnil,required,max=512"`
}

// ServeList handles GET /social-medias.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	sms, err := h.Repo.List(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list social medias failed", err)
		return
	}
	if len(sms) == 0 {
		apiresp.Empty(w, msgEmpty)
		return
	}
	apiresp.OK(w, "Social medias retrieved successfully.", sms)
}

// ServeShow handles GET /social-medias/{id}.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	sm, ok := h.load(w, r)
	if !ok {
		return
	}
	apiresp.OK(w, "Social media retrieved successfully.", sm)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.SocialMedia, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.SocialMedia{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	sm, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.SocialMedia{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load social media failed", err)
		return models.SocialMedia{}, false
	}
	return sm, true
}

// HandleCreate handles POST /social-medias.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
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

	created, err := h.Repo.Create(ctx, models.SocialMedia{Type: *in.Type, Label: *in.Label, URL: *in.URL})
	if err != nil {
		apiresp.ServerError(w, h.Log, "create social media failed", err)
		return
	}
	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Created(w, "SocialMedia created successfully.", created)
}

// HandleUpdate handles PUT /social-medias/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sm, ok := h.load(w, r)
	if !ok {
		return
	}
	var in updateInput
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

	updated, err := h.Repo.Update(ctx, sm.ID, socialmediastore.Data{Type: in.Type, Label: in.Label, URL: in.URL})
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update social media failed", err)
		return
	}
	h.Audit.Updated(ctx, r, auth.UserID(r), kind, sm.ID)
	apiresp.OK(w, "SocialMedia updated successfully.", updated)
}

// HandleDelete handles DELETE /social-medias/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sm, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.Repo.Delete(ctx, sm.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete social media failed", err)
		return
	}
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, sm.ID)
	apiresp.Done(w, "SocialMedia deleted successfully.")
}

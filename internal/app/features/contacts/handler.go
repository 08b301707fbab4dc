// internal/app/features/contacts/handler.go
package contacts

import (
	"context"
	"errors"
	"net/http"

	contactstore "github.com/dalemusser/chamberhub/internal/app/store/contacts"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const kind = "contacts"

const (
	msgNotFound = "No contact found with the provided ID."
	msgEmpty    = "No contacts found."
)

type Repo interface {
	List(ctx context.Context) ([]models.Contact, error)
	Get(ctx context.Context, id int64) (models.Contact, error)
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	Update(ctx context.Context, id int64, d contactstore.Data) (models.Contact, error)
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
	Name    *string `schema:"name" validate:"required,max=128"`
	Email   *string `schema:"email" validate:"required,email,max=128"`
	Phone   *string `schema:"phone" validate:"omitnil,max=13"`
	Message *string `schema:"message" validate:"required,max=2048"`
}

type updateInput struct {
	Name    *string `schema:"name" validate:"omitnil,required,max=128"`
	Email   *string `schema:"email" validate:"omitnil,required,email,max=128"`
	Phone   *string `schema:"phone" validate:"omitnil,max=13"`
	Message *string `schema:"message" validate:"omitnil,required,max=2048"`
}

// message strips markup from a visitor's message.
func message(p *string) *string {
	if p == nil {
		return nil
	}
	v := htmlsanitize.StripTags(*p)
	return &v
}

// ServeList handles GET /contacts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	cs, err := h.Repo.List(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list contacts failed", err)
		return
	}
	if len(cs) == 0 {
		apiresp.Empty(w, msgEmpty)
		return
	}
	apiresp.OK(w, "Contacts retrieved successfully.", cs)
}

// ServeShow handles GET /contacts/{id}.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	apiresp.OK(w, "Contact retrieved successfully.", c)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Contact, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.Contact{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	c, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.Contact{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load contact failed", err)
		return models.Contact{}, false
	}
	return c, true
}

// HandleCreate handles POST /contacts.
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

	created, err := h.Repo.Create(ctx, models.Contact{
		Name:    *in.Name,
		Email:   *in.Email,
		Phone:   in.Phone,
		Message: *message(in.Message),
	})
	if err != nil {
		apiresp.ServerError(w, h.Log, "create contact failed", err)
		return
	}
	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Created(w, "Contact created successfully.", created)
}

// HandleUpdate handles PUT /contacts/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
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

	updated, err := h.Repo.Update(ctx, c.ID, contactstore.Data{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: message(in.Message),
	})
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update contact failed", err)
		return
	}
	h.Audit.Updated(ctx, r, auth.UserID(r), kind, c.ID)
	apiresp.OK(w, "Contact updated successfully.", updated)
}

// HandleDelete handles DELETE /contacts/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.Repo.Delete(ctx, c.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete contact failed", err)
		return
	}
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, c.ID)
	apiresp.Done(w, "Contact deleted successfully.")
}

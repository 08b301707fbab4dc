// internal/app/features/memberships/handler.go
package memberships

import (
	"context"
	"errors"
	"net/http"

	membershipstore "github.com/dalemusser/chamberhub/internal/app/store/memberships"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/i18n"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const kind = "memberships"

const (
	msgNotFound = "No membership found with the provided ID."
	msgEmpty    = "No memberships found."
)

type Repo interface {
	List(ctx context.Context) ([]models.Membership, error)
	Get(ctx context.Context, id int64) (models.Membership, error)
	Create(ctx context.Context, m models.Membership) (models.Membership, error)
	Update(ctx context.Context, id int64, d membershipstore.Data) (models.Membership, error)
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

var text = struct {
	Size        i18n.Field[models.Membership]
	Description i18n.Field[models.Membership]
}{
	Size: i18n.Field[models.Membership]{
		ES: func(m models.Membership) string { return m.SizeES },
		EN: func(m models.Membership) string { return m.SizeEN },
	},
	Description: i18n.Field[models.Membership]{
		ES: func(m models.Membership) string { return m.DescriptionES },
		EN: func(m models.Membership) string { return m.DescriptionEN },
	},
}

type publicView struct {
	ID          int64   `json:"id"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	Price1      float64 `json:"price1"`
	Price2      float64 `json:"price2"`
	Price3      float64 `json:"price3"`
}

func public(m models.Membership, lang i18n.Lang) publicView {
	return publicView{
		ID:          m.ID,
		Size:        text.Size.In(m, lang),
		Description: text.Description.In(m, lang),
		Price1:      m.Price1,
		Price2:      m.Price2,
		Price3:      m.Price3,
	}
}

// membershipInput serves both create and update.
type membershipInput struct {
	SizeES        *string `schema:"size_es" validate:"required,max=255"`
	SizeEN        *string `schema:"size_en" validate:"required,max=255"`
	DescriptionES *string `schema:"description_es" validate:"required,max=255"`
	DescriptionEN *string `schema:"description_en" validate:"required,max=255"`
	Price1        *string `schema:"price1" validate:"required,decimal"`
	Price2        *string `schema:"price2" validate:"required,decimal"`
	Price3        *string `schema:"price3" validate:"required,decimal"`
}

func price(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := inputval.ParseDecimal(*s)
	if err != nil {
		return nil
	}
	return &f
}

func (in membershipInput) data() membershipstore.Data {
	return membershipstore.Data{
		SizeES:        in.SizeES,
		SizeEN:        in.SizeEN,
		DescriptionES: in.DescriptionES,
		DescriptionEN: in.DescriptionEN,
		Price1:        price(in.Price1),
		Price2:        price(in.Price2),
		Price3:        price(in.Price3),
	}
}

func (in membershipInput) model() models.Membership {
	d := in.data()
	return models.Membership{
		SizeES:        *d.SizeES,
		SizeEN:        *d.SizeEN,
		DescriptionES: *d.DescriptionES,
		DescriptionEN: *d.DescriptionEN,
		Price1:        *d.Price1,
		Price2:        *d.Price2,
		Price3:        *d.Price3,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) ([]models.Membership, bool) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	ms, err := h.Repo.List(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list memberships failed", err)
		return nil, false
	}
	if len(ms) == 0 {
		apiresp.Empty(w, msgEmpty)
		return nil, false
	}
	return ms, true
}

// ServeList handles GET /memberships?lang=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ms, ok := h.list(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	out := make([]publicView, 0, len(ms))
	for _, m := range ms {
		out = append(out, public(m, lang))
	}
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Memberships retrieved successfully.", out)
}

// ServeDash handles GET /memberships-dash. The stored records are returned
// as is.
func (h *Handler) ServeDash(w http.ResponseWriter, r *http.Request) {
	ms, ok := h.list(w, r)
	if !ok {
		return
	}
	apiresp.OK(w, "Memberships retrieved successfully.", ms)
}

// ServeShow handles GET /memberships/{id}?lang=.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Membership retrieved successfully.", public(m, lang))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Membership, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.Membership{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	m, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.Membership{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load membership failed", err)
		return models.Membership{}, false
	}
	return m, true
}

// HandleCreate handles POST /memberships.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in membershipInput
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

	created, err := h.Repo.Create(ctx, in.model())
	if err != nil {
		apiresp.ServerError(w, h.Log, "create membership failed", err)
		return
	}
	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Success(w, http.StatusOK, "Membership created successfully.", created)
}

// HandleUpdate handles PUT /memberships/{id}. Every field is required.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in membershipInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}
	m, ok := h.load(w, r)
	if !ok {
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
		apiresp.ServerError(w, h.Log, "update membership failed", err)
		return
	}
	h.Audit.Updated(ctx, r, auth.UserID(r), kind, m.ID)
	apiresp.OK(w, "Membership updated successfully.", updated)
}

// HandleDelete handles DELETE /memberships/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.Repo.Delete(ctx, m.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete membership failed", err)
		return
	}
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, m.ID)
	apiresp.Done(w, "Membership deleted successfully.")
}

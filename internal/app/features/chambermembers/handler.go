// internal/app/features/chambermembers/handler.go
package chambermembers

import (
	"context"
	"errors"
	"net/http"

	chambermemberstore "github.com/dalemusser/chamberhub/internal/app/store/chambermembers"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/i18n"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const kind = "chamber_members"

const (
	msgNotFound = "No chamber member found with the provided ID."
	msgEmpty    = "No chamber members found."

	msgImgNotStored = "The img path field must be a stored chamber member image."
	msgImgTaken     = "The img path has already been taken."
)

type Repo interface {
	List(ctx context.Context) ([]models.ChamberMember, error)
	Get(ctx context.Context, id int64) (models.ChamberMember, error)
	Create(ctx context.Context, m models.ChamberMember) (models.ChamberMember, error)
	Update(ctx context.Context, id int64, d chambermemberstore.Data) (models.ChamberMember, error)
	ImageTaken(ctx context.Context, path string, id int64) (bool, error)
	SetImage(ctx context.Context, id int64, path string) (models.ChamberMember, error)
	ClearImage(ctx context.Context, id int64) (models.ChamberMember, error)
	Delete(ctx context.Context, id int64) error
}

// Handler serves the board and staff roster.
type Handler struct {
	Repo   Repo
	Assets *assets.Manager
	Audit  *auditlog.Logger
	Log    *zap.Logger
}

func NewHandler(repo Repo, am *assets.Manager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Assets: am, Audit: audit, Log: logger}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) ([]models.ChamberMember, bool) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	ms, err := h.Repo.List(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list chamber members failed", err)
		return nil, false
	}
	if len(ms) == 0 {
		apiresp.Empty(w, msgEmpty)
		return nil, false
	}
	return ms, true
}

// ServeList handles GET /chamber-members?lang=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ms, ok := h.list(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	out := make([]publicView, 0, len(ms))
	for _, m := range ms {
		v := h.public(m, lang)
		v.Initials = m.Initials()
		out = append(out, v)
	}
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Chamber members retrieved successfully.", out)
}

// ServeDash handles GET /chamber-members-dash.
func (h *Handler) ServeDash(w http.ResponseWriter, r *http.Request) {
	ms, ok := h.list(w, r)
	if !ok {
		return
	}
	out := make([]dashView, 0, len(ms))
	for _, m := range ms {
		v := h.dash(m)
		v.Initials = m.Initials()
		out = append(out, v)
	}
	apiresp.OK(w, "Chamber members retrieved successfully.", out)
}

// ServeShow handles GET /chamber-members/{id}?lang=.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	m, ok := h.load(w, r, msgNotFound)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Chamber member retrieved successfully.", h.public(m, lang))
}

// load answers 404 with notFound when the member does not exist.
func (h *Handler) load(w http.ResponseWriter, r *http.Request, notFound string) (models.ChamberMember, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, notFound)
		return models.ChamberMember{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	m, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, notFound)
		return models.ChamberMember{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load chamber member failed", err)
		return models.ChamberMember{}, false
	}
	return m, true
}

// internal/app/features/services/handler.go
package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	servicestore "github.com/dalemusser/chamberhub/internal/app/store/services"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/i18n"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const kind = "services"

const (
	msgNotFound = "No service found with the provided ID."
	msgEmpty    = "No services found."
)

type Repo interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id int64) (models.Service, error)
	Create(ctx context.Context, sv models.Service) (models.Service, error)
	UpdateData(ctx context.Context, id int64, d servicestore.Data) (models.Service, error)
	SetImage(ctx context.Context, id int64, path string) (models.Service, error)
	ClearImage(ctx context.Context, id int64) (models.Service, error)
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

func (h *Handler) list(w http.ResponseWriter, r *http.Request) ([]models.Service, bool) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	svs, err := h.Repo.List(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list services failed", err)
		return nil, false
	}
	if len(svs) == 0 {
		apiresp.Empty(w, msgEmpty)
		return nil, false
	}
	return svs, true
}

// ServeList handles GET /services?lang=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	svs, ok := h.list(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	out := make([]publicView, 0, len(svs))
	for _, sv := range svs {
		out = append(out, h.public(sv, lang))
	}
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Services retrieved successfully.", out)
}

// ServeDash handles GET /services-dash.
func (h *Handler) ServeDash(w http.ResponseWriter, r *http.Request) {
	svs, ok := h.list(w, r)
	if !ok {
		return
	}
	out := make([]dashView, 0, len(svs))
	for _, sv := range svs {
		out = append(out, h.dash(sv))
	}
	apiresp.OK(w, "Services retrieved successfully.", out)
}

// ServeShow handles GET /services/{id}?lang=.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	sv, ok := h.load(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Service retrieved successfully.", h.public(sv, lang))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Service, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.Service{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	sv, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.Service{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load service failed", err)
		return models.Service{}, false
	}
	return sv, true
}

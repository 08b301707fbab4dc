// internal/app/features/events/handler.go
package events

import (
	"context"
	"errors"
	"net/http"
	"time"

	eventstore "github.com/dalemusser/chamberhub/internal/app/store/events"
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

// kind names events in audit records and on the change feed.
const kind = "events"

const (
	msgNotFound = "No event found with the provided ID."
	msgEmpty    = "No events found."
)

// Repo is the subset of the event store the handlers use.
type Repo interface {
	List(ctx context.Context, f eventstore.Filter, now time.Time) ([]models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, e models.Event) (models.Event, error)
	UpdateData(ctx context.Context, id int64, d eventstore.Data) (models.Event, error)
	SetImage(ctx context.Context, id int64, path string) (models.Event, error)
	ClearImage(ctx context.Context, id int64) (models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Repo   Repo
	Assets *assets.Manager
	Audit  *auditlog.Logger
	Log    *zap.Logger
	Now    func() time.Time
}

func NewHandler(repo Repo, am *assets.Manager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Assets: am, Audit: audit, Log: logger, Now: time.Now}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) ([]models.Event, bool) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	f := eventstore.ParseFilter(r.URL.Query().Get("filter"))
	evs, err := h.Repo.List(ctx, f, h.Now())
	if err != nil {
		apiresp.ServerError(w, h.Log, "list events failed", err)
		return nil, false
	}
	if len(evs) == 0 {
		apiresp.Empty(w, msgEmpty)
		return nil, false
	}
	return evs, true
}

// ServeList handles GET /events?filter=&lang=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	evs, ok := h.list(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	out := make([]publicView, 0, len(evs))
	for _, e := range evs {
		out = append(out, h.public(e, lang))
	}
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Events retrieved successfully.", out)
}

// ServeDash handles GET /events-dash?filter=. Both languages are returned.
func (h *Handler) ServeDash(w http.ResponseWriter, r *http.Request) {
	evs, ok := h.list(w, r)
	if !ok {
		return
	}
	out := make([]dashView, 0, len(evs))
	for _, e := range evs {
		out = append(out, h.dash(e))
	}
	apiresp.OK(w, "Events retrieved successfully.", out)
}

// ServeShow handles GET /events/{id}?lang=.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	e, ok := h.load(w, r)
	if !ok {
		return
	}
	lang := i18n.FromRequest(r)
	i18n.SetContentLanguage(w, lang)
	apiresp.OK(w, "Event retrieved successfully.", h.public(e, lang))
}

// load fetches the event named by the route, answering 404 when absent.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Event, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.Event{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	e, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.Event{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load event failed", err)
		return models.Event{}, false
	}
	return e, true
}

// internal/app/features/joinrequests/handler.go
package joinrequests

import (
	"context"
	"errors"
	"net/http"

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

const kind = "join_requests"

const msgNotFound = "No join request found with the provided ID."

type Repo interface {
	List(ctx context.Context, status *int) ([]models.JoinRequest, error)
	Get(ctx context.Context, id int64) (models.JoinRequest, error)
	Create(ctx context.Context, jr models.JoinRequest) (models.JoinRequest, error)
	SetStatus(ctx context.Context, id int64, status int) (models.JoinRequest, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (models.StatusCounts, error)
}

type Handler struct {
	Repo  Repo
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(repo Repo, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Audit: audit, Log: logger}
}

// ServeList handles GET /join-requests?status=. The raw status value is
// echoed as "filter"; only 1..4 narrow the list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var filter *string
	var status *int
	if q := r.URL.Query(); q.Has("status") {
		raw := q.Get("status")
		filter = &raw
		if n, err := inputval.ParseInteger(raw); err == nil && models.IsKnownStatus(n) {
			status = &n
		}
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	jrs, err := h.Repo.List(ctx, status)
	if err != nil {
		apiresp.ServerError(w, h.Log, "list join requests failed", err)
		return
	}
	apiresp.Filtered(w, filter, "Join requests retrieved successfully.", "No join requests found.", jrs, len(jrs))
}

// ServeShow handles GET /join-requests/{id}.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	jr, ok := h.load(w, r)
	if !ok {
		return
	}
	apiresp.OK(w, "Join request retrieved successfully.", jr)
}

type chartsResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	models.StatusCounts
}

// ServeCharts handles GET /join-requests-charts. The counts sit at the top
// level of the body, beside status and message.
func (h *Handler) ServeCharts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	counts, err := h.Repo.CountByStatus(ctx)
	if err != nil {
		apiresp.ServerError(w, h.Log, "count join requests failed", err)
		return
	}
	apiresp.JSON(w, http.StatusOK, chartsResponse{
		Status:       true,
		Message:      "Query completed successfully",
		StatusCounts: counts,
	})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.JoinRequest, bool) {
	id, ok := reqdecode.ID(r)
	if !ok {
		apiresp.NotFound(w, msgNotFound)
		return models.JoinRequest{}, false
	}
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	jr, err := h.Repo.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return models.JoinRequest{}, false
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "load join request failed", err)
		return models.JoinRequest{}, false
	}
	return jr, true
}

// HandleCreate handles POST /join-requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in joinInput
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
		apiresp.ServerError(w, h.Log, "create join request failed", err)
		return
	}
	h.Audit.Created(ctx, r, auth.UserID(r), kind, created.ID)
	apiresp.Created(w, "Join request created successfully.", created)
}

// HandleUpdate handles PUT /join-requests/{id}. Only the status changes.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in statusInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}
	jr, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	status, _ := inputval.ParseInteger(*in.Status)
	updated, err := h.Repo.SetStatus(ctx, jr.ID, status)
	if errors.Is(err, records.ErrNotFound) {
		apiresp.NotFound(w, msgNotFound)
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "update join request failed", err)
		return
	}
	h.Audit.Updated(ctx, r, auth.UserID(r), kind, jr.ID)
	apiresp.OK(w, "Join request status updated successfully.", updated)
}

// HandleDelete handles DELETE /join-requests/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	jr, ok := h.load(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.Repo.Delete(ctx, jr.ID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "delete join request failed", err)
		return
	}
	h.Audit.Deleted(ctx, r, auth.UserID(r), kind, jr.ID)
	apiresp.Done(w, "Join request deleted successfully.")
}

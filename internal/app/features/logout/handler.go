// internal/app/features/logout/handler.go
package logout

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Tokens interface {
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Tokens Tokens
	Audit  *auditlog.Logger
	Log    *zap.Logger
}

func NewHandler(tokens Tokens, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Tokens: tokens, Audit: audit, Log: logger}
}

// HandleLogout revokes the token the request was made with. Other tokens
// of the same user stay valid.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s, ok := auth.Current(r)
	if !ok {
		apiresp.Unauthorized(w, "Unauthenticated.")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.Tokens.Delete(ctx, s.TokenID); err != nil && !errors.Is(err, records.ErrNotFound) {
		apiresp.ServerError(w, h.Log, "revoke token failed", err)
		return
	}
	h.Audit.Logout(ctx, r, s.User.ID)
	apiresp.Done(w, "Logged out successfully.")
}

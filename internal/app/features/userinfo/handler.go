// internal/app/features/userinfo/handler.go
package userinfo

import (
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeMe returns the user who owns the bearer token.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	s, ok := auth.Current(r)
	if !ok {
		apiresp.Unauthorized(w, "Unauthenticated.")
		return
	}
	apiresp.OK(w, "User retrieved successfully.", s.User)
}

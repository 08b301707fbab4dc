// internal/app/features/login/handler.go
//
// Package login creates administrator accounts and exchanges credentials
// for personal bearer tokens.
package login

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	userstore "github.com/dalemusser/chamberhub/internal/app/store/users"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/dalemusser/chamberhub/internal/app/system/normalize"
	"github.com/dalemusser/chamberhub/internal/app/system/ratelimit"
	"github.com/dalemusser/chamberhub/internal/app/system/reqdecode"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"go.uber.org/zap"
)

const msgBadCredentials = "Invalid credentials."

type Users interface {
	Create(ctx context.Context, name, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

type Tokens interface {
	Create(ctx context.Context, userID int64, name, hash string, ttl time.Duration) (models.AccessToken, error)
}

type Handler struct {
	Users    Users
	Tokens   Tokens
	Limiter  *ratelimit.LoginLimiter // nil disables throttling
	Audit    *auditlog.Logger
	TokenTTL time.Duration // 0 = tokens never expire
	Log      *zap.Logger
}

func NewHandler(users Users, tokens Tokens, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger, ttl time.Duration, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Tokens: tokens, Limiter: limiter, Audit: audit, TokenTTL: ttl, Log: logger}
}

type signupInput struct {
	Name     *string `schema:"name" validate:"required,max=255"`
	Email    *string `schema:"email" validate:"required,email,max=255"`
	Password *string `schema:"password" validate:"required,min=8"`
}

type loginInput struct {
	Email    *string `schema:"email" validate:"required,email"`
	Password *string `schema:"password" validate:"required"`
}

type tokenView struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   *time.Time  `json:"expires_at"`
}

// issue creates a token for u. The plaintext only exists in this response.
func (h *Handler) issue(ctx context.Context, u models.User, name string) (tokenView, error) {
	plain, hash, err := auth.NewToken()
	if err != nil {
		return tokenView{}, err
	}
	tok, err := h.Tokens.Create(ctx, u.ID, name, hash, h.TokenTTL)
	if err != nil {
		return tokenView{}, err
	}
	return tokenView{User: u, AccessToken: plain, TokenType: "Bearer", ExpiresAt: tok.ExpiresAt}, nil
}

// HandleSignup handles POST /auth/signup.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in signupInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	u, err := h.Users.Create(ctx, *in.Name, *in.Email, *in.Password)
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		apiresp.Invalid(w, []string{"The email has already been taken."})
		return
	}
	if err != nil {
		apiresp.ServerError(w, h.Log, "create user failed", err)
		return
	}

	out, err := h.issue(ctx, u, "signup")
	if err != nil {
		apiresp.ServerError(w, h.Log, "issue token failed", err)
		return
	}
	h.Audit.Signup(ctx, r, u.ID, u.Email)
	apiresp.Created(w, "User registered successfully.", out)
}

// HandleLogin handles POST /auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if _, err := reqdecode.Bind(w, r, &in); err != nil {
		apiresp.Malformed(w)
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Validation(w, res)
		return
	}
	email := normalize.Email(*in.Email)

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if h.Limiter != nil {
		if ok, msg := h.Limiter.Check(r, email); !ok {
			h.Audit.LoginRateLimited(ctx, r, email)
			apiresp.TooManyRequests(w, msg)
			return
		}
	}

	u, err := h.Users.Authenticate(ctx, email, *in.Password)
	switch {
	case errors.Is(err, records.ErrNotFound):
		h.Audit.LoginFailedUserNotFound(ctx, r, email)
		apiresp.Unauthorized(w, msgBadCredentials)
		return
	case errors.Is(err, userstore.ErrBadCredentials):
		h.Audit.LoginFailedWrongPassword(ctx, r, u.ID, email)
		apiresp.Unauthorized(w, msgBadCredentials)
		return
	case err != nil:
		apiresp.ServerError(w, h.Log, "authenticate failed", err)
		return
	}

	out, err := h.issue(ctx, u, "login")
	if err != nil {
		apiresp.ServerError(w, h.Log, "issue token failed", err)
		return
	}
	if h.Limiter != nil {
		h.Limiter.Succeeded(email)
	}
	h.Audit.LoginSuccess(ctx, r, u.ID, email)
	h.Log.Info("user logged in", zap.Int64("user_id", u.ID))
	apiresp.OK(w, "Login successful.", out)
}

// internal/app/system/auth/auth.go
//
// Package auth guards write endpoints with personal bearer tokens.
//
// A token is 32 random bytes, hex encoded, handed to the client once at
// signup or login. Only its SHA-256 is stored. Requests carry it as
//
//	Authorization: Bearer <token>
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned for unknown, revoked or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// NewToken returns a fresh plaintext token and the hash to persist.
func NewToken() (plain, hash string, err error) {
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return "", "", errors.New("generate token: random source failed")
	}
	plain = hex.EncodeToString(key)
	return plain, HashToken(plain), nil
}

// HashToken is the stored form of a plaintext token.
func HashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(h[7:])
	return tok, tok != ""
}

// TokenStore finds stored tokens by hash and records their use.
// FindByHash returns nil, nil when no token matches.
type TokenStore interface {
	FindByHash(ctx context.Context, hash string) (*models.AccessToken, error)
	Touch(ctx context.Context, id string, at time.Time) error
}

// UserStore loads the token owner. FindByID returns nil, nil when the
// user no longer exists.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Session is what the middleware puts into the request context.
type Session struct {
	User    models.User
	TokenID string
}

type ctxKey string

const sessionKey ctxKey = "authSession"

// WithSession attaches s to the request. Tests use it to bypass the
// middleware.
func WithSession(r *http.Request, s *Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionKey, s))
}

// Current returns the authenticated session, if any.
func Current(r *http.Request) (*Session, bool) {
	s, ok := r.Context().Value(sessionKey).(*Session)
	return s, ok && s != nil
}

// UserID returns the id of the authenticated user, or 0.
func UserID(r *http.Request) int64 {
	if s, ok := Current(r); ok {
		return s.User.ID
	}
	return 0
}

// Guard resolves bearer tokens to users.
type Guard struct {
	Tokens TokenStore
	Users  UserStore
	Log    *zap.Logger
	Now    func() time.Time
}

func NewGuard(tokens TokenStore, users UserStore, logger *zap.Logger) *Guard {
	return &Guard{Tokens: tokens, Users: users, Log: logger, Now: time.Now}
}

// Resolve maps a plaintext token to its session.
func (g *Guard) Resolve(ctx context.Context, plain string) (*Session, error) {
	tok, err := g.Tokens.FindByHash(ctx, HashToken(plain))
	if err != nil {
		return nil, err
	}
	now := g.Now().UTC()
	if tok == nil || tok.Expired(now) {
		return nil, ErrInvalidToken
	}
	u, err := g.Users.FindByID(ctx, tok.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	if err := g.Tokens.Touch(ctx, tok.ID, now); err != nil {
		g.Log.Warn("failed to record token use", zap.String("token_id", tok.ID), zap.Error(err))
	}
	return &Session{User: *u, TokenID: tok.ID}, nil
}

// RequireToken rejects requests without a valid bearer token with 401.
func (g *Guard) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plain, ok := BearerToken(r)
		if !ok {
			apiresp.Unauthorized(w, "Unauthenticated.")
			return
		}
		s, err := g.Resolve(r.Context(), plain)
		if err != nil {
			if !errors.Is(err, ErrInvalidToken) {
				g.Log.Error("token lookup failed", zap.Error(err))
			}
			apiresp.Unauthorized(w, "Unauthenticated.")
			return
		}
		next.ServeHTTP(w, WithSession(r, s))
	})
}

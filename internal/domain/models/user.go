// internal/domain/models/user.go
package models

import "time"

// User is an administrator allowed to edit site content.
type User struct {
	ID           int64  `bson:"_id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	EmailCI      string `bson:"email_ci" json:"-"` // folded for lookups
	PasswordHash string `bson:"password_hash" json:"-"`

	Timestamps `bson:",inline"`
}

// AccessToken is a personal bearer token. Only the SHA-256 of the secret is
// stored.
type AccessToken struct {
	ID         string     `bson:"_id"`
	UserID     int64      `bson:"user_id"`
	Name       string     `bson:"name"`
	TokenHash  string     `bson:"token_hash"`
	LastUsedAt *time.Time `bson:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `bson:"expires_at,omitempty"`
	CreatedAt  time.Time  `bson:"created_at"`
}

// Expired reports whether the token is past its expiry at now.
func (t AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// internal/app/store/tokens/tokenstore.go
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists hashed bearer tokens in access_tokens.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("access_tokens")}
}

// Create stores a token for userID. A zero ttl means the token never
// expires.
func (s *Store) Create(ctx context.Context, userID int64, name, hash string, ttl time.Duration) (models.AccessToken, error) {
	now := records.Now()
	t := models.AccessToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		TokenHash: hash,
		CreatedAt: now,
	}
	if ttl > 0 {
		exp := now.Add(ttl)
		t.ExpiresAt = &exp
	}
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.AccessToken{}, fmt.Errorf("insert token: %w", err)
	}
	return t, nil
}

// FindByHash returns nil, nil when no token matches.
func (s *Store) FindByHash(ctx context.Context, hash string) (*models.AccessToken, error) {
	var t models.AccessToken
	err := s.c.FindOne(ctx, bson.M{"token_hash": hash}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}
	return &t, nil
}

// Touch records the last use of a token.
func (s *Store) Touch(ctx context.Context, id string, at time.Time) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_used_at": at}})
	return err
}

// Delete revokes one token.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if res.DeletedCount == 0 {
		return records.ErrNotFound
	}
	return nil
}

// DeleteExpired removes tokens whose expiry is at or before now.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now}})
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return res.DeletedCount, nil
}

// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/normalize"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for new password hashes.
var BcryptCost = 12

var (
	// ErrDuplicateEmail is returned when an account with the email exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrBadCredentials is returned by Authenticate for a wrong password.
	ErrBadCredentials = errors.New("invalid credentials")
)

type Store struct {
	coll records.Collection[models.User]
}

func New(db *mongo.Database) *Store {
	return &Store{coll: records.NewCollection[models.User](db, "users")}
}

// Create hashes password and inserts the account.
func (s *Store) Create(ctx context.Context, name, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	id, err := s.coll.NextID(ctx)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           id,
		Name:         normalize.Name(name),
		Email:        normalize.Email(email),
		EmailCI:      normalize.Email(email),
		PasswordHash: string(hash),
	}
	u.Stamp(records.Now())

	if err := s.coll.Insert(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID returns records.ErrNotFound for an unknown id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.User, error) {
	return s.coll.Get(ctx, id)
}

// FindByID returns nil, nil for an unknown id.
func (s *Store) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.coll.Get(ctx, id)
	if errors.Is(err, records.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up an account by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.coll.Raw().FindOne(ctx, bson.M{"email_ci": normalize.Email(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, records.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Authenticate returns the account for email when password matches.
// An unknown email yields records.ErrNotFound; a wrong password
// ErrBadCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return u, ErrBadCredentials
	}
	return u, nil
}

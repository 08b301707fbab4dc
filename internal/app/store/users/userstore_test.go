package userstore_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	userstore "github.com/dalemusser/chamberhub/internal/app/store/users"
	"github.com/dalemusser/chamberhub/internal/app/system/indexes"
	"github.com/dalemusser/chamberhub/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func newStore(t *testing.T) *userstore.Store {
	t.Helper()
	userstore.BcryptCost = bcrypt.MinCost
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	return userstore.New(db)
}

func TestCreate_NormalizesAndHashes(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, "  Ana   Torres ", " Ana@Example.COM ", "secret123")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected an id")
	}
	if u.Name != "Ana Torres" {
		t.Errorf("Name: got %q, want %q", u.Name, "Ana Torres")
	}
	if u.EmailCI != "ana@example.com" {
		t.Errorf("EmailCI: got %q", u.EmailCI)
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Error("expected password to be hashed")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := store.Create(ctx, "Other", "ANA@example.com", "secret456")
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ana", "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	u, err := store.Authenticate(ctx, "ANA@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("ID: got %d, want %d", u.ID, created.ID)
	}

	if _, err := store.Authenticate(ctx, "ana@example.com", "wrong"); !errors.Is(err, userstore.ErrBadCredentials) {
		t.Errorf("wrong password: got %v, want ErrBadCredentials", err)
	}
	if _, err := store.Authenticate(ctx, "nobody@example.com", "secret123"); !errors.Is(err, records.ErrNotFound) {
		t.Errorf("unknown email: got %v, want ErrNotFound", err)
	}
}

func TestFindByID(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.FindByID(ctx, 404)
	if err != nil || u != nil {
		t.Errorf("FindByID(unknown): got %v, %v; want nil, nil", u, err)
	}

	created, _ := store.Create(ctx, "Ana", "ana@example.com", "secret123")
	u, err = store.FindByID(ctx, created.ID)
	if err != nil || u == nil || u.Email != "ana@example.com" {
		t.Errorf("FindByID: got %v, %v", u, err)
	}
}

package tokenstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/store/records"
	tokenstore "github.com/dalemusser/chamberhub/internal/app/store/tokens"
	"github.com/dalemusser/chamberhub/internal/testutil"
)

func TestCreateFindTouchDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := tokenstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tok, err := store.Create(ctx, 7, "login", "hash-1", 0)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tok.ExpiresAt != nil {
		t.Error("zero ttl should not set an expiry")
	}

	found, err := store.FindByHash(ctx, "hash-1")
	if err != nil || found == nil {
		t.Fatalf("FindByHash: got %v, %v", found, err)
	}
	if found.UserID != 7 || found.ID != tok.ID {
		t.Errorf("FindByHash: got %+v", found)
	}

	at := time.Now().UTC().Truncate(time.Millisecond)
	if err := store.Touch(ctx, tok.ID, at); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	found, _ = store.FindByHash(ctx, "hash-1")
	if found.LastUsedAt == nil || !found.LastUsedAt.Equal(at) {
		t.Errorf("LastUsedAt: got %v, want %v", found.LastUsedAt, at)
	}

	if err := store.Delete(ctx, tok.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, tok.ID); !errors.Is(err, records.ErrNotFound) {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
	if found, err := store.FindByHash(ctx, "hash-1"); err != nil || found != nil {
		t.Errorf("FindByHash after delete: got %v, %v", found, err)
	}
}

func TestDeleteExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := tokenstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, 1, "short", "h-short", time.Minute); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, 1, "forever", "h-forever", 0); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.DeleteExpired(ctx, time.Now().Add(2*time.Minute))
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted: got %d, want 1", n)
	}
	if found, _ := store.FindByHash(ctx, "h-forever"); found == nil {
		t.Error("token without expiry should survive")
	}
}

package labelstore_test

import (
	"errors"
	"testing"

	labelstore "github.com/dalemusser/chamberhub/internal/app/store/labels"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/dalemusser/chamberhub/internal/testutil"
)

func TestLabels_Lifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := labelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, text := range []string{"Bienvenidos", ""} {
		if _, err := store.Create(ctx, models.Label{Text: text}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	video, err := store.Get(ctx, models.VideoLabelID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !video.IsVideo() || video.HasVideo() {
		t.Errorf("video label: IsVideo=%v HasVideo=%v", video.IsVideo(), video.HasVideo())
	}

	video, err = store.SetText(ctx, models.VideoLabelID, "videos/intro.mp4")
	if err != nil {
		t.Fatalf("SetText failed: %v", err)
	}
	if !video.HasVideo() {
		t.Error("expected the video label to hold a video")
	}

	ls, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ls) != 2 || ls[0].Text != "Bienvenidos" {
		t.Errorf("List: got %+v", ls)
	}

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, 1); !errors.Is(err, records.ErrNotFound) {
		t.Errorf("Get after delete: got %v, want ErrNotFound", err)
	}
}

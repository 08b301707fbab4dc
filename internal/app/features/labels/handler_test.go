package labels_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/chamberhub/internal/app/features/labels"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/dalemusser/chamberhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Label
}

func (m *memRepo) List(context.Context) ([]models.Label, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Label{}
	for id := int64(1); id <= m.nextID; id++ {
		if l, ok := m.rows[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (models.Label, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.rows[id]
	if !ok {
		return models.Label{}, records.ErrNotFound
	}
	return l, nil
}

func (m *memRepo) Create(_ context.Context, l models.Label) (models.Label, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	l.ID = m.nextID
	l.Stamp(records.Now())
	m.rows[l.ID] = l
	return l, nil
}

func (m *memRepo) SetText(_ context.Context, id int64, text string) (models.Label, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.rows[id]
	if !ok {
		return models.Label{}, records.ErrNotFound
	}
	l.Text = text
	m.rows[id] = l
	return l, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return records.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type fixture struct {
	repo    *memRepo
	backend *testutil.MemBackend
	router  chi.Router
}

// newFixture seeds label 1 (plain text) and label 2 (the video slot).
func newFixture(video string) *fixture {
	repo := &memRepo{rows: map[int64]models.Label{}}
	repo.Create(context.Background(), models.Label{Text: "Bienvenidos"})
	repo.Create(context.Background(), models.Label{Text: video})

	backend := testutil.NewMemBackend()
	if video != "" {
		backend.Seed(video, testutil.MP4)
	}
	am := assets.New(backend, assets.Config{PublicURL: "http://localhost:8080/storage/"}, zap.NewNop())
	h := labels.NewHandler(repo, am, nil, zap.NewNop())
	r := chi.NewRouter()
	labels.Routes(r, h, func(next http.Handler) http.Handler { return next })
	return &fixture{repo: repo, backend: backend, router: r}
}

func (f *fixture) do(req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestList_VideoAsURL(t *testing.T) {
	f := newFixture("videos/intro.mp4")

	rec := f.do(testutil.JSONRequest(t, "GET", "/labels", nil))
	rec.AssertStatus(t, http.StatusOK)
	var ls []models.Label
	rec.DecodeData(t, &ls)
	if len(ls) != 2 {
		t.Fatalf("count: got %d", len(ls))
	}
	if ls[0].Text != "Bienvenidos" {
		t.Errorf("label 1: got %q", ls[0].Text)
	}
	if ls[1].Text != "http://localhost:8080/storage/videos/intro.mp4" {
		t.Errorf("label 2: got %q", ls[1].Text)
	}

	rec = f.do(testutil.JSONRequest(t, "GET", "/labels/2", nil))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "http://localhost:8080/storage/videos/intro.mp4")
}

func TestUpdate(t *testing.T) {
	f := newFixture("")

	rec := f.do(testutil.FormRequest("PUT", "/labels/1", url.Values{"text": {"Welcome"}}))
	rec.AssertStatus(t, http.StatusOK)

	rec = f.do(testutil.FormRequest("PUT", "/labels/1", url.Values{"text": {strings.Repeat("a", 513)}}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "The text field must not be greater than 512 characters.")

	rec = f.do(testutil.FormRequest("PUT", "/labels/2", url.Values{"text": {"hack"}}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = f.do(testutil.FormRequest("PUT", "/labels/9", url.Values{"text": {"x"}}))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestUpdateVideo_ReplacesObject(t *testing.T) {
	f := newFixture("videos/old.mp4")

	rec := f.do(testutil.MultipartRequest(t, "POST", "/labels/2/update-video", nil,
		testutil.File{Field: "video", Filename: "new.mp4", Content: testutil.MP4}))
	rec.AssertStatus(t, http.StatusOK)

	paths := f.backend.Paths()
	if len(paths) != 1 || paths[0] == "videos/old.mp4" || !strings.HasPrefix(paths[0], "videos/") {
		t.Fatalf("objects: got %v", paths)
	}
	var l models.Label
	rec.DecodeData(t, &l)
	if l.Text != "http://localhost:8080/storage/"+paths[0] {
		t.Errorf("text: got %q", l.Text)
	}
}

func TestUpdateVideo_Rules(t *testing.T) {
	f := newFixture("")

	rec := f.do(testutil.MultipartRequest(t, "POST", "/labels/2/update-video", nil))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "The video field is required.")

	rec = f.do(testutil.MultipartRequest(t, "POST", "/labels/2/update-video", nil,
		testutil.File{Field: "video", Filename: "x.png", Content: testutil.PNG}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = f.do(testutil.MultipartRequest(t, "POST", "/labels/1/update-video", nil,
		testutil.File{Field: "video", Filename: "new.mp4", Content: testutil.MP4}))
	rec.AssertStatus(t, http.StatusNotFound)
	if env := rec.Envelope(t); env.Message != "No video label found." {
		t.Errorf("message: got %q", env.Message)
	}
	if len(f.backend.Paths()) != 0 {
		t.Errorf("objects: got %v", f.backend.Paths())
	}
}

func TestDelete_VideoLabelRemovesObject(t *testing.T) {
	f := newFixture("videos/intro.mp4")

	rec := f.do(testutil.JSONRequest(t, "DELETE", "/labels/2", nil))
	rec.AssertStatus(t, http.StatusOK)
	if len(f.backend.Paths()) != 0 {
		t.Errorf("objects: got %v", f.backend.Paths())
	}

	rec = f.do(testutil.JSONRequest(t, "DELETE", "/labels/2", nil))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestVideoLabel_ForeignTextIsNotAnObject(t *testing.T) {
	const poster = "events/0001-poster.png"

	t.Run("delete keeps the other kind's object", func(t *testing.T) {
		f := newFixture(poster)
		rec := f.do(testutil.JSONRequest(t, "DELETE", "/labels/2", nil))
		rec.AssertStatus(t, http.StatusOK)
		if paths := f.backend.Paths(); len(paths) != 1 || paths[0] != poster {
			t.Errorf("objects: got %v", paths)
		}
	})

	t.Run("update-video leaves it in place", func(t *testing.T) {
		f := newFixture(poster)
		rec := f.do(testutil.MultipartRequest(t, "POST", "/labels/2/update-video", nil,
			testutil.File{Field: "video", Filename: "new.mp4", Content: testutil.MP4}))
		rec.AssertStatus(t, http.StatusOK)

		paths := f.backend.Paths()
		if len(paths) != 2 {
			t.Fatalf("objects: got %v", paths)
		}
		kept := false
		for _, p := range paths {
			if p == poster {
				kept = true
			}
		}
		if !kept {
			t.Errorf("expected %s to survive, got %v", poster, paths)
		}
	})

	t.Run("show returns the text as is", func(t *testing.T) {
		f := newFixture(poster)
		rec := f.do(testutil.JSONRequest(t, "GET", "/labels/2", nil))
		rec.AssertStatus(t, http.StatusOK)
		var l models.Label
		rec.DecodeData(t, &l)
		if l.Text != poster {
			t.Errorf("text: got %q", l.Text)
		}
	})
}

func TestCreate(t *testing.T) {
	f := newFixture("")
	rec := f.do(testutil.JSONRequest(t, "POST", "/labels", map[string]string{"text": "Hola"}))
	rec.AssertStatus(t, http.StatusOK)

	rec = f.do(testutil.JSONRequest(t, "POST", "/labels", map[string]string{}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "The text field is required.")
}

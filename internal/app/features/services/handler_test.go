package services_test

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/chamberhub/internal/app/features/services"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	servicestore "github.com/dalemusser/chamberhub/internal/app/store/services"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/dalemusser/chamberhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Service
}

func newMemRepo() *memRepo { return &memRepo{rows: map[int64]models.Service{}} }

func (m *memRepo) List(context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Service{}
	for id := int64(1); id <= m.nextID; id++ {
		if sv, ok := m.rows[id]; ok {
			out = append(out, sv)
		}
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sv, ok := m.rows[id]
	if !ok {
		return models.Service{}, records.ErrNotFound
	}
	return sv, nil
}

func (m *memRepo) Create(_ context.Context, sv models.Service) (models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	sv.ID = m.nextID
	sv.Stamp(records.Now())
	m.rows[sv.ID] = sv
	return sv, nil
}

func (m *memRepo) patch(id int64, fn func(*models.Service)) (models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sv, ok := m.rows[id]
	if !ok {
		return models.Service{}, records.ErrNotFound
	}
	fn(&sv)
	m.rows[id] = sv
	return sv, nil
}

func (m *memRepo) UpdateData(_ context.Context, id int64, d servicestore.Data) (models.Service, error) {
	return m.patch(id, func(sv *models.Service) {
		if d.Phone != nil {
			sv.Phone = *d.Phone
		}
		if d.ContactName != nil {
			sv.ContactName = *d.ContactName
		}
	})
}

func (m *memRepo) SetImage(_ context.Context, id int64, path string) (models.Service, error) {
	return m.patch(id, func(sv *models.Service) { sv.ImgPath = &path })
}

func (m *memRepo) ClearImage(_ context.Context, id int64) (models.Service, error) {
	return m.patch(id, func(sv *models.Service) { sv.ImgPath = nil })
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
	backend *testutil.MemBackend
	router  chi.Router
}

func newFixture() *fixture {
	backend := testutil.NewMemBackend()
	am := assets.New(backend, assets.Config{PublicURL: "https://camara.example/storage"}, zap.NewNop())
	h := services.NewHandler(newMemRepo(), am, auditlog.New(nil, zap.NewNop(), auditlog.Config{}, nil), zap.NewNop())
	r := chi.NewRouter()
	services.Routes(r, h, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, testutil.WithUser(r, testutil.TestUser()))
		})
	})
	return &fixture{backend: backend, router: r}
}

func (f *fixture) do(req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func fields() map[string]string {
	return map[string]string{
		"title_es":       "Asesoría",
		"title_en":       "Consulting",
		"description_es": "<p>Apoyo <script>alert(1)</script>legal</p>",
		"description_en": "Legal support",
		"contact_name":   "Luis",
		"phone":          "6641234567",
	}
}

func (f *fixture) create(t *testing.T, files ...testutil.File) string {
	t.Helper()
	rec := f.do(testutil.MultipartRequest(t, "POST", "/services", fields(), files...))
	rec.AssertStatus(t, http.StatusOK)
	var data struct {
		ID int64 `json:"id"`
	}
	rec.DecodeData(t, &data)
	return strconv.FormatInt(data.ID, 10)
}

func TestCreate_SanitizesDescription(t *testing.T) {
	f := newFixture()
	id := f.create(t)

	rec := f.do(testutil.JSONRequest(t, "GET", "/services/"+id, nil))
	rec.AssertStatus(t, http.StatusOK)
	var view map[string]any
	rec.DecodeData(t, &view)
	desc, _ := view["description"].(string)
	if strings.Contains(desc, "<script>") {
		t.Errorf("description not sanitized: %q", desc)
	}
	if !strings.Contains(desc, "<p>") {
		t.Errorf("description lost safe markup: %q", desc)
	}
	if view["title"] != "Asesoría" {
		t.Errorf("title: got %v", view["title"])
	}
}

func TestShow_English(t *testing.T) {
	f := newFixture()
	id := f.create(t)

	rec := f.do(testutil.JSONRequest(t, "GET", "/services/"+id+"?lang=en", nil))
	rec.AssertStatus(t, http.StatusOK)
	var view map[string]any
	rec.DecodeData(t, &view)
	if view["title"] != "Consulting" || view["description"] != "Legal support" {
		t.Errorf("view: got %v", view)
	}
}

func TestCreate_PhoneTooLong(t *testing.T) {
	f := newFixture()
	body := fields()
	body["phone"] = "+52 664 123 4567 ext 9"
	rec := f.do(testutil.MultipartRequest(t, "POST", "/services", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "The phone field must not be greater than 13 characters.")
}

func TestListAndDash(t *testing.T) {
	f := newFixture()
	rec := f.do(testutil.JSONRequest(t, "GET", "/services-dash", nil))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, `"data":[]`)

	f.create(t, testutil.File{Field: "img", Filename: "logo.png", Content: testutil.PNG})
	rec = f.do(testutil.JSONRequest(t, "GET", "/services-dash", nil))
	rec.AssertStatus(t, http.StatusOK)
	var views []map[string]any
	rec.DecodeData(t, &views)
	if len(views) != 1 {
		t.Fatalf("count: got %d", len(views))
	}
	img, _ := views[0]["img_path"].(string)
	if !strings.HasPrefix(img, "https://camara.example/storage/services/") {
		t.Errorf("img_path: got %q", img)
	}
}

func TestDeleteImage_Messages(t *testing.T) {
	f := newFixture()
	id := f.create(t)

	rec := f.do(testutil.JSONRequest(t, "DELETE", "/services/"+id+"/image", nil))
	rec.AssertStatus(t, http.StatusBadRequest)
	if env := rec.Envelope(t); env.Message != "El servicio no tiene una imagen para eliminar." {
		t.Errorf("message: got %q", env.Message)
	}

	rec = f.do(testutil.MultipartRequest(t, "POST", "/services/"+id+"/update-image", nil,
		testutil.File{Field: "img", Filename: "logo.png", Content: testutil.PNG}))
	rec.AssertStatus(t, http.StatusOK)

	rec = f.do(testutil.JSONRequest(t, "DELETE", "/services/"+id+"/image", nil))
	rec.AssertStatus(t, http.StatusOK)
	if len(f.backend.Paths()) != 0 {
		t.Errorf("objects: got %v", f.backend.Paths())
	}
}

func TestDelete(t *testing.T) {
	f := newFixture()
	id := f.create(t, testutil.File{Field: "img", Filename: "logo.png", Content: testutil.PNG})

	rec := f.do(testutil.JSONRequest(t, "DELETE", "/services/"+id, nil))
	rec.AssertStatus(t, http.StatusOK)
	if env := rec.Envelope(t); env.Message != "Service deleted successfully." {
		t.Errorf("message: got %q", env.Message)
	}
	if len(f.backend.Paths()) != 0 {
		t.Errorf("objects: got %v", f.backend.Paths())
	}

	rec = f.do(testutil.JSONRequest(t, "GET", "/services/"+id, nil))
	rec.AssertStatus(t, http.StatusNotFound)
}

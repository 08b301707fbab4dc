package chambermembers_test

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/chamberhub/internal/app/features/chambermembers"
	chambermemberstore "github.com/dalemusser/chamberhub/internal/app/store/chambermembers"
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
	rows   map[int64]models.ChamberMember
}

func (m *memRepo) List(context.Context) ([]models.ChamberMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ChamberMember{}
	for id := int64(1); id <= m.nextID; id++ {
		if r, ok := m.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (models.ChamberMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return models.ChamberMember{}, records.ErrNotFound
	}
	return r, nil
}

func (m *memRepo) Create(_ context.Context, cm models.ChamberMember) (models.ChamberMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	cm.ID = m.nextID
	cm.Stamp(records.Now())
	m.rows[cm.ID] = cm
	return cm, nil
}

func (m *memRepo) patch(id int64, fn func(*models.ChamberMember)) (models.ChamberMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return models.ChamberMember{}, records.ErrNotFound
	}
	fn(&r)
	m.rows[id] = r
	return r, nil
}

func (m *memRepo) Update(_ context.Context, id int64, d chambermemberstore.Data) (models.ChamberMember, error) {
	return m.patch(id, func(r *models.ChamberMember) {
		if d.Name != nil {
			r.Name = *d.Name
		}
		if d.RoleES != nil {
			r.RoleES = *d.RoleES
		}
		if d.RoleEN != nil {
			r.RoleEN = *d.RoleEN
		}
		if d.ImgPath != nil {
			r.ImgPath = d.ImgPath
		}
	})
}

func (m *memRepo) ImageTaken(_ context.Context, path string, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for rid, r := range m.rows {
		if rid != id && r.ImgPath != nil && *r.ImgPath == path {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) SetImage(_ context.Context, id int64, path string) (models.ChamberMember, error) {
	return m.patch(id, func(r *models.ChamberMember) { r.ImgPath = &path })
}

func (m *memRepo) ClearImage(_ context.Context, id int64) (models.ChamberMember, error) {
	return m.patch(id, func(r *models.ChamberMember) { r.ImgPath = nil })
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

func newFixture() *fixture {
	repo := &memRepo{rows: map[int64]models.ChamberMember{}}
	backend := testutil.NewMemBackend()
	am := assets.New(backend, assets.Config{PublicURL: "http://localhost:8080/storage/"}, zap.NewNop())
	h := chambermembers.NewHandler(repo, am, nil, zap.NewNop())
	r := chi.NewRouter()
	chambermembers.Routes(r, h, func(next http.Handler) http.Handler { return next })
	return &fixture{repo: repo, backend: backend, router: r}
}

func (f *fixture) do(req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) create(t *testing.T, name string, files ...testutil.File) string {
	t.Helper()
	rec := f.do(testutil.MultipartRequest(t, "POST", "/chamber-members", map[string]string{
		"name": name, "role_es": "Presidenta", "role_en": "President",
	}, files...))
	rec.AssertStatus(t, http.StatusCreated)
	var data struct {
		ID int64 `json:"id"`
	}
	rec.DecodeData(t, &data)
	return strconv.FormatInt(data.ID, 10)
}

func TestList_Initials(t *testing.T) {
	f := newFixture()
	f.create(t, "Ana")
	f.create(t, "Ana Torres")
	f.create(t, "Ana María Torres")

	rec := f.do(testutil.JSONRequest(t, "GET", "/chamber-members?lang=en", nil))
	rec.AssertStatus(t, http.StatusOK)
	var views []struct {
		Initials string `json:"initials"`
		Role     string `json:"role"`
	}
	rec.DecodeData(t, &views)

	want := []string{"A", "AT", "AM"}
	if len(views) != len(want) {
		t.Fatalf("count: got %d, want %d", len(views), len(want))
	}
	for i, v := range views {
		if v.Initials != want[i] {
			t.Errorf("initials[%d]: got %q, want %q", i, v.Initials, want[i])
		}
		if v.Role != "President" {
			t.Errorf("role[%d]: got %q", i, v.Role)
		}
	}
}

func TestShow_NoInitials(t *testing.T) {
	f := newFixture()
	id := f.create(t, "Ana Torres")

	rec := f.do(testutil.JSONRequest(t, "GET", "/chamber-members/"+id, nil))
	rec.AssertStatus(t, http.StatusOK)
	if strings.Contains(rec.Body.String(), "initials") {
		t.Errorf("show should not carry initials: %s", rec.Body.String())
	}
	var v map[string]any
	rec.DecodeData(t, &v)
	if v["role"] != "Presidenta" {
		t.Errorf("role: got %v", v["role"])
	}
}

func TestUpdateData_LooksUpFirst(t *testing.T) {
	f := newFixture()
	rec := f.do(testutil.FormRequest("PUT", "/chamber-members/7/update-data", nil))
	rec.AssertStatus(t, http.StatusNotFound)

	id := f.create(t, "Ana Torres")
	long := strings.Repeat("x", 129)
	rec = f.do(testutil.JSONRequest(t, "PUT", "/chamber-members/"+id+"/update-data", map[string]string{"role_en": long}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = f.do(testutil.JSONRequest(t, "PUT", "/chamber-members/"+id+"/update-data", map[string]string{"role_en": "Chair"}))
	rec.AssertStatus(t, http.StatusOK)
	var v map[string]any
	rec.DecodeData(t, &v)
	if v["role_en"] != "Chair" || v["role_es"] != "Presidenta" {
		t.Errorf("updated: got %v", v)
	}
}

func TestLegacyUpdate_ImgPath(t *testing.T) {
	f := newFixture()
	id := f.create(t, "Ana Torres", testutil.File{Field: "img", Filename: "ana.png", Content: testutil.PNG})
	old := f.backend.Paths()[0]
	f.backend.Seed("chamber_members/replacement.png", testutil.PNG)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"parent reference", "chamber_members/../events/x.png", http.StatusBadRequest},
		{"other namespace", "events/x.png", http.StatusBadRequest},
		{"absolute", "/chamber_members/x.png", http.StatusBadRequest},
		{"stored path", "chamber_members/replacement.png", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(testutil.JSONRequest(t, "PUT", "/chamber-members/"+id, map[string]string{"img_path": tt.path}))
			rec.AssertStatus(t, tt.code)
		})
	}

	if _, err := f.backend.Get(old); err == nil {
		t.Errorf("previous object %s should be deleted", old)
	}
	got, _ := f.repo.Get(context.Background(), 1)
	if got.ImgPath == nil || *got.ImgPath != "chamber_members/replacement.png" {
		t.Errorf("img_path: got %v", got.ImgPath)
	}
}

func TestLegacyUpdate_ImgPathOwnership(t *testing.T) {
	f := newFixture()
	first := f.create(t, "Ana Torres", testutil.File{Field: "img", Filename: "ana.png", Content: testutil.PNG})
	second := f.create(t, "Luis Gómez", testutil.File{Field: "img", Filename: "luis.png", Content: testutil.PNG})
	a, _ := f.repo.Get(context.Background(), 1)
	b, _ := f.repo.Get(context.Background(), 2)
	f.backend.Seed("chamber_members/unowned.png", testutil.PNG)

	tests := []struct {
		name    string
		id      string
		path    string
		code    int
		message string
	}{
		{"another member's image", second, *a.ImgPath, http.StatusBadRequest, "The img path has already been taken."},
		{"missing object", second, "chamber_members/ghost.png", http.StatusBadRequest, "The img path field must be a stored chamber member image."},
		{"own image", first, *a.ImgPath, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(testutil.JSONRequest(t, "PUT", "/chamber-members/"+tt.id, map[string]string{"img_path": tt.path}))
			rec.AssertStatus(t, tt.code)
			if tt.message != "" {
				rec.AssertContains(t, tt.message)
			}
		})
	}

	if _, err := f.backend.Get(*a.ImgPath); err != nil {
		t.Errorf("first member's object %s should survive: %v", *a.ImgPath, err)
	}
	if _, err := f.backend.Get(*b.ImgPath); err != nil {
		t.Errorf("second member's object %s should survive: %v", *b.ImgPath, err)
	}
	got, _ := f.repo.Get(context.Background(), 2)
	if got.ImgPath == nil || *got.ImgPath != *b.ImgPath {
		t.Errorf("second member img_path: got %v", got.ImgPath)
	}

	rec := f.do(testutil.JSONRequest(t, "PUT", "/chamber-members/"+second, map[string]string{"img_path": "chamber_members/unowned.png"}))
	rec.AssertStatus(t, http.StatusOK)
	if _, err := f.backend.Get(*b.ImgPath); err == nil {
		t.Errorf("replaced object %s should be deleted", *b.ImgPath)
	}
}

func TestDeleteImage_Messages(t *testing.T) {
	f := newFixture()

	rec := f.do(testutil.JSONRequest(t, "DELETE", "/chamber-members/9/image", nil))
	rec.AssertStatus(t, http.StatusNotFound)
	if env := rec.Envelope(t); env.Message != "No se encontró el miembro de la cámara con el ID proporcionado." {
		t.Errorf("message: got %q", env.Message)
	}

	id := f.create(t, "Ana")
	rec = f.do(testutil.JSONRequest(t, "DELETE", "/chamber-members/"+id+"/image", nil))
	rec.AssertStatus(t, http.StatusBadRequest)
	if env := rec.Envelope(t); env.Message != "El miembro no tiene una imagen para eliminar." {
		t.Errorf("message: got %q", env.Message)
	}
}

func TestDelete_CascadesImage(t *testing.T) {
	f := newFixture()
	id := f.create(t, "Ana", testutil.File{Field: "img", Filename: "ana.png", Content: testutil.PNG})

	rec := f.do(testutil.JSONRequest(t, "DELETE", "/chamber-members/"+id, nil))
	rec.AssertStatus(t, http.StatusOK)
	if len(f.backend.Paths()) != 0 {
		t.Errorf("objects: got %v", f.backend.Paths())
	}
}

func TestDash_EmptyResult(t *testing.T) {
	f := newFixture()
	rec := f.do(testutil.JSONRequest(t, "GET", "/chamber-members-dash", nil))
	rec.AssertStatus(t, http.StatusNotFound)
	env := rec.Envelope(t)
	if env.Message != "No chamber members found." || string(env.Data) != "[]" {
		t.Errorf("empty: got %q %s", env.Message, env.Data)
	}
}

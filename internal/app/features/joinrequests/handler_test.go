package joinrequests_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/dalemusser/chamberhub/internal/app/features/joinrequests"
	"github.com/dalemusser/chamberhub/internal/app/store/records"
	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/dalemusser/chamberhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.JoinRequest
}

func (m *memRepo) List(_ context.Context, status *int) ([]models.JoinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.JoinRequest{}
	for id := int64(1); id <= m.nextID; id++ {
		jr, ok := m.rows[id]
		if !ok || (status != nil && jr.Status != *status) {
			continue
		}
		out = append(out, jr)
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (models.JoinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	jr, ok := m.rows[id]
	if !ok {
		return models.JoinRequest{}, records.ErrNotFound
	}
	return jr, nil
}

func (m *memRepo) Create(_ context.Context, jr models.JoinRequest) (models.JoinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	jr.ID = m.nextID
	jr.Stamp(records.Now())
	m.rows[jr.ID] = jr
	return jr, nil
}

func (m *memRepo) SetStatus(_ context.Context, id int64, status int) (models.JoinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	jr, ok := m.rows[id]
	if !ok {
		return models.JoinRequest{}, records.ErrNotFound
	}
	jr.Status = status
	m.rows[id] = jr
	return jr, nil
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

func (m *memRepo) CountByStatus(context.Context) (models.StatusCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var c models.StatusCounts
	for _, jr := range m.rows {
		c.Received++
		switch jr.Status {
		case models.StatusUnattended:
			c.Unattended++
		case models.StatusContacted:
			c.Contacted++
		case models.StatusFailed:
			c.Failed++
		case models.StatusJoined:
			c.Joined++
		}
	}
	return c, nil
}

func newRouter() (chi.Router, *memRepo) {
	repo := &memRepo{rows: map[int64]models.JoinRequest{}}
	h := joinrequests.NewHandler(repo, nil, zap.NewNop())
	r := chi.NewRouter()
	joinrequests.Routes(r, h, func(next http.Handler) http.Handler { return next })
	return r, repo
}

func serve(r chi.Router, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validBody() map[string]any {
	return map[string]any{
		"ins_comercial_name": "Café Sol", "ins_address": "Calle 1", "ins_hood": "Centro",
		"ins_cp": "28000", "ins_email": "cafe@example.com",
		"com_capacity": 40, "com_male": 3, "com_female": 4, "com_disabled": 0,
		"com_open_date": "2020-03-01", "com_license_status": "A", "com_license_type": "B",
		"tax_name": "Café Sol SA", "tax_rfc": "CSO200301AB1", "tax_street": "Calle 1",
		"tax_hood": "Centro", "tax_cp": "28000", "tax_locality": "Colima", "tax_payment": "01",
		"con_name": "Ana", "con_role": "Owner", "con_phone": "3120000000", "con_email": "ana@example.com",
		"com_hours": "9-18", "com_line": "Coffee", "com_desc": "A café",
		"sm_facebook": "fb.com/cafesol", "sm_instagram": "ig.com/cafesol", "sm_twitter": "x.com/cafesol",
		"sm_email": "social@example.com", "sm_phone": "3120000001", "sm_web": "cafesol.mx",
		"sv_have_wifi": true, "sv_have_ac": false, "sv_have_live_music": "1", "sv_have_deck": "0",
		"sv_have_lounge": true, "sv_lounge_capacity": 12,
		"status": 1,
	}
}

func TestCreate(t *testing.T) {
	r, repo := newRouter()

	rec := serve(r, testutil.JSONRequest(t, "POST", "/join-requests", validBody()))
	rec.AssertStatus(t, http.StatusCreated)
	jr := repo.rows[1]
	if jr.ComCapacity != 40 || !jr.SVHaveLiveMusic || jr.SVHaveDeck || jr.ComOpenDate.Year() != 2020 {
		t.Errorf("record: got %+v", jr)
	}

	body := validBody()
	delete(body, "tax_rfc")
	body["ins_email"] = "nope"
	body["com_male"] = "many"
	body["sv_have_ac"] = "maybe"
	rec = serve(r, testutil.JSONRequest(t, "POST", "/join-requests", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	env := rec.Envelope(t)
	if len(env.Errors) != 4 {
		t.Errorf("errors: got %v, want 4", env.Errors)
	}
}

func TestCreate_AnyIntegerStatus(t *testing.T) {
	r, repo := newRouter()
	body := validBody()
	body["status"] = 9
	rec := serve(r, testutil.JSONRequest(t, "POST", "/join-requests", body))
	rec.AssertStatus(t, http.StatusCreated)
	if repo.rows[1].Status != 9 {
		t.Errorf("status: got %d, want 9", repo.rows[1].Status)
	}
}

func TestList_Filter(t *testing.T) {
	r, repo := newRouter()
	for _, s := range []int{1, 2, 2, 4} {
		repo.Create(context.Background(), models.JoinRequest{Status: s})
	}

	tests := []struct {
		target string
		code   int
		count  int
		filter string
	}{
		{"/join-requests", http.StatusOK, 4, "null"},
		{"/join-requests?status=2", http.StatusOK, 2, `"2"`},
		{"/join-requests?status=3", http.StatusNotFound, 0, `"3"`},
		{"/join-requests?status=7", http.StatusOK, 4, `"7"`},
		{"/join-requests?status=abc", http.StatusOK, 4, `"abc"`},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(r, testutil.JSONRequest(t, "GET", tt.target, nil))
			rec.AssertStatus(t, tt.code)
			env := rec.Envelope(t)
			if string(env.Filter) != tt.filter {
				t.Errorf("filter: got %s, want %s", env.Filter, tt.filter)
			}
			var jrs []models.JoinRequest
			rec.DecodeData(t, &jrs)
			if len(jrs) != tt.count {
				t.Errorf("count: got %d, want %d", len(jrs), tt.count)
			}
		})
	}
}

func TestUpdate_StatusOnly(t *testing.T) {
	r, repo := newRouter()
	repo.Create(context.Background(), models.JoinRequest{InsComercialName: "Café Sol", Status: 1})

	rec := serve(r, testutil.JSONRequest(t, "PUT", "/join-requests/1", map[string]any{"status": 4, "ins_comercial_name": "Other"}))
	rec.AssertStatus(t, http.StatusOK)
	if jr := repo.rows[1]; jr.Status != 4 || jr.InsComercialName != "Café Sol" {
		t.Errorf("record: got %+v", jr)
	}

	rec = serve(r, testutil.JSONRequest(t, "PUT", "/join-requests/1", map[string]any{"status": "x"}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "The status field must be an integer.")

	rec = serve(r, testutil.JSONRequest(t, "PUT", "/join-requests/9", map[string]any{"status": 2}))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestCharts(t *testing.T) {
	r, repo := newRouter()
	for _, s := range []int{1, 1, 2, 3, 4, 4, 4} {
		repo.Create(context.Background(), models.JoinRequest{Status: s})
	}

	rec := serve(r, testutil.JSONRequest(t, "GET", "/join-requests-charts", nil))
	rec.AssertStatus(t, http.StatusOK)
	for _, want := range []string{`"received":7`, `"unattended":2`, `"contacted":1`, `"failed":1`, `"joined":3`} {
		rec.AssertContains(t, want)
	}
}

func TestDelete(t *testing.T) {
	r, repo := newRouter()
	repo.Create(context.Background(), models.JoinRequest{Status: 1})

	rec := serve(r, testutil.JSONRequest(t, "DELETE", "/join-requests/1", nil))
	rec.AssertStatus(t, http.StatusOK)
	rec = serve(r, testutil.JSONRequest(t, "DELETE", "/join-requests/1", nil))
	rec.AssertStatus(t, http.StatusNotFound)
}

package auditlog_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/chamberhub/internal/app/store/audit"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/changefeed"
	"github.com/dalemusser/chamberhub/internal/testutil"
	"go.uber.org/zap"
)

type memSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (m *memSink) Log(_ context.Context, e audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

type memFeed struct {
	changes []changefeed.Change
}

func (m *memFeed) Publish(_ context.Context, c changefeed.Change) error {
	m.changes = append(m.changes, c)
	return nil
}

func (m *memFeed) Close() {}

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	ctx := context.Background()
	req := httptest.NewRequest("GET", "/", nil)

	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.LoginSuccess(ctx, req, 1, "a@example.com")
	logger.Logout(ctx, req, 1)
	logger.Created(ctx, req, 1, "events", 2)
}

func TestLogger_Destinations(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		want    int
	}{
		{name: "off", setting: auditlog.DestOff, want: 0},
		{name: "log only", setting: auditlog.DestLog, want: 0},
		{name: "db", setting: auditlog.DestDB, want: 1},
		{name: "all", setting: auditlog.DestAll, want: 1},
		{name: "empty means all", setting: "", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &memSink{}
			logger := auditlog.New(sink, zap.NewNop(), auditlog.Config{Auth: tt.setting, Admin: tt.setting}, nil)
			req := httptest.NewRequest("POST", "/auth/login", nil)

			logger.LoginSuccess(context.Background(), req, 3, "a@example.com")

			if len(sink.events) != tt.want {
				t.Errorf("stored events: got %d, want %d", len(sink.events), tt.want)
			}
		})
	}
}

func TestLogger_LoginFailureFields(t *testing.T) {
	sink := &memSink{}
	logger := auditlog.New(sink, zap.NewNop(), auditlog.Config{}, nil)
	req := httptest.NewRequest("POST", "/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "TestBrowser/1.0")

	logger.LoginFailedWrongPassword(context.Background(), req, 5, "a@example.com")

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	e := sink.events[0]
	if e.EventType != audit.EventLoginFailedWrongPassword || e.Success {
		t.Errorf("event: got %s success=%v", e.EventType, e.Success)
	}
	if e.IP != "203.0.113.9" {
		t.Errorf("IP: got %q, want %q", e.IP, "203.0.113.9")
	}
	if e.UserAgent != "TestBrowser/1.0" {
		t.Errorf("UserAgent: got %q", e.UserAgent)
	}
	if e.UserID == nil || *e.UserID != 5 {
		t.Errorf("UserID: got %v, want 5", e.UserID)
	}
}

func TestLogger_RecordChangedPublishes(t *testing.T) {
	sink := &memSink{}
	feed := &memFeed{}
	logger := auditlog.New(sink, zap.NewNop(), auditlog.Config{Admin: auditlog.DestOff}, feed)
	req := httptest.NewRequest("DELETE", "/events/9", nil)

	logger.Deleted(context.Background(), req, 1, "events", 9)
	logger.RecordChanged(context.Background(), req, 1, audit.EventAssetRemoved, "events", 9)

	if len(sink.events) != 0 {
		t.Errorf("admin off: got %d stored events", len(sink.events))
	}
	if len(feed.changes) != 2 {
		t.Fatalf("changes: got %d, want 2", len(feed.changes))
	}
	if c := feed.changes[0]; c.Kind != "events" || c.Action != changefeed.ActionDeleted || c.Record != 9 {
		t.Errorf("change 0: got %+v", c)
	}
	if c := feed.changes[1]; c.Action != changefeed.ActionUpdated {
		t.Errorf("change 1 action: got %q, want %q", c.Action, changefeed.ActionUpdated)
	}
}

func TestLogger_StoresInMongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Auth: auditlog.DestDB}, nil)
	req := httptest.NewRequest("POST", "/auth/signup", nil)
	logger.Signup(ctx, req, 12, "new@example.com")

	uid := int64(12)
	events, err := store.Query(ctx, audit.QueryFilter{UserID: &uid})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 || events[0].EventType != audit.EventSignup {
		t.Errorf("events: got %+v", events)
	}
}

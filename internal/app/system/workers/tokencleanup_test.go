package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakePurger struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
}

func (f *fakePurger) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	return 2, f.err
}

func (f *fakePurger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestTokenCleanup_SweepPassesNow(t *testing.T) {
	p := &fakePurger{}
	w := NewTokenCleanup(p, zap.NewNop(), time.Hour)
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	w.Sweep()

	if p.count() != 1 || !p.calls[0].Equal(fixed) {
		t.Errorf("calls: got %v, want [%v]", p.calls, fixed)
	}
}

func TestTokenCleanup_SweepErrorIsLogged(t *testing.T) {
	p := &fakePurger{err: errors.New("mongo down")}
	w := NewTokenCleanup(p, zap.NewNop(), time.Hour)

	w.Sweep()

	if p.count() != 1 {
		t.Errorf("calls: got %d, want 1", p.count())
	}
}

func TestTokenCleanup_StartStop(t *testing.T) {
	p := &fakePurger{}
	w := NewTokenCleanup(p, zap.NewNop(), 10*time.Millisecond)

	w.Start()
	deadline := time.Now().Add(2 * time.Second)
	for p.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Stop()

	if p.count() == 0 {
		t.Error("expected at least one sweep")
	}
}

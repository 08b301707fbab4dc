package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowAndWindowExpiry(t *testing.T) {
	l := New(2, time.Minute)
	defer l.Stop()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two hits should pass")
	}
	if l.Allow("a") {
		t.Error("third hit should be refused")
	}
	if got := l.Remaining("a"); got != 0 {
		t.Errorf("Remaining: got %d, want 0", got)
	}
	if !l.Allow("b") {
		t.Error("other keys are independent")
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Error("hit after window expiry should pass")
	}
	if got := l.Remaining("a"); got != 1 {
		t.Errorf("Remaining: got %d, want 1", got)
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)
	defer l.Stop()

	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("expected limit reached")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("expected allow after Reset")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{name: "forwarded", xff: "203.0.113.7, 10.0.0.1", remote: "10.0.0.1:5000", want: "203.0.113.7"},
		{name: "real ip", xri: "198.51.100.2", remote: "10.0.0.1:5000", want: "198.51.100.2"},
		{name: "remote addr", remote: "192.0.2.9:1234", want: "192.0.2.9"},
		{name: "remote without port", remote: "192.0.2.9", want: "192.0.2.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/auth/login", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_PerEmail(t *testing.T) {
	ll := NewLoginLimiter(LoginConfig{PerIP: 100, PerEmail: 2})
	defer ll.Stop()
	r := httptest.NewRequest("POST", "/auth/login", nil)

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "Ana@Example.com"); !ok {
			t.Fatalf("attempt %d should pass", i+1)
		}
	}
	ok, msg := ll.Check(r, " ana@example.com ")
	if ok {
		t.Fatal("third attempt for the same email should be refused")
	}
	if msg == "" {
		t.Error("expected a refusal message")
	}

	ll.Succeeded("ANA@example.com")
	if ok, _ := ll.Check(r, "ana@example.com"); !ok {
		t.Error("expected allow after successful login")
	}
}

func TestLoginLimiter_PerIP(t *testing.T) {
	ll := NewLoginLimiter(LoginConfig{PerIP: 1, PerEmail: 100})
	defer ll.Stop()
	r := httptest.NewRequest("POST", "/auth/login", nil)

	if ok, _ := ll.Check(r, "a@example.com"); !ok {
		t.Fatal("first attempt should pass")
	}
	if ok, _ := ll.Check(r, "b@example.com"); ok {
		t.Error("second attempt from the same IP should be refused")
	}
}

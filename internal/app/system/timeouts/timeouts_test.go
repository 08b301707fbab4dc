package timeouts

import (
	"context"
	"testing"
	"time"
)

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	defer Reset()

	Configure(Config{Short: 7 * time.Second})

	if got := Short(); got != 7*time.Second {
		t.Errorf("Short: got %v, want %v", got, 7*time.Second)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium: got %v, want %v", got, DefaultMedium)
	}
	if got := Upload(); got != DefaultUpload {
		t.Errorf("Upload: got %v, want %v", got, DefaultUpload)
	}
}

func TestReset(t *testing.T) {
	Configure(Config{Ping: time.Second, Long: time.Hour})
	Reset()

	if Ping() != DefaultPing {
		t.Errorf("Ping: got %v, want %v", Ping(), DefaultPing)
	}
	if Long() != DefaultLong {
		t.Errorf("Long: got %v, want %v", Long(), DefaultLong)
	}
}

func TestWithShort_SetsDeadline(t *testing.T) {
	defer Reset()
	Configure(Config{Short: time.Minute})

	ctx, cancel := WithShort(context.Background())
	defer cancel()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if remaining := time.Until(dl); remaining <= 0 || remaining > time.Minute {
		t.Errorf("remaining: got %v, want (0, 1m]", remaining)
	}
}

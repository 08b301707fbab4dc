package models

import (
	"testing"
	"time"
)

func TestChamberMember_Initials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana", "A"},
		{"Ana Torres", "AT"},
		{"Ana María Torres", "AM"},
		{"  ana   torres ", "AT"},
		{"Óscar Ñúñez", "ÓÑ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := (ChamberMember{Name: tt.name}).Initials(); got != tt.want {
			t.Errorf("Initials(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHasImage(t *testing.T) {
	empty := ""
	path := "events/a.png"
	if (Event{}).HasImage() {
		t.Error("nil path should have no image")
	}
	if (Event{ImgPath: &empty}).HasImage() {
		t.Error("empty path should have no image")
	}
	if !(Event{ImgPath: &path}).HasImage() {
		t.Error("expected an image")
	}
}

func TestJoinRequest_IsKnownStatus(t *testing.T) {
	for s, want := range map[int]bool{0: false, 1: true, 2: true, 3: true, 4: true, 5: false, -1: false} {
		if got := IsKnownStatus(s); got != want {
			t.Errorf("IsKnownStatus(%d): got %v, want %v", s, got, want)
		}
	}
}

func TestAccessToken_Expired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Minute), now.Add(time.Minute)

	if (AccessToken{}).Expired(now) {
		t.Error("token without expiry should never expire")
	}
	if !(AccessToken{ExpiresAt: &past}).Expired(now) {
		t.Error("expected past expiry to be expired")
	}
	if !(AccessToken{ExpiresAt: &now}).Expired(now) {
		t.Error("expiry equal to now counts as expired")
	}
	if (AccessToken{ExpiresAt: &future}).Expired(now) {
		t.Error("future expiry should not be expired")
	}
}

func TestLabel_HasVideo(t *testing.T) {
	tests := []struct {
		label Label
		want  bool
	}{
		{Label{ID: VideoLabelID, Text: "videos/1a2b3c4d-promo.mp4"}, true},
		{Label{ID: VideoLabelID, Text: "events/0001-poster.png"}, false},
		{Label{ID: VideoLabelID, Text: "videos/../events/0001-poster.png"}, false},
		{Label{ID: VideoLabelID, Text: "Bienvenidos"}, false},
		{Label{ID: VideoLabelID, Text: "videos/"}, false},
		{Label{ID: VideoLabelID, Text: ""}, false},
		{Label{ID: 1, Text: "videos/1a2b3c4d-promo.mp4"}, false},
	}
	for _, tt := range tests {
		if got := tt.label.HasVideo(); got != tt.want {
			t.Errorf("HasVideo(id=%d, %q): got %v, want %v", tt.label.ID, tt.label.Text, got, tt.want)
		}
	}
}

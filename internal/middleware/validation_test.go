package middleware

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "sukomal07", "sukomal07", false},
		{"valid with dash", "cool-channel_1", "cool-channel_1", false},
		{"uppercase normalized", "SuKoMal", "sukomal", false},
		{"trims whitespace", "  alice  ", "alice", false},
		{"empty", "", "", true},
		{"too short", "ab", "", true},
		{"too long", strings.Repeat("a", 31), "", true},
		{"exactly 30", strings.Repeat("a", 30), strings.Repeat("a", 30), false},
		{"spaces inside", "some user", "", true},
		{"sql injection", "a'; DROP--", "", true},
		{"unicode", "usér", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice@example.com", "alice@example.com", false},
		{"uppercase normalized", "Alice@Example.COM", "alice@example.com", false},
		{"trims whitespace", " bob@mail.io ", "bob@mail.io", false},
		{"empty", "", "", true},
		{"no at sign", "alice.example.com", "", true},
		{"no domain dot", "alice@example", "", true},
		{"embedded space", "ali ce@example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateEmail(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("short"); msg == "" {
		t.Error("expected error for short password")
	}
	if msg := ValidatePassword(strings.Repeat("x", 73)); msg == "" {
		t.Error("expected error for over-length password")
	}
	if msg := ValidatePassword("longenough"); msg != "" {
		t.Errorf("unexpected error: %s", msg)
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "6a1f0e6e-1b2c-4d5e-8f90-123456789abc", "6a1f0e6e-1b2c-4d5e-8f90-123456789abc", false},
		{"uppercase normalized", "6A1F0E6E-1B2C-4D5E-8F90-123456789ABC", "6a1f0e6e-1b2c-4d5e-8f90-123456789abc", false},
		{"empty", "", "", true},
		{"missing dashes", "6a1f0e6e1b2c4d5e8f90123456789abc", "", true},
		{"too short", "6a1f0e6e-1b2c", "", true},
		{"sql injection", "'; DROP TABLE--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUUID(tt.input, "videoId")
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	if _, msg := ValidateContent("   ", "content"); msg == "" {
		t.Error("expected error for blank content")
	}
	if _, msg := ValidateContent(strings.Repeat("x", 2001), "content"); msg == "" {
		t.Error("expected error for over-length content")
	}
	got, msg := ValidateContent("  hello world  ", "content")
	if msg != "" {
		t.Errorf("unexpected error: %s", msg)
	}
	if got != "hello world" {
		t.Errorf("trim failed: got %q", got)
	}
}

func TestValidateTitle(t *testing.T) {
	if _, msg := ValidateTitle("", "title"); msg == "" {
		t.Error("expected error for empty title")
	}
	if _, msg := ValidateTitle(strings.Repeat("x", 121), "title"); msg == "" {
		t.Error("expected error for over-length title")
	}
	if got, msg := ValidateTitle(" My Video ", "title"); msg != "" || got != "My Video" {
		t.Errorf("got %q, err %q", got, msg)
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/v1/videos/6a1f0e6e-1b2c-4d5e-8f90-123456789abc", "/api/v1/videos/:videoId"},
		{"/api/v1/channels/sukomal07", "/api/v1/channels/:username"},
		{"/api/v1/playlists/abc/videos/def", "/api/v1/playlists/:playlistId/videos/:videoId"},
		{"/api/v1/healthz", "/api/v1/healthz"},
	}
	for _, tt := range tests {
		if got := sanitizePath(tt.in); got != tt.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

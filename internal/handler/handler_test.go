package handler

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/middleware"
)

func TestRespondError_StatusMapping(t *testing.T) {
	middleware.InitLogger("error", "test")

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("video abc: %w", apperr.ErrNotFound), fiber.StatusNotFound},
		{"forbidden", fmt.Errorf("not the owner: %w", apperr.ErrForbidden), fiber.StatusForbidden},
		{"invalid input", fmt.Errorf("bad kind: %w", apperr.ErrInvalidInput), fiber.StatusBadRequest},
		{"conflict", fmt.Errorf("duplicate username: %w", apperr.ErrConflict), fiber.StatusConflict},
		{"upstream", fmt.Errorf("put object: %w", apperr.ErrUpstream), fiber.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/t", func(c fiber.Ctx) error {
				return respondError(c, tt.err, "fallback")
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestSanitizeEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/v1/videos/6a1f0e6e-1b2c-4d5e-8f90-123456789abc", "/api/v1/videos/:videoId"},
		{"/api/v1/channels/sukomal07", "/api/v1/channels/:username"},
		{"/api/v1/videos", "/api/v1/videos"},
		{"/health/live", "/health/live"},
	}
	for _, tt := range tests {
		if got := sanitizeEndpoint(tt.in); got != tt.want {
			t.Errorf("sanitizeEndpoint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

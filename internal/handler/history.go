package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/service"
)

type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List handles GET /api/v1/users/history — most recently watched first.
func (h *HistoryHandler) List(c fiber.Ctx) error {
	videos, err := h.svc.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load watch history")
	}
	return c.JSON(videos)
}

// Clear handles DELETE /api/v1/users/history
func (h *HistoryHandler) Clear(c fiber.Ctx) error {
	if err := h.svc.Clear(c.Context(), middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to clear watch history")
	}
	return c.JSON(fiber.Map{"success": true})
}

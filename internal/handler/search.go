package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/v1/search?q=...
func (h *SearchHandler) Search(c fiber.Ctx) error {
	resp, err := h.svc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err, "Search failed")
	}
	return c.JSON(resp)
}

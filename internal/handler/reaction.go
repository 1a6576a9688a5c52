package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/service"
)

type ReactionHandler struct {
	svc *service.ReactionService
}

func NewReactionHandler(svc *service.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// Toggle handles POST /api/v1/reactions/:targetKind/:targetId
// Body: {"kind": "like"} or {"kind": "dislike"}.
func (h *ReactionHandler) Toggle(c fiber.Ctx) error {
	targetKind := model.TargetKind(c.Params("targetKind"))
	if !targetKind.Valid() {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "targetKind must be video, comment, or tweet")
	}
	targetID, errMsg := middleware.ValidateUUID(c.Params("targetId"), "targetId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req struct {
		Kind model.ReactionKind `json:"kind"`
	}
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if !req.Kind.Valid() {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "kind must be like or dislike")
	}

	resp, err := h.svc.Toggle(c.Context(), middleware.UserID(c), targetKind, targetID, req.Kind)
	if err != nil {
		return respondError(c, err, "Failed to toggle reaction")
	}
	if Metrics.ReactionsTotal != nil {
		Metrics.ReactionsTotal.WithLabelValues(string(req.Kind), string(targetKind)).Inc()
	}
	return c.JSON(resp)
}

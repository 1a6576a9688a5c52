package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/service"
)

type SubscriptionHandler struct {
	svc *service.SubscriptionService
}

func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /api/v1/subscriptions/:channelId/toggle
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateUUID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	subscribed, err := h.svc.Toggle(c.Context(), middleware.UserID(c), channelID)
	if err != nil {
		return respondError(c, err, "Failed to toggle subscription")
	}
	if Metrics.SubscriptionsTotal != nil {
		state := "unsubscribed"
		if subscribed {
			state = "subscribed"
		}
		Metrics.SubscriptionsTotal.WithLabelValues(state).Inc()
	}
	return c.JSON(fiber.Map{"subscribed": subscribed})
}

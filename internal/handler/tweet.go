package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/service"
)

type TweetHandler struct {
	svc *service.TweetService
}

func NewTweetHandler(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /api/v1/tweets
func (h *TweetHandler) Create(c fiber.Ctx) error {
	content, errMsg := h.bindContent(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	tweet, err := h.svc.Create(c.Context(), middleware.UserID(c), content)
	if err != nil {
		return respondError(c, err, "Failed to create tweet")
	}
	return c.Status(fiber.StatusCreated).JSON(tweet)
}

// Mine handles GET /api/v1/tweets — the caller's own tweets.
func (h *TweetHandler) Mine(c fiber.Ctx) error {
	tweets, err := h.svc.ListByOwner(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load tweets")
	}
	return c.JSON(tweets)
}

// Update handles PATCH /api/v1/tweets/:tweetId
func (h *TweetHandler) Update(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateUUID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	content, errMsg := h.bindContent(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	tweet, err := h.svc.Update(c.Context(), tweetID, middleware.UserID(c), content)
	if err != nil {
		return respondError(c, err, "Failed to update tweet")
	}
	return c.JSON(tweet)
}

// Delete handles DELETE /api/v1/tweets/:tweetId
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateUUID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), tweetID, middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to delete tweet")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *TweetHandler) bindContent(c fiber.Ctx) (string, string) {
	var req model.TweetRequest
	if err := c.Bind().JSON(&req); err != nil {
		return "", "Invalid request body"
	}
	return middleware.ValidateContent(req.Content, "content")
}

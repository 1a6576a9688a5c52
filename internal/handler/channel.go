package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/service"
)

type ChannelHandler struct {
	aggregate *service.AggregateService
}

func NewChannelHandler(aggregate *service.AggregateService) *ChannelHandler {
	return &ChannelHandler{aggregate: aggregate}
}

// Profile handles GET /api/v1/channels/:username
func (h *ChannelHandler) Profile(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	profile, err := h.aggregate.ChannelProfile(c.Context(), username, middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load channel")
	}
	return c.JSON(profile)
}

// Stats handles GET /api/v1/channels/stats — the caller's own dashboard.
func (h *ChannelHandler) Stats(c fiber.Ctx) error {
	stats, err := h.aggregate.ChannelStats(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load channel stats")
	}
	return c.JSON(stats)
}

// Videos handles GET /api/v1/channels/:username/videos
func (h *ChannelHandler) Videos(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	videos, err := h.aggregate.ChannelVideos(c.Context(), username)
	if err != nil {
		return respondError(c, err, "Failed to load channel videos")
	}
	return c.JSON(videos)
}

// Playlists handles GET /api/v1/channels/:username/playlists
func (h *ChannelHandler) Playlists(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	playlists, err := h.aggregate.ChannelPlaylists(c.Context(), username)
	if err != nil {
		return respondError(c, err, "Failed to load channel playlists")
	}
	return c.JSON(playlists)
}

// Tweets handles GET /api/v1/channels/:username/tweets
func (h *ChannelHandler) Tweets(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	tweets, err := h.aggregate.ChannelTweets(c.Context(), username)
	if err != nil {
		return respondError(c, err, "Failed to load channel tweets")
	}
	return c.JSON(tweets)
}

// Followings handles GET /api/v1/channels/:username/followings
func (h *ChannelHandler) Followings(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	followings, err := h.aggregate.Followings(c.Context(), username)
	if err != nil {
		return respondError(c, err, "Failed to load followings")
	}
	return c.JSON(followings)
}

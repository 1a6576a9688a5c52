package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/service"
)

type PlaylistHandler struct {
	svc       *service.PlaylistService
	aggregate *service.AggregateService
}

func NewPlaylistHandler(svc *service.PlaylistService, aggregate *service.AggregateService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc, aggregate: aggregate}
}

// Create handles POST /api/v1/playlists
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	req, errMsg := h.bindRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	playlist, err := h.svc.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to create playlist")
	}
	return c.Status(fiber.StatusCreated).JSON(playlist)
}

// GetByID handles GET /api/v1/playlists/:playlistId — the resolved page.
func (h *PlaylistHandler) GetByID(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateUUID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	detail, err := h.aggregate.PlaylistDetail(c.Context(), playlistID)
	if err != nil {
		return respondError(c, err, "Failed to load playlist")
	}
	return c.JSON(detail)
}

// Update handles PATCH /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateUUID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req, errMsg := h.bindRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	playlist, err := h.svc.Update(c.Context(), playlistID, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to update playlist")
	}
	return c.JSON(playlist)
}

// Delete handles DELETE /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateUUID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), playlistID, middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to delete playlist")
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddVideo handles POST /api/v1/playlists/:playlistId/videos/:videoId
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	playlistID, videoID, errMsg := h.memberParams(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	playlist, err := h.svc.AddVideo(c.Context(), playlistID, videoID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to add video to playlist")
	}
	return c.JSON(playlist)
}

// RemoveVideo handles DELETE /api/v1/playlists/:playlistId/videos/:videoId
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	playlistID, videoID, errMsg := h.memberParams(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	playlist, err := h.svc.RemoveVideo(c.Context(), playlistID, videoID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to remove video from playlist")
	}
	return c.JSON(playlist)
}

func (h *PlaylistHandler) bindRequest(c fiber.Ctx) (model.PlaylistRequest, string) {
	var req model.PlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return req, "Invalid request body"
	}
	name, errMsg := middleware.ValidateTitle(req.Name, "name")
	if errMsg != "" {
		return req, errMsg
	}
	req.Name = name
	return req, ""
}

func (h *PlaylistHandler) memberParams(c fiber.Ctx) (playlistID, videoID, errMsg string) {
	playlistID, errMsg = middleware.ValidateUUID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return "", "", errMsg
	}
	videoID, errMsg = middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return "", "", errMsg
	}
	return playlistID, videoID, ""
}

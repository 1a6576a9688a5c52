package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/service"
)

type VideoHandler struct {
	svc       *service.VideoService
	aggregate *service.AggregateService
}

func NewVideoHandler(svc *service.VideoService, aggregate *service.AggregateService) *VideoHandler {
	return &VideoHandler{svc: svc, aggregate: aggregate}
}

// Feed handles GET /api/v1/videos — all published videos.
func (h *VideoHandler) Feed(c fiber.Ctx) error {
	videos, err := h.aggregate.Feed(c.Context())
	if err != nil {
		return respondError(c, err, "Failed to load videos")
	}
	return c.JSON(videos)
}

// GetByID handles GET /api/v1/videos/:videoId — the full video page.
// A successful fetch counts as a view and, for a signed-in caller, promotes
// the video to the front of their watch history.
func (h *VideoHandler) GetByID(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	detail, err := h.aggregate.VideoDetail(c.Context(), videoID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load video")
	}
	if Metrics.VideoViewsTotal != nil {
		Metrics.VideoViewsTotal.Inc()
	}
	return c.JSON(detail)
}

// Upload handles POST /api/v1/videos (multipart form).
func (h *VideoHandler) Upload(c fiber.Ctx) error {
	title, errMsg := middleware.ValidateTitle(c.FormValue("title"), "title")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	description, errMsg := middleware.ValidateContent(c.FormValue("description"), "description")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	duration, err := strconv.ParseFloat(c.FormValue("duration"), 64)
	if err != nil || duration < 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "duration must be a non-negative number of seconds")
	}

	mediaFH, err := c.FormFile("videoFile")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "videoFile is required")
	}
	media, closeMedia, err := formUpload(mediaFH)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Could not read video file")
	}
	defer closeMedia()

	thumbFH, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "thumbnail is required")
	}
	thumb, closeThumb, err := formUpload(thumbFH)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Could not read thumbnail file")
	}
	defer closeThumb()

	req := model.UploadVideoRequest{Title: title, Description: description, Duration: duration}
	video, err := h.svc.Upload(c.Context(), middleware.UserID(c), req, media, thumb)
	if err != nil {
		return respondError(c, err, "Failed to upload video")
	}
	if Metrics.UploadsTotal != nil {
		Metrics.UploadsTotal.WithLabelValues("video").Inc()
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Update handles PATCH /api/v1/videos/:videoId
func (h *VideoHandler) Update(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.UpdateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	title, errMsg := middleware.ValidateTitle(req.Title, "title")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title
	description, errMsg := middleware.ValidateContent(req.Description, "description")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Description = description

	video, err := h.svc.Update(c.Context(), videoID, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to update video")
	}
	return c.JSON(video)
}

// TogglePublish handles PATCH /api/v1/videos/:videoId/toggle-publish
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	published, err := h.svc.TogglePublish(c.Context(), videoID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to toggle publish state")
	}
	return c.JSON(fiber.Map{"isPublished": published})
}

// Delete handles DELETE /api/v1/videos/:videoId
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), videoID, middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to delete video")
	}
	return c.JSON(fiber.Map{"success": true})
}

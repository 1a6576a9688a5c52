package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /api/v1/videos/:videoId/comments
func (h *CommentHandler) List(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	comments, err := h.svc.ListByVideo(c.Context(), videoID)
	if err != nil {
		return respondError(c, err, "Failed to load comments")
	}
	return c.JSON(comments)
}

// Create handles POST /api/v1/videos/:videoId/comments
func (h *CommentHandler) Create(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateUUID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	content, errMsg := h.bindContent(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	comment, err := h.svc.Create(c.Context(), videoID, middleware.UserID(c), content)
	if err != nil {
		return respondError(c, err, "Failed to create comment")
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Update handles PATCH /api/v1/comments/:commentId
func (h *CommentHandler) Update(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateUUID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	content, errMsg := h.bindContent(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	comment, err := h.svc.Update(c.Context(), commentID, middleware.UserID(c), content)
	if err != nil {
		return respondError(c, err, "Failed to update comment")
	}
	return c.JSON(comment)
}

// Delete handles DELETE /api/v1/comments/:commentId
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateUUID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), commentID, middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to delete comment")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CommentHandler) bindContent(c fiber.Ctx) (string, string) {
	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return "", "Invalid request body"
	}
	return middleware.ValidateContent(req.Content, "content")
}

package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/service"
)

// respondError maps a service error to the standard API error envelope.
// Unrecognized errors never leak details to the client.
func respondError(c fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, apperr.ErrInvalidInput):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, apperr.ErrUpstream):
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Upstream storage unavailable")
	default:
		middleware.Logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

// formUpload opens a multipart file header as a service upload. The caller
// must invoke the returned closer when done. A nil header yields nil.
func formUpload(fh *multipart.FileHeader) (*service.FileUpload, func(), error) {
	if fh == nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &service.FileUpload{
		Reader:      f,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return upload, func() { f.Close() }, nil
}

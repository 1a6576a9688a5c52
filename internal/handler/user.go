package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register handles POST /api/v1/users/register (multipart form).
func (h *UserHandler) Register(c fiber.Ctx) error {
	req := model.RegisterRequest{
		Username: c.FormValue("username"),
		FullName: c.FormValue("fullName"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Username = username

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Email = email

	if errMsg := middleware.ValidatePassword(req.Password); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	fullName, errMsg := middleware.ValidateTitle(req.FullName, "fullName")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.FullName = fullName

	avatarFH, err := c.FormFile("avatar")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "avatar file is required")
	}
	avatar, closeAvatar, err := formUpload(avatarFH)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Could not read avatar file")
	}
	defer closeAvatar()

	var cover *service.FileUpload
	if coverFH, err := c.FormFile("coverImage"); err == nil && coverFH != nil {
		var closeCover func()
		cover, closeCover, err = formUpload(coverFH)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Could not read cover file")
		}
		defer closeCover()
	}

	user, err := h.svc.Register(c.Context(), req, avatar, cover)
	if err != nil {
		return respondError(c, err, "Failed to register user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/v1/users/login
func (h *UserHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Username == "" && req.Email == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "username or email is required")
	}

	resp, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to log in")
	}
	setSessionCookies(c, resp)
	return c.JSON(resp)
}

// Refresh handles POST /api/v1/users/refresh-token
func (h *UserHandler) Refresh(c fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind().JSON(&req); err != nil || req.RefreshToken == "" {
		req.RefreshToken = c.Cookies("refreshToken")
	}
	if req.RefreshToken == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "refreshToken is required")
	}

	resp, err := h.svc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err, "Failed to refresh session")
	}
	setSessionCookies(c, resp)
	return c.JSON(resp)
}

// Logout handles POST /api/v1/users/logout
func (h *UserHandler) Logout(c fiber.Ctx) error {
	if err := h.svc.Logout(c.Context(), middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to log out")
	}
	clearSessionCookies(c)
	return c.JSON(fiber.Map{"success": true})
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	user, err := h.svc.Lookup(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to load account")
	}
	return c.JSON(user)
}

// ChangePassword handles POST /api/v1/users/change-password
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	var req model.ChangePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if errMsg := middleware.ValidatePassword(req.NewPassword); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.ChangePassword(c.Context(), middleware.UserID(c), req); err != nil {
		return respondError(c, err, "Failed to change password")
	}
	return c.JSON(fiber.Map{"success": true})
}

// UpdateProfile handles PATCH /api/v1/users/me
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	var req model.UpdateProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	fullName, errMsg := middleware.ValidateTitle(req.FullName, "fullName")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.FullName = fullName

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Email = email

	user, err := h.svc.UpdateProfile(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to update profile")
	}
	return c.JSON(user)
}

// UpdateAvatar handles PATCH /api/v1/users/avatar (multipart form).
func (h *UserHandler) UpdateAvatar(c fiber.Ctx) error {
	return h.updateImage(c, "avatar", h.svc.UpdateAvatar)
}

// UpdateCover handles PATCH /api/v1/users/cover-image (multipart form).
func (h *UserHandler) UpdateCover(c fiber.Ctx) error {
	return h.updateImage(c, "coverImage", h.svc.UpdateCover)
}

// DeleteAccount handles DELETE /api/v1/users/me
func (h *UserHandler) DeleteAccount(c fiber.Ctx) error {
	if err := h.svc.DeleteAccount(c.Context(), middleware.UserID(c)); err != nil {
		return respondError(c, err, "Failed to delete account")
	}
	clearSessionCookies(c)
	return c.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) updateImage(
	c fiber.Ctx,
	field string,
	update func(ctx context.Context, userID string, file *service.FileUpload) (*model.User, error),
) error {
	fh, err := c.FormFile(field)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", field+" file is required")
	}
	file, closeFile, err := formUpload(fh)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Could not read "+field+" file")
	}
	defer closeFile()

	user, err := update(c.Context(), middleware.UserID(c), file)
	if err != nil {
		return respondError(c, err, "Failed to update "+field)
	}
	return c.JSON(user)
}

func setSessionCookies(c fiber.Ctx, resp *model.AuthResponse) {
	c.Cookie(&fiber.Cookie{Name: "accessToken", Value: resp.AccessToken, HTTPOnly: true, Secure: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refreshToken", Value: resp.RefreshToken, HTTPOnly: true, Secure: true, Path: "/"})
}

func clearSessionCookies(c fiber.Ctx) {
	c.ClearCookie("accessToken", "refreshToken")
}

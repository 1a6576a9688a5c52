package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/pkg/token"
)

const userIDKey = "userID"

// UserID returns the authenticated user id set by RequireAuth or
// OptionalAuth, or "" for anonymous requests.
func UserID(c fiber.Ctx) string {
	if uid, ok := c.Locals(userIDKey).(string); ok {
		return uid
	}
	return ""
}

// bearerToken extracts the access token from the Authorization header or,
// failing that, the accessToken cookie.
func bearerToken(c fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.Cookies("accessToken")
}

// RequireAuth rejects requests without a valid access token and stores the
// caller's user id in the request locals.
func RequireAuth(verifier *token.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Missing access token")
		}
		claims, err := verifier.Verify(raw)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired access token")
		}
		c.Locals(userIDKey, claims.Subject)
		return c.Next()
	}
}

// OptionalAuth stores the caller's user id when a valid token is present
// and lets anonymous requests through untouched.
func OptionalAuth(verifier *token.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		if raw := bearerToken(c); raw != "" {
			if claims, err := verifier.Verify(raw); err == nil {
				c.Locals(userIDKey, claims.Subject)
			}
		}
		return c.Next()
	}
}

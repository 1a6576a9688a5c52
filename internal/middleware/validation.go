package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 30  // users.username VARCHAR(30)
	MaxEmailLen    = 254 // users.email VARCHAR(254)
	MinPasswordLen = 8
	MaxPasswordLen = 72 // bcrypt input limit
	MaxTitleLen    = 120
	MaxContentLen  = 2000
)

var (
	// usernameRe matches handles: lowercase alphanumeric, dash, underscore.
	usernameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)
	// emailRe is a permissive shape check; deliverability is not our problem.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// uuidRe matches canonical lowercase UUIDs.
	uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUsername normalizes to lowercase and checks handle rules.
func ValidateUsername(username string) (string, string) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return "", "username is required"
	}
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return "", "username must be 3-30 characters"
	}
	if !usernameRe.MatchString(username) {
		return "", "username may contain lowercase letters, digits, dash and underscore"
	}
	return username, ""
}

// ValidateEmail normalizes and shape-checks an email address.
func ValidateEmail(email string) (string, string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > MaxEmailLen {
		return "", "email must be at most 254 characters"
	}
	if !emailRe.MatchString(email) {
		return "", "email is not valid"
	}
	return email, ""
}

// ValidatePassword checks length bounds only. Composition rules are a
// client concern.
func ValidatePassword(password string) string {
	if len(password) < MinPasswordLen {
		return "password must be at least 8 characters"
	}
	if len(password) > MaxPasswordLen {
		return "password must be at most 72 characters"
	}
	return ""
}

// ValidateUUID checks that a path parameter is a canonical UUID.
func ValidateUUID(id, field string) (string, string) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return "", field + " is required"
	}
	if !uuidRe.MatchString(id) {
		return "", field + " must be a valid id"
	}
	return id, ""
}

// ValidateContent checks free-text bodies (comments, tweets, descriptions).
func ValidateContent(content, field string) (string, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", field + " is required"
	}
	if len(content) > MaxContentLen {
		return "", field + " must be at most 2000 characters"
	}
	return content, ""
}

// ValidateTitle checks a short display name or title.
func ValidateTitle(title, field string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", field + " is required"
	}
	if len(title) > MaxTitleLen {
		return "", field + " must be at most 120 characters"
	}
	return title, ""
}

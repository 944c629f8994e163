package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/pkg/token"
)

const localsUserID = "user_id"

var (
	ErrMissingAuthHeader   = errors.New("authorization header is required")
	ErrMalformedAuthHeader = errors.New("authorization header format must be Bearer <token>")
)

// Authenticate resolves an Authorization header value to the user it was
// issued for. Only live access tokens are accepted.
func Authenticate(header string, maker token.Maker) (models.ID, error) {
	if header == "" {
		return models.ID{}, ErrMissingAuthHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return models.ID{}, ErrMalformedAuthHeader
	}

	return token.ValidateKind(maker, strings.TrimSpace(parts[1]), token.Access)
}

func AuthMiddleware(maker token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := Authenticate(c.Get(fiber.HeaderAuthorization), maker)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingAuthHeader):
				return apperror.Unauthorized("Authorization header is required", err)
			case errors.Is(err, ErrMalformedAuthHeader):
				return apperror.Unauthorized("Authorization header format must be Bearer <token>", err)
			default:
				// Expired and forged tokens get the same answer.
				return apperror.Unauthorized("Invalid or expired token", err)
			}
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// CurrentUser returns the id stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (models.ID, bool) {
	userID, ok := c.Locals(localsUserID).(models.ID)
	return userID, ok && !userID.IsZero()
}

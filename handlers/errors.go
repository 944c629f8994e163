package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/pkg/logging"
)

// ErrorHandler turns handler errors into the JSON error body every route
// answers with.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Error: fiberErr.Message})
		}

		appErr := apperror.As(err)
		status := appErr.Kind.Status()

		switch appErr.Kind {
		case apperror.KindInternal:
			log.Error(c.UserContext(), "request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", appErr.Err,
			)
			return c.Status(status).JSON(models.ErrorResponse{Error: appErr.Message})
		case apperror.KindValidation:
			if len(appErr.Violations) > 0 {
				return c.Status(status).JSON(models.ValidationErrorResponse{
					Error:  appErr.Message,
					Errors: appErr.Violations,
				})
			}
		case apperror.KindDecode:
			resp := models.ErrorResponse{Error: appErr.Message}
			if appErr.Err != nil {
				resp.Details = appErr.Err.Error()
			}
			return c.Status(status).JSON(resp)
		}

		return c.Status(status).JSON(models.ErrorResponse{Error: appErr.Message})
	}
}

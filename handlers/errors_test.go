package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/pkg/logging"
)

func TestErrorHandler(t *testing.T) {
	violation := &models.FieldViolation{Field: "URL", Tag: "required", Message: "Field 'URL' is required."}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "validation with violations",
			err:        apperror.Validation("URL is required", violation),
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]any{
				"error": "URL is required",
				"errors": []any{map[string]any{
					"field": "URL", "tag": "required", "message": "Field 'URL' is required.",
				}},
			},
		},
		{
			name:       "validation without violations",
			err:        apperror.Validation("Invalid QR Code ID"),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid QR Code ID"},
		},
		{
			name:       "conflict",
			err:        apperror.Conflict("User already exists"),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "User already exists"},
		},
		{
			name:       "decode carries details",
			err:        apperror.Decode("Invalid logo image", errors.New("unknown format")),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid logo image", "details": "unknown format"},
		},
		{
			name:       "unauthorized hides cause",
			err:        apperror.Unauthorized("Invalid or expired token", errors.New("token has expired")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]any{"error": "Invalid or expired token"},
		},
		{
			name:       "not found",
			err:        apperror.NotFound("QR code not found or unauthorized"),
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "QR code not found or unauthorized"},
		},
		{
			name:       "plain error becomes generic internal",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Internal server error"},
		},
		{
			name:       "fiber error passes through",
			err:        fiber.NewError(fiber.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   map[string]any{"error": "Request Entity Too Large"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Nop())})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Nop())})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

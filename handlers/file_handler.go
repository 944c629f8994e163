package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/repository"
)

type FileHandler struct {
	logoRepo repository.LogoRepository
}

func NewFileHandler(logoRepo repository.LogoRepository) *FileHandler {
	return &FileHandler{
		logoRepo: logoRepo,
	}
}

// GetLogo godoc
// @Summary Get Logo
// @Description Serves a logo uploaded with a QR code (the QR code's logo_path)
// @Tags Files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary "Logo bytes"
// @Failure 400 {object} models.ErrorResponse "Invalid file ID"
// @Failure 404 {object} models.ErrorResponse "File not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /files/{id} [get]
func (h *FileHandler) GetLogo(c *fiber.Ctx) error {
	fileID, err := models.ParseID(c.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid file ID")
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	file, err := h.logoRepo.OpenLogo(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("File not found")
		}
		return apperror.Internal("Failed to read file", err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, "inline; filename="+strconv.Quote(file.Name))
	return c.Send(file.Data)
}

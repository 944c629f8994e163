package handlers

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"QR-Code-Tracker/config/middleware"
	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/pkg/logging"
	"QR-Code-Tracker/pkg/qrimage"
	util "QR-Code-Tracker/pkg/utils"
	"QR-Code-Tracker/repository"
)

const (
	renderTimeout = 10 * time.Second
	logoFormField = "logo"
	// HeaderQRCodeID carries the id of a freshly generated code next to its PNG.
	HeaderQRCodeID = "X-QR-Code-ID"
)

type QRCodeHandler struct {
	qrRepo   repository.QRCodeRepository
	logoRepo repository.LogoRepository
	log      logging.Logger
}

func NewQRCodeHandler(qrRepo repository.QRCodeRepository, logoRepo repository.LogoRepository, log logging.Logger) *QRCodeHandler {
	return &QRCodeHandler{
		qrRepo:   qrRepo,
		logoRepo: logoRepo,
		log:      log.With("component", "qrcodes"),
	}
}

type uploadedLogo struct {
	filename    string
	contentType string
	data        []byte
	img         image.Image
}

// GenerateQRCode godoc
// @Summary Generate QR Code
// @Description Renders a QR code for a URL, optionally with a centered logo, and stores its metadata.
// @Description Accepts JSON or multipart/form-data; the logo is only read from multipart requests.
// @Tags QR Codes
// @Accept json,mpfd
// @Produce png
// @Security BearerAuth
// @Param url formData string true "Target URL"
// @Param title formData string false "Title"
// @Param foreground_color formData string false "Module color" default(#000000)
// @Param background_color formData string false "Background color" default(#ffffff)
// @Param logo formData file false "Logo image"
// @Success 200 {file} binary "PNG image"
// @Header 200 {string} X-QR-Code-ID "Id of the stored QR code"
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /qrcodes/generate [post]
func (h *QRCodeHandler) GenerateQRCode(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.Unauthorized("Invalid or expired token", nil)
	}

	var payload models.QRCodeGeneratePayload
	if err := c.BodyParser(&payload); err != nil {
		return apperror.Decode("Invalid request body", err)
	}
	payload.URL = strings.TrimSpace(payload.URL)

	if violations := util.ValidateStruct(payload); violations != nil {
		return apperror.Validation("URL is required", violations...)
	}
	payload.ApplyDefaults()

	logo, err := h.readLogo(c)
	if err != nil {
		return err
	}

	req := qrimage.Request{
		Content:    payload.URL,
		Foreground: payload.ForegroundColor,
		Background: payload.BackgroundColor,
	}
	if logo != nil {
		req.Logo = logo.img
	}

	renderCtx, cancelRender := context.WithTimeout(c.Context(), renderTimeout)
	defer cancelRender()

	pngBytes, err := qrimage.Render(renderCtx, req)
	if err != nil {
		switch {
		case errors.Is(err, qrimage.ErrInvalidColor):
			return apperror.Validation(err.Error())
		case errors.Is(err, qrimage.ErrEncode), errors.Is(err, qrimage.ErrEmptyContent):
			return apperror.Validation("URL cannot be encoded as a QR code")
		}
		return apperror.Internal("Failed to generate QR code", err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	qrCode := &models.QRCode{
		UserID:          userID,
		URL:             payload.URL,
		Title:           payload.Title,
		ForegroundColor: payload.ForegroundColor,
		BackgroundColor: payload.BackgroundColor,
		CreatedAt:       time.Now().UTC(),
	}

	var logoID *models.ID
	if logo != nil {
		id, err := h.logoRepo.UploadLogo(ctx, logo.filename, logo.contentType, bytes.NewReader(logo.data))
		if err != nil {
			return apperror.Internal("Failed to store logo", err)
		}
		logoID = &id
		path := "/files/" + id.Hex()
		qrCode.LogoPath = &path
	}

	qrCodeID, err := h.qrRepo.SaveQRCode(ctx, qrCode)
	if err != nil {
		if logoID != nil {
			h.discardLogo(c, *logoID)
		}
		return apperror.Internal("Failed to save QR code", err)
	}

	h.log.Debug(c.UserContext(), "qr code generated",
		"qr_code_id", qrCodeID.Hex(),
		"user_id", userID.Hex(),
		"with_logo", logo != nil,
	)

	c.Set(HeaderQRCodeID, qrCodeID.Hex())
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(pngBytes)
}

// discardLogo removes a logo whose QR code could not be saved. It gets its
// own deadline since the request context may already be spent.
func (h *QRCodeHandler) discardLogo(c *fiber.Ctx, id models.ID) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.logoRepo.DeleteLogo(ctx, id); err != nil {
		h.log.Error(c.UserContext(), "failed to remove orphaned logo", "logo_id", id.Hex(), "error", err)
	}
}

// readLogo returns nil when the request carries no logo.
func (h *QRCodeHandler) readLogo(c *fiber.Ctx) (*uploadedLogo, error) {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperror.Decode("Invalid multipart form", err)
	}
	files := form.File[logoFormField]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.Decode("Failed to read logo", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.Decode("Failed to read logo", err)
	}

	img, err := qrimage.DecodeLogo(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.Decode("Invalid logo image", err)
	}

	return &uploadedLogo{
		filename:    uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename)),
		contentType: http.DetectContentType(data),
		data:        data,
		img:         img,
	}, nil
}

// GetMyQRCodes godoc
// @Summary List My QR Codes
// @Description Returns the caller's QR codes, newest first
// @Tags QR Codes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.QRCode
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /qrcodes/my_qrcodes [get]
func (h *QRCodeHandler) GetMyQRCodes(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.Unauthorized("Invalid or expired token", nil)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	qrCodes, err := h.qrRepo.FindQRCodesByOwner(ctx, userID)
	if err != nil {
		return apperror.Internal("Failed to fetch QR codes", err)
	}

	return c.Status(fiber.StatusOK).JSON(qrCodes)
}

// DeleteQRCode godoc
// @Summary Delete QR Code
// @Description Deletes one of the caller's QR codes. Codes owned by someone else look exactly like missing ones.
// @Tags QR Codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR code ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "QR code not found or unauthorized"
// @Failure 500 {object} models.ErrorResponse
// @Router /qrcodes/qrcodes/{id} [delete]
func (h *QRCodeHandler) DeleteQRCode(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.Unauthorized("Invalid or expired token", nil)
	}

	qrCodeID, err := models.ParseID(c.Params("id"))
	if err != nil {
		return apperror.NotFound("QR code not found or unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	deleted, err := h.qrRepo.DeleteQRCode(ctx, qrCodeID, userID)
	if err != nil {
		return apperror.Internal("Failed to delete QR code", err)
	}
	if deleted == 0 {
		return apperror.NotFound("QR code not found or unauthorized")
	}

	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{Message: "QR code deleted successfully"})
}

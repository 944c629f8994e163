package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/apperror"
	"QR-Code-Tracker/repository"
)

type AnalyticsHandler struct {
	scanRepo repository.ScanRepository
}

func NewAnalyticsHandler(scanRepo repository.ScanRepository) *AnalyticsHandler {
	return &AnalyticsHandler{
		scanRepo: scanRepo,
	}
}

// RecordScan godoc
// @Summary Record Scan
// @Description Records a scan of a QR code. User agent and client IP are taken from the request.
// @Tags Analytics
// @Produce json
// @Param qr_code_id path string true "QR code ID"
// @Success 201 {object} models.ScanRecordedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid QR Code ID"
// @Failure 500 {object} models.ErrorResponse
// @Router /scans/{qr_code_id} [post]
func (h *AnalyticsHandler) RecordScan(c *fiber.Ctx) error {
	qrCodeID, err := models.ParseID(c.Params("qr_code_id"))
	if err != nil {
		return apperror.Validation("Invalid QR Code ID")
	}

	scan := &models.Scan{
		QRCodeID:  qrCodeID,
		Timestamp: time.Now().UTC(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IPAddress: c.IP(),
	}
	if referer := c.Get(fiber.HeaderReferer); referer != "" {
		scan.Metadata = map[string]string{"referer": referer}
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	scanID, err := h.scanRepo.RecordScan(ctx, scan)
	if err != nil {
		return apperror.Internal("Failed to record scan", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.ScanRecordedResponse{
		Message: "Scan recorded successfully",
		ScanID:  scanID.Hex(),
	})
}

// GetScansByQRCode godoc
// @Summary Scans of a QR Code
// @Description Lists every recorded scan of a QR code, oldest first
// @Tags Analytics
// @Produce json
// @Param qr_code_id path string true "QR code ID"
// @Success 200 {array} models.Scan
// @Failure 400 {object} models.ErrorResponse "Invalid QR Code ID"
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/{qr_code_id} [get]
func (h *AnalyticsHandler) GetScansByQRCode(c *fiber.Ctx) error {
	qrCodeID, err := models.ParseID(c.Params("qr_code_id"))
	if err != nil {
		return apperror.Validation("Invalid QR Code ID")
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	scans, err := h.scanRepo.FindScansByQRCode(ctx, qrCodeID)
	if err != nil {
		return apperror.Internal("Failed to fetch scans", err)
	}

	return c.Status(fiber.StatusOK).JSON(scans)
}

// GetUserAnalytics godoc
// @Summary Scan Total per User
// @Description Counts scans across every QR code owned by a user
// @Tags Analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.ScanTotal
// @Failure 400 {object} models.ErrorResponse "Invalid User ID"
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/user/{user_id} [get]
func (h *AnalyticsHandler) GetUserAnalytics(c *fiber.Ctx) error {
	userID, err := models.ParseID(c.Params("user_id"))
	if err != nil {
		return apperror.Validation("Invalid User ID")
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	total, err := h.scanRepo.CountScansByOwner(ctx, userID)
	if err != nil {
		return apperror.Internal("Failed to compute analytics", err)
	}

	return c.Status(fiber.StatusOK).JSON([]models.ScanTotal{{TotalScans: total}})
}

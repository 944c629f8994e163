package repository

import (
	"context"
	"errors"
	"io"

	"QR-Code-Tracker/models"
)

var (
	ErrEmailExists = errors.New("email already exists")
	ErrNotFound    = errors.New("not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (models.ID, error)
	// FindUserByEmail returns nil, nil when no user has that email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id models.ID) (*models.User, error)
}

// QRCodeRepository scopes every read and delete to an owner.
type QRCodeRepository interface {
	SaveQRCode(ctx context.Context, qrCode *models.QRCode) (models.ID, error)
	FindQRCodesByOwner(ctx context.Context, ownerID models.ID) ([]models.QRCode, error)
	// DeleteQRCode removes the code only if ownerID owns it. A zero count
	// means missing or not owned; callers cannot tell which.
	DeleteQRCode(ctx context.Context, id, ownerID models.ID) (int64, error)
}

type ScanRepository interface {
	RecordScan(ctx context.Context, scan *models.Scan) (models.ID, error)
	FindScansByQRCode(ctx context.Context, qrCodeID models.ID) ([]models.Scan, error)
	CountScansByOwner(ctx context.Context, ownerID models.ID) (int64, error)
}

type LogoFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type LogoRepository interface {
	UploadLogo(ctx context.Context, filename, contentType string, r io.Reader) (models.ID, error)
	// OpenLogo returns ErrNotFound for an unknown id.
	OpenLogo(ctx context.Context, id models.ID) (*LogoFile, error)
	DeleteLogo(ctx context.Context, id models.ID) error
}

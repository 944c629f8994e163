package models

import (
	"time"
)

const (
	DefaultForegroundColor = "#000000"
	DefaultBackgroundColor = "#ffffff"
)

// QRCode is the stored metadata of a generated code. The rendered image
// itself is never persisted.
type QRCode struct {
	ID              ID        `json:"id" bson:"_id,omitempty"`
	UserID          ID        `json:"user_id" bson:"user_id"`
	URL             string    `json:"url" bson:"url"`
	Title           string    `json:"title" bson:"title"`
	ForegroundColor string    `json:"foreground_color" bson:"foreground_color"`
	BackgroundColor string    `json:"background_color" bson:"background_color"`
	LogoPath        *string   `json:"logo_path" bson:"logo_path"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

type QRCodeGeneratePayload struct {
	URL             string `json:"url" form:"url" validate:"required,notblank,max=2048"`
	Title           string `json:"title" form:"title" validate:"max=200"`
	ForegroundColor string `json:"foreground_color" form:"foreground_color" validate:"max=32"`
	BackgroundColor string `json:"background_color" form:"background_color" validate:"max=32"`
}

// ApplyDefaults fills in the colors the client left out.
func (p *QRCodeGeneratePayload) ApplyDefaults() {
	if p.ForegroundColor == "" {
		p.ForegroundColor = DefaultForegroundColor
	}
	if p.BackgroundColor == "" {
		p.BackgroundColor = DefaultBackgroundColor
	}
}

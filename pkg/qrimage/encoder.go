// Package qrimage renders URLs as QR code rasters and composes an optional
// logo onto them.
package qrimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

const (
	// QuietZone is the border around the symbol, in modules.
	QuietZone = 5
	// ModuleSize is the edge length of one module, in pixels.
	ModuleSize = 10
	// RecoveryLevel is fixed; the symbol version is picked to fit the content.
	RecoveryLevel = qrcode.Medium
)

var (
	ErrEmptyContent = errors.New("qr content must not be empty")
	ErrEncode       = errors.New("qr encoding failed")
)

// Matrix returns the module matrix for content without any quiet zone.
func Matrix(content string) ([][]bool, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	q, err := qrcode.New(content, RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

// Encode builds the matrix for content and rasterizes it with the given
// color specs. Output is fully determined by the arguments.
func Encode(content, foreground, background string) (*image.RGBA, error) {
	matrix, err := Matrix(content)
	if err != nil {
		return nil, err
	}
	fg, err := ParseColor(foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseColor(background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return Rasterize(matrix, fg, bg), nil
}

// Rasterize paints dark modules in fg over a bg canvas that includes the
// quiet zone.
func Rasterize(matrix [][]bool, fg, bg color.Color) *image.RGBA {
	side := (len(matrix) + 2*QuietZone) * ModuleSize
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	fill := image.NewUniform(fg)
	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := (x + QuietZone) * ModuleSize
			py := (y + QuietZone) * ModuleSize
			draw.Draw(img, image.Rect(px, py, px+ModuleSize, py+ModuleSize), fill, image.Point{}, draw.Src)
		}
	}
	return img
}

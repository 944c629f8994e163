package qrimage

import (
	"bytes"
	"context"
	"image"
	"image/png"
)

type Request struct {
	Content    string
	Foreground string
	Background string
	Logo       image.Image
}

// Render runs encode, overlay and PNG encoding, giving up between stages
// once ctx is done.
func Render(ctx context.Context, req Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := Encode(req.Content, req.Foreground, req.Background)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img = Overlay(img, req.Logo)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

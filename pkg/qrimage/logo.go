package qrimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// LogoScale is the fraction of each image dimension the logo occupies.
const LogoScale = 5

var ErrDecodeLogo = errors.New("logo is not a decodable image")

// DecodeLogo reads a PNG, JPEG or GIF logo.
func DecodeLogo(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeLogo, err)
	}
	return img, nil
}

// LogoPlacement returns where a logo goes on an image with the given
// bounds: a W/5 × H/5 box centered on the image.
func LogoPlacement(bounds image.Rectangle) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	lw, lh := w/LogoScale, h/LogoScale
	x0 := bounds.Min.X + (w-lw)/2
	y0 := bounds.Min.Y + (h-lh)/2
	return image.Rect(x0, y0, x0+lw, y0+lh)
}

// Overlay scales logo into LogoPlacement(img.Bounds()) and composites it in
// place. A logo with an alpha channel is blended through that alpha; any
// other logo replaces the pixels underneath. A nil logo leaves img as is.
func Overlay(img *image.RGBA, logo image.Image) *image.RGBA {
	if logo == nil {
		return img
	}
	dst := LogoPlacement(img.Bounds())
	if dst.Empty() || logo.Bounds().Empty() {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), draw.Src, nil)

	op := draw.Src
	if hasAlphaChannel(logo) {
		// scaled is premultiplied, so Over is exactly a paste masked by
		// the logo's alpha.
		op = draw.Over
	}
	draw.Draw(img, dst, scaled, image.Point{}, op)
	return img
}

func hasAlphaChannel(img image.Image) bool {
	switch m := img.ColorModel(); m {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	default:
		palette, ok := m.(color.Palette)
		if !ok {
			return false
		}
		for _, c := range palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}
}

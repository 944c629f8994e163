package qrimage

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or a CSS color name.
func ParseColor(spec string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return nil, fmt.Errorf("%w: empty color", ErrInvalidColor)
	}

	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[s]
		if !ok {
			return nil, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, spec)
		}
		return named, nil
	}

	var alpha uint8 = 0xff
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}

	// colorful.Hex stops at the first non-hex digit without complaint.
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

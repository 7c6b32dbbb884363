package strip

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Default palette when a program leaves a color unset or invalid.
const (
	DefaultBackground    = "#1f2937"
	DefaultForeground    = "#ffffff"
	DefaultStampActive   = "#f59e0b"
	DefaultStampInactive = "#ffffff"
)

// ErrInvalidColor is returned for anything but #rgb / #rrggbb.
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor parses "#rgb", "#rrggbb" or the same without '#'.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexOr returns s normalised to "#rrggbb", or fallback when s does not parse.
func HexOr(s, fallback string) string {
	c, err := ParseHexColor(s)
	if err != nil {
		c, _ = ParseHexColor(fallback)
	}

	return Hex(c)
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}

	return string(b)
}

// Darken scales each channel by (1 - amount), truncating.
func Darken(c color.RGBA, amount float64) color.RGBA {
	f := 1 - amount

	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

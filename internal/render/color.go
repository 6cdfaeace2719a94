package render

import (
	"image/color"
	"strconv"
	"strings"
)

// RGB is a normalized, fully opaque color.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the triple to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Black is the fallback for any color string that cannot be parsed.
var Black = RGB{}

// HexToRGB parses "#RRGGBB" or "#RGB" (leading # optional, case-insensitive).
// Anything else yields Black; it never fails.
func HexToRGB(s string) RGB {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Expand shorthand: "0f0" -> "00ff00"
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Black
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// colorOr returns the parsed color, or the parsed fallback when s is empty.
func colorOr(s, fallback string) RGB {
	if strings.TrimSpace(s) == "" {
		return HexToRGB(fallback)
	}
	return HexToRGB(s)
}

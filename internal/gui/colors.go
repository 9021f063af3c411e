package gui

import (
	"image/color"
	"strconv"
	"strings"
)

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

var basicColors = [16]color.NRGBA{
	{0, 0, 0, 255}, {128, 0, 0, 255}, {0, 128, 0, 255}, {128, 128, 0, 255},
	{0, 0, 128, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {192, 192, 192, 255},
	{128, 128, 128, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{0, 0, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

// parseColor converts a palette entry to a color. Entries are either
// "#RRGGBB" or an xterm-256 index as used by the terminal themes.
func parseColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return fallback
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return fallback
	}
	switch {
	case n < 16:
		return basicColors[n]
	case n < 232:
		n -= 16
		return color.NRGBA{R: cubeLevels[n/36], G: cubeLevels[(n/6)%6], B: cubeLevels[n%6], A: 255}
	default:
		g := uint8(8 + (n-232)*10)
		return color.NRGBA{R: g, G: g, B: g, A: 255}
	}
}

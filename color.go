package rivegg

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rivegg/scene"
)

// ColorFromBGRA8 unpacks a 32-bit color laid out as 0xAARRGGBB, the
// order colors cross the handle boundary in.
func ColorFromBGRA8(c uint32) scene.Color {
	return scene.Color{
		R: uint8(c >> 16), //nolint:gosec // byte extraction
		G: uint8(c >> 8),  //nolint:gosec // byte extraction
		B: uint8(c),       //nolint:gosec // byte extraction
		A: uint8(c >> 24), //nolint:gosec // byte extraction
	}
}

// ColorToBGRA8 is the inverse of ColorFromBGRA8.
func ColorToBGRA8(c scene.Color) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseHexColor parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an
// optional leading '#'. Alpha defaults to opaque.
func ParseHexColor(hex string) (scene.Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255
	var ok bool
	switch len(s) {
	case 3, 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		if ok && len(s) == 4 {
			ok = parseHex(s[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
		if ok && len(s) == 8 {
			ok = parseHex(s[6:8], &a)
		}
	}
	if !ok {
		return scene.Color{}, fmt.Errorf("rivegg: invalid hex color %q", hex)
	}
	return scene.RGBA8(uint8(r), uint8(g), uint8(b), uint8(a)), nil //nolint:gosec // each channel <= 255
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// gpuColor converts an 8-bit color to the rasterizer's clear color.
func gpuColor(c scene.Color) gputypes.Color {
	return gputypes.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

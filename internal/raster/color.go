package raster

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PixelInfo describes a single packed pixel in several representations.
type PixelInfo struct {
	Packed uint32    `json:"packed"` // Raw 0xAARRGGBB value
	ARGB   string    `json:"argb"`   // Packed value as "0xAARRGGBB"
	Hex    string    `json:"hex"`    // Hex format "#RRGGBB" (no alpha)
	RGBA   RGBAColor `json:"rgba"`   // RGBA components with alpha
	HSL    HSLColor  `json:"hsl"`    // HSL representation
}

// DescribePixel expands a packed 0xAARRGGBB value.
//
// The Hex and HSL fields ignore alpha; use RGBA.A for transparency.
func DescribePixel(p uint32) PixelInfo {
	r, g, b, a := Unpack(p)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return PixelInfo{
		Packed: p,
		ARGB:   fmt.Sprintf("0x%08X", p),
		Hex:    strings.ToUpper(c.Hex()),
		RGBA:   RGBAColor{R: r, G: g, B: b, A: a},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}


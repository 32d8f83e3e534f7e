package pulse

import (
	"math"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// DefaultClearColor is the color every frame is cleared to, unless configured otherwise.
// The 8 bit channel values are passed through as they are, without degamma.
var DefaultClearColor = ColorRGBA8(166, 227, 161, 255)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float64
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float64) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorRGBA8 creates a Color by mapping each 8 bit channel onto [0, 1].
func ColorRGBA8(r, g, b, a uint8) Color {
	return ColorLinearRGBA(
		float64(r)/255,
		float64(g)/255,
		float64(b)/255,
		float64(a)/255,
	)
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
// Use this if you picked a color from a jpeg image.
func ColorSRGBA(r, g, b, a float64) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float64) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

func (c Color) ToWGPU() wgpu.Color {
	r, g, b, a := c.Components()
	return wgpu.Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float64) Color {
	c.a1 = alpha - 1
	return c
}

func degamma(x float64) float64 {
	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return x / 12.92
	}

	return sign * math.Pow((abs+0.055)/1.055, 2.4)
}

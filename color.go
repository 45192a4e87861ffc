package scrollstage

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHexString parses a CSS-style hex string ("#ff9900", "ff9900", "#f90", or "#ff9900cc") into a Color.
func NewColorFromHexString(hex string) (Color, error) {

	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) == 3 || len(hex) == 4 {
		expanded := ""
		for _, r := range hex {
			expanded += string(r) + string(r)
		}
		hex = expanded
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	if len(hex) != 8 {
		return Color{}, fmt.Errorf("scrollstage: invalid hex color %q", hex)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("scrollstage: invalid hex color %q: %w", hex, err)
	}

	return Color{
		R: float32((value>>24)&0xff) / 255,
		G: float32((value>>16)&0xff) / 255,
		B: float32((value>>8)&0xff) / 255,
		A: float32(value&0xff) / 255,
	}, nil

}

// MustHex is like NewColorFromHexString, but panics on malformed input. It's meant for literal colors in code.
func MustHex(hex string) Color {
	c, err := NewColorFromHexString(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Mult returns a copy of the Color with its RGB components multiplied by the other Color's.
func (c Color) Mult(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	c.A *= other.A
	return c
}

// AddRGB returns a copy of the Color with the RGB components of the other Color added (alpha is left alone).
func (c Color) AddRGB(other Color) Color {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	return c
}

// ScaleRGB returns a copy of the Color with the RGB components multiplied by the scalar value given.
func (c Color) ScaleRGB(scalar float32) Color {
	c.R *= scalar
	c.G *= scalar
	c.B *= scalar
	return c
}

// Lerp returns the Color interpolated between the calling Color and the other one by the percentage given.
func (c Color) Lerp(other Color, percentage float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*percentage,
		G: c.G + (other.G-c.G)*percentage,
		B: c.B + (other.B-c.B)*percentage,
		A: c.A + (other.A-c.A)*percentage,
	}
}

// Clamped returns a copy of the Color with every component clamped to the 0-1 range.
func (c Color) Clamped() Color {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		} else if v > 1 {
			return 1
		}
		return v
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)}
}

// ToRGBA64 converts the Color to a color.RGBA64 (premultiplied) for use with image functions.
func (c Color) ToRGBA64() color.RGBA64 {
	c = c.Clamped()
	return color.RGBA64{
		R: uint16(c.R * c.A * 65535),
		G: uint16(c.G * c.A * 65535),
		B: uint16(c.B * c.A * 65535),
		A: uint16(c.A * 65535),
	}
}

// RGBA64 returns the four components as float64s.
func (c Color) RGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

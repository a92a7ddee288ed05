// Package render is the drawing boundary between scene logic and the graphics
// backend. Controllers draw through these interfaces only, so they can be
// exercised with a recording canvas in tests.
package render

import (
	"image/color"
)

// Texture is a drawable image with an intrinsic size.
type Texture interface {
	Size() (width, height int)
}

// Font measures and identifies a text face.
type Font interface {
	// Measure returns the rendered width and height of s.
	Measure(s string) (width, height float64)
}

// TextureOptions positions a texture. The origin is in texture pixels and is
// the point placed at (X, Y); scale is applied around it.
type TextureOptions struct {
	X, Y             float64
	OriginX, OriginY float64
	ScaleX, ScaleY   float64
}

// Canvas is the per-frame drawing surface.
type Canvas interface {
	Clear(clr color.Color)
	FillRect(x, y, width, height float32, clr color.Color)
	StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color)
	DrawText(s string, font Font, x, y float64, clr color.Color)
	DrawTexture(tex Texture, opts TextureOptions)
}

// Common colors.
var (
	Black  = color.RGBA{0, 0, 0, 255}
	White  = color.RGBA{255, 255, 255, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Orange = color.RGBA{255, 128, 0, 255}
	Gray   = color.RGBA{51, 51, 51, 255}
)

// Alpha returns black at the given opacity in [0,1], for fade overlays.
func Alpha(a float64) color.Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{0, 0, 0, uint8(a*255 + 0.5)}
}

// TextWidth measures s with font, falling back to fallback when no font is
// available.
func TextWidth(font Font, s string, fallback float64) float64 {
	if font == nil {
		return fallback
	}
	w, _ := font.Measure(s)
	return w
}

// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"kernelquest/internal/render"
)

// Canvas wraps the screen image handed to ebiten.Game.Draw.
type Canvas struct {
	dst *ebiten.Image
}

// NewCanvas wraps dst for one frame.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Clear fills the whole canvas.
func (c *Canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.dst, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline.
func (c *Canvas) StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(c.dst, x, y, width, height, strokeWidth, clr, false)
}

// DrawText draws s with its top-left corner at (x, y). Fonts not created by
// this package are ignored.
func (c *Canvas) DrawText(s string, font render.Font, x, y float64, clr color.Color) {
	f, ok := font.(*Font)
	if !ok || f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = f.lineSpacing()
	text.Draw(c.dst, s, f.face, op)
}

// DrawTexture draws tex translated by -origin, scaled, then moved to (X, Y).
func (c *Canvas) DrawTexture(tex render.Texture, opts render.TextureOptions) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return
	}
	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-opts.OriginX, -opts.OriginY)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(opts.X, opts.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(t.img, op)
}

// Texture wraps an ebiten image.
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps img.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Size returns the image size in pixels.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Font is a Go text face.
type Font struct {
	face *text.GoTextFace
}

// LoadDefaultFont returns the Go Regular face at size.
func LoadDefaultFont(size float64) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	return &Font{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// Measure returns the width and height of s.
func (f *Font) Measure(s string) (float64, float64) {
	return text.Measure(s, f.face, f.lineSpacing())
}

func (f *Font) lineSpacing() float64 {
	return f.face.Size * 1.3
}

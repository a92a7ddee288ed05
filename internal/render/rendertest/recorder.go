// Package rendertest provides a render.Canvas that records draw calls.
package rendertest

import (
	"image/color"
	"strings"

	"kernelquest/internal/render"
)

// Kind identifies a recorded call.
type Kind int

const (
	KindClear Kind = iota
	KindFillRect
	KindStrokeRect
	KindText
	KindTexture
)

// Call is one recorded draw call.
type Call struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
	Color         color.Color
	Text          string
	Texture       render.Texture
	Options       render.TextureOptions
}

// Recorder records every call made on it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindClear, Color: clr})
}

func (r *Recorder) FillRect(x, y, width, height float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindFillRect, X: float64(x), Y: float64(y), Width: float64(width), Height: float64(height), Color: clr})
}

func (r *Recorder) StrokeRect(x, y, width, height, _ float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindStrokeRect, X: float64(x), Y: float64(y), Width: float64(width), Height: float64(height), Color: clr})
}

func (r *Recorder) DrawText(s string, _ render.Font, x, y float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindText, X: x, Y: y, Text: s, Color: clr})
}

func (r *Recorder) DrawTexture(tex render.Texture, opts render.TextureOptions) {
	r.Calls = append(r.Calls, Call{Kind: KindTexture, X: opts.X, Y: opts.Y, Texture: tex, Options: opts})
}

// Of returns the calls of one kind in order.
func (r *Recorder) Of(kind Kind) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FindText returns the first text call containing substr.
func (r *Recorder) FindText(substr string) (Call, bool) {
	for _, c := range r.Of(KindText) {
		if strings.Contains(c.Text, substr) {
			return c, true
		}
	}
	return Call{}, false
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Texture is a sized stand-in texture.
type Texture struct {
	W, H int
	Name string
}

func (t *Texture) Size() (int, int) { return t.W, t.H }

// Font measures every rune as a fixed width.
type Font struct {
	RuneWidth, LineHeight float64
}

func (f *Font) Measure(s string) (float64, float64) {
	lines := strings.Split(s, "\n")
	maxRunes := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxRunes {
			maxRunes = n
		}
	}
	return float64(maxRunes) * f.RuneWidth, float64(len(lines)) * f.LineHeight
}

package azure

import (
	"image/color"

	"github.com/gogpu/azure/backend"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGBA returns the color with the given components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromStd converts any image/color value.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func (c Color) wire() backend.Color {
	return backend.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorPattern is a solid color source for fills and strokes.
type ColorPattern struct {
	lib    backend.Library
	handle backend.PatternRef
}

// NewColorPattern creates a pattern painting c. It panics with an error
// wrapping ErrAllocationFailed when the library returns a null handle.
func NewColorPattern(c Color) *ColorPattern {
	p, err := CreateColorPattern(c)
	if err != nil {
		panic(err)
	}
	return p
}

// CreateColorPattern is like NewColorPattern but returns the error.
func CreateColorPattern(c Color) (*ColorPattern, error) {
	lib, err := CurrentLibrary()
	if err != nil {
		return nil, err
	}
	w := c.wire()
	h := lib.CreateColorPattern(&w)
	if h == 0 {
		return nil, allocationFailed("CreateColorPattern")
	}
	return &ColorPattern{lib: lib, handle: h}, nil
}

func (p *ColorPattern) ref() backend.PatternRef {
	if p.handle == 0 {
		panic(released("ColorPattern"))
	}
	return p.handle
}

// Release frees the pattern. Further calls do nothing.
func (p *ColorPattern) Release() {
	if p.handle == 0 {
		Logger().Debug("azure: ColorPattern released twice")
		return
	}
	p.lib.ReleaseColorPattern(p.handle)
	p.handle = 0
}

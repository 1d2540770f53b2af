package backend

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// Layout checks against the C headers on 64-bit targets.
func TestWireLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout table is for 64-bit targets")
	}
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Point", unsafe.Sizeof(Point{}), 8},
		{"IntSize", unsafe.Sizeof(IntSize{}), 8},
		{"Rect", unsafe.Sizeof(Rect{}), 16},
		{"Color", unsafe.Sizeof(Color{}), 16},
		{"Matrix", unsafe.Sizeof(Matrix{}), 24},
		{"DrawOptions", unsafe.Sizeof(DrawOptions{}), 8},
		{"DrawSurfaceOptions", unsafe.Sizeof(DrawSurfaceOptions{}), 4},
		{"Glyph", unsafe.Sizeof(Glyph{}), 12},
		{"StrokeOptions", unsafe.Sizeof(StrokeOptions{}), 32},
		{"StrokeOptions.DashOffset", unsafe.Offsetof(StrokeOptions{}.DashOffset), 24},
		{"StrokeOptions.Fields", unsafe.Offsetof(StrokeOptions{}.Fields), 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDrawOptionsDecode(t *testing.T) {
	o := DrawOptions{Alpha: 1, Fields: uint16(OpMultiply) | 5<<8 | 1<<11}
	assert.Equal(t, OpMultiply, o.CompositionOp())
	assert.Equal(t, AntialiasMode(5), o.AntialiasMode())
	assert.Equal(t, Snap, o.Snapping())

	d := DefaultDrawOptions()
	assert.Equal(t, OpOver, d.CompositionOp())
	assert.Equal(t, AntialiasDefault, d.AntialiasMode())
	assert.Equal(t, NoSnap, d.Snapping())
}

func TestStrokeOptionsDecode(t *testing.T) {
	dashes := []float32{4, 2}
	o := StrokeOptions{
		DashPattern: &dashes[0],
		DashLength:  uintptr(len(dashes)),
		Fields:      uint8(CapSquare)<<4 | uint8(JoinRound),
	}
	assert.Equal(t, CapSquare, o.CapStyle())
	assert.Equal(t, JoinRound, o.JoinStyle())
	assert.Equal(t, dashes, o.Dashes())

	assert.Nil(t, (&StrokeOptions{}).Dashes())
}

func TestDrawSurfaceOptions(t *testing.T) {
	tests := []struct {
		filter   Filter
		bounds   bool
		expected uint32
	}{
		{FilterLinear, false, 0},
		{FilterPoint, false, 1},
		{FilterLinear, true, 8},
		{FilterPoint, true, 9},
	}
	for _, tt := range tests {
		o := NewDrawSurfaceOptions(tt.filter, tt.bounds)
		assert.Equal(t, tt.expected, o.Fields)
		assert.Equal(t, tt.filter, o.Filter())
		assert.Equal(t, tt.bounds, o.SamplingBounds())
	}
}

func TestGlyphBuffer(t *testing.T) {
	glyphs := []Glyph{{Index: 1}, {Index: 2, Position: Point{X: 3}}}
	buf := NewGlyphBuffer(glyphs)
	assert.Equal(t, uint32(2), buf.NumGlyphs)
	assert.Equal(t, glyphs, buf.Slice())

	empty := NewGlyphBuffer(nil)
	assert.Nil(t, empty.Slice())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Multiply", OpMultiply.String())
	assert.Equal(t, "Luminosity", OpLuminosity.String())
	assert.Equal(t, "Unknown", OpCount.String())
	assert.Equal(t, "Skia", BackendSkia.String())
	assert.Equal(t, "Unknown", BackendType(-1).String())
	assert.Equal(t, "MiterOrBevel", JoinMiterOrBevel.String())
	assert.Equal(t, "Square", CapSquare.String())
	assert.Equal(t, "Point", FilterPoint.String())
	assert.Equal(t, "Snap", Snap.String())
	assert.Equal(t, "Subpixel", AntialiasSubpixel.String())
}

func TestSurfaceFormatBytesPerPixel(t *testing.T) {
	assert.Equal(t, 4, FormatB8G8R8A8.BytesPerPixel())
	assert.Equal(t, 4, FormatB8G8R8X8.BytesPerPixel())
	assert.Equal(t, 2, FormatR5G6B5.BytesPerPixel())
	assert.Equal(t, 1, FormatA8.BytesPerPixel())
	assert.Equal(t, 0, SurfaceFormat(9).BytesPerPixel())
}

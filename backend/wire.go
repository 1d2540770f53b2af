package backend

import "unsafe"

// Point is the wire form of AzPoint.
type Point struct {
	X, Y float32
}

// Size is the wire form of AzSize.
type Size struct {
	Width, Height float32
}

// IntSize is the wire form of AzIntSize.
type IntSize struct {
	Width, Height int32
}

// Rect is the wire form of AzRect.
type Rect struct {
	X, Y, Width, Height float32
}

// Color is the wire form of AzColor. Components are straight (not
// premultiplied) and in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// Matrix is the wire form of AzMatrix, a 2x3 affine transform in row-vector
// convention:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
type Matrix struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{M11: 1, M22: 1}
}

// StrokeOptions is the wire form of AzStrokeOptions.
//
// Fields packs the cap style in the high nibble and the join style in the
// low nibble.
type StrokeOptions struct {
	LineWidth   float32
	MiterLimit  float32
	DashPattern *float32
	DashLength  uintptr
	DashOffset  float32
	Fields      uint8
}

// Dashes returns the dash pattern as a slice aliasing DashPattern.
func (o *StrokeOptions) Dashes() []float32 {
	if o.DashPattern == nil || o.DashLength == 0 {
		return nil
	}
	return unsafe.Slice(o.DashPattern, o.DashLength)
}

// JoinStyle decodes the join style nibble.
func (o *StrokeOptions) JoinStyle() JoinStyle {
	return JoinStyle(o.Fields & 0x0F)
}

// CapStyle decodes the cap style nibble.
func (o *StrokeOptions) CapStyle() CapStyle {
	return CapStyle(o.Fields >> 4)
}

// DrawOptions is the wire form of AzDrawOptions.
//
// Fields layout: bits 0-7 composition op, bits 8-10 antialias mode,
// bit 11 snapping.
type DrawOptions struct {
	Alpha  float32
	Fields uint16
}

// DefaultDrawOptions returns the options a library applies when it is
// handed a nil *DrawOptions.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{Alpha: 1, Fields: uint16(AntialiasDefault) << 8}
}

// CompositionOp decodes the composition op byte.
func (o *DrawOptions) CompositionOp() CompositionOp {
	return CompositionOp(o.Fields & 0xFF)
}

// AntialiasMode decodes the three antialias bits.
func (o *DrawOptions) AntialiasMode() AntialiasMode {
	return AntialiasMode((o.Fields >> 8) & 0x7)
}

// Snapping decodes the snapping bit.
func (o *DrawOptions) Snapping() Snapping {
	return Snapping((o.Fields >> 11) & 0x1)
}

// DrawSurfaceOptions is the wire form of AzDrawSurfaceOptions.
//
// Fields holds the filter in the low bits and samplingBoundsFlag when the
// source rectangle bounds sampling.
type DrawSurfaceOptions struct {
	Fields uint32
}

const samplingBoundsFlag = 8

// NewDrawSurfaceOptions packs a filter and the sampling-bounds flag.
func NewDrawSurfaceOptions(filter Filter, samplingBounds bool) DrawSurfaceOptions {
	fields := uint32(filter)
	if samplingBounds {
		fields |= samplingBoundsFlag
	}
	return DrawSurfaceOptions{Fields: fields}
}

// Filter decodes the sampling filter.
func (o *DrawSurfaceOptions) Filter() Filter {
	return Filter(o.Fields & (samplingBoundsFlag - 1))
}

// SamplingBounds reports whether sampling is bounded by the source rect.
func (o *DrawSurfaceOptions) SamplingBounds() bool {
	return o.Fields&samplingBoundsFlag != 0
}

// Glyph is the wire form of AzGlyph.
type Glyph struct {
	Index    uint32
	Position Point
}

// GlyphBuffer is the wire form of AzGlyphBuffer.
type GlyphBuffer struct {
	Glyphs    *Glyph
	NumGlyphs uint32
}

// NewGlyphBuffer returns a buffer aliasing glyphs.
func NewGlyphBuffer(glyphs []Glyph) GlyphBuffer {
	if len(glyphs) == 0 {
		return GlyphBuffer{}
	}
	return GlyphBuffer{Glyphs: &glyphs[0], NumGlyphs: uint32(len(glyphs))}
}

// Slice returns the glyphs as a slice aliasing the buffer.
func (b *GlyphBuffer) Slice() []Glyph {
	if b.Glyphs == nil || b.NumGlyphs == 0 {
		return nil
	}
	return unsafe.Slice(b.Glyphs, b.NumGlyphs)
}

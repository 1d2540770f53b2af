package azure

import "github.com/gogpu/azure/backend"

// Enumerations shared with the library call contract.
type (
	CompositionOp = backend.CompositionOp
	AntialiasMode = backend.AntialiasMode
	Snapping      = backend.Snapping
	JoinStyle     = backend.JoinStyle
	CapStyle      = backend.CapStyle
	Filter        = backend.Filter
)

// Composition ops.
const (
	OverOp       = backend.OpOver
	AddOp        = backend.OpAdd
	AtopOp       = backend.OpAtop
	OutOp        = backend.OpOut
	InOp         = backend.OpIn
	SourceOp     = backend.OpSource
	DestInOp     = backend.OpDestIn
	DestOutOp    = backend.OpDestOut
	DestOverOp   = backend.OpDestOver
	DestAtopOp   = backend.OpDestAtop
	XorOp        = backend.OpXor
	MultiplyOp   = backend.OpMultiply
	ScreenOp     = backend.OpScreen
	OverlayOp    = backend.OpOverlay
	DarkenOp     = backend.OpDarken
	LightenOp    = backend.OpLighten
	ColorDodgeOp = backend.OpColorDodge
	ColorBurnOp  = backend.OpColorBurn
	HardLightOp  = backend.OpHardLight
	SoftLightOp  = backend.OpSoftLight
	DifferenceOp = backend.OpDifference
	ExclusionOp  = backend.OpExclusion
	HueOp        = backend.OpHue
	SaturationOp = backend.OpSaturation
	ColorOp      = backend.OpColor
	LuminosityOp = backend.OpLuminosity
)

// Antialias modes.
const (
	AntialiasNone     = backend.AntialiasNone
	AntialiasGray     = backend.AntialiasGray
	AntialiasSubpixel = backend.AntialiasSubpixel
	AntialiasDefault  = backend.AntialiasDefault
)

// Snapping values.
const (
	NoSnap = backend.NoSnap
	Snap   = backend.Snap
)

// Join styles.
const (
	JoinBevel        = backend.JoinBevel
	JoinRound        = backend.JoinRound
	JoinMiter        = backend.JoinMiter
	JoinMiterOrBevel = backend.JoinMiterOrBevel
)

// Cap styles.
const (
	CapButt   = backend.CapButt
	CapRound  = backend.CapRound
	CapSquare = backend.CapSquare
)

// Sampling filters.
const (
	FilterLinear = backend.FilterLinear
	FilterPoint  = backend.FilterPoint
)

// Field masks of the packed option words.
const (
	joinStyleMask     uint8  = 0xF0
	capStyleMask      uint8  = 0x0F
	compositionOpMask uint16 = 0xFF00
	antialiasMask     uint16 = 0b1111_1000_1111_1111
	snappingMask      uint16 = 0b1111_0111_1111_1111
)

// StrokeOptions describes how a path outline is stroked.
//
// The join and cap styles share one byte: cap in the high nibble, join in
// the low nibble.
type StrokeOptions struct {
	LineWidth   float32
	MiterLimit  float32
	DashPattern []float32
	DashOffset  float32

	fields uint8
}

// NewStrokeOptions returns stroke options with the given parameters.
func NewStrokeOptions(lineWidth float32, join JoinStyle, capStyle CapStyle, miterLimit float32, dashPattern []float32) StrokeOptions {
	o := StrokeOptions{
		LineWidth:   lineWidth,
		MiterLimit:  miterLimit,
		DashPattern: dashPattern,
	}
	o.fields = uint8(capStyle&0xF)<<4 | uint8(join&0xF)
	return o
}

// DefaultStrokeOptions returns a 1 pixel solid stroke with butt caps and
// miter-or-bevel joins.
func DefaultStrokeOptions() StrokeOptions {
	return NewStrokeOptions(1, JoinMiterOrBevel, CapButt, 10, nil)
}

// SetJoinStyle replaces the join style and keeps the cap style.
func (o *StrokeOptions) SetJoinStyle(join JoinStyle) {
	o.fields = o.fields&joinStyleMask | uint8(join&0xF)
}

// SetCapStyle replaces the cap style and keeps the join style.
func (o *StrokeOptions) SetCapStyle(capStyle CapStyle) {
	o.fields = o.fields&capStyleMask | uint8(capStyle&0xF)<<4
}

// JoinStyle returns the join style.
func (o StrokeOptions) JoinStyle() JoinStyle { return JoinStyle(o.fields & 0x0F) }

// CapStyle returns the cap style.
func (o StrokeOptions) CapStyle() CapStyle { return CapStyle(o.fields >> 4) }

// Fields returns the packed cap and join byte.
func (o StrokeOptions) Fields() uint8 { return o.fields }

// wire returns the library form. The dash pointer aliases DashPattern.
func (o StrokeOptions) wire() backend.StrokeOptions {
	w := backend.StrokeOptions{
		LineWidth:  o.LineWidth,
		MiterLimit: o.MiterLimit,
		DashOffset: o.DashOffset,
		Fields:     o.fields,
	}
	if len(o.DashPattern) > 0 {
		w.DashPattern = &o.DashPattern[0]
		w.DashLength = uintptr(len(o.DashPattern))
	}
	return w
}

// DrawOptions carries the alpha and packed blending fields of a drawing
// call: composition op in bits 0-7, antialias mode in bits 8-10 and
// snapping in bit 11.
type DrawOptions struct {
	Alpha float32

	fields uint16
}

// NewDrawOptions returns options for the given alpha, op and antialias
// mode, without snapping.
func NewDrawOptions(alpha float32, op CompositionOp, aa AntialiasMode) DrawOptions {
	o := DrawOptions{Alpha: alpha}
	o.SetCompositionOp(op)
	o.SetAntialiasMode(aa)
	return o
}

// DefaultDrawOptions returns opaque Over drawing with default antialiasing.
func DefaultDrawOptions() DrawOptions {
	return NewDrawOptions(1, OverOp, AntialiasDefault)
}

// SetCompositionOp replaces the composition op.
func (o *DrawOptions) SetCompositionOp(op CompositionOp) {
	o.fields = o.fields&compositionOpMask | uint16(op)
}

// SetAntialiasMode replaces the antialias mode. Only its low three bits
// are stored.
func (o *DrawOptions) SetAntialiasMode(mode AntialiasMode) {
	o.fields = o.fields&antialiasMask | uint16(mode&7)<<8
}

// SetSnapping replaces the snapping bit.
func (o *DrawOptions) SetSnapping(s Snapping) {
	o.fields = o.fields&snappingMask | uint16(s&1)<<11
}

// CompositionOp returns the composition op.
func (o DrawOptions) CompositionOp() CompositionOp { return CompositionOp(o.fields & 0xFF) }

// AntialiasMode returns the antialias mode.
func (o DrawOptions) AntialiasMode() AntialiasMode { return AntialiasMode(o.fields >> 8 & 7) }

// Snapping returns the snapping bit.
func (o DrawOptions) Snapping() Snapping { return Snapping(o.fields >> 11 & 1) }

// Fields returns the packed 16-bit word.
func (o DrawOptions) Fields() uint16 { return o.fields }

func (o DrawOptions) wire() backend.DrawOptions {
	return backend.DrawOptions{Alpha: o.Alpha, Fields: o.fields}
}

// DrawSurfaceOptions selects how DrawSurface samples its source.
type DrawSurfaceOptions struct {
	Filter Filter
	// SamplingBounds limits sampling to the source rectangle.
	SamplingBounds bool
}

// Fields returns the packed 32-bit word.
func (o DrawSurfaceOptions) Fields() uint32 {
	w := o.wire()
	return w.Fields
}

func (o DrawSurfaceOptions) wire() backend.DrawSurfaceOptions {
	return backend.NewDrawSurfaceOptions(o.Filter, o.SamplingBounds)
}

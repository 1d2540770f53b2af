package backend

// BackendType is the AzBackendType code selecting the native rasterizer.
type BackendType int32

const (
	BackendNone BackendType = iota
	BackendDirect2D
	BackendCoreGraphics
	BackendCoreGraphicsAccelerated
	BackendCairo
	BackendSkia
	BackendRecording
)

var backendTypeNames = [...]string{
	BackendNone:                    "None",
	BackendDirect2D:                "Direct2D",
	BackendCoreGraphics:            "CoreGraphics",
	BackendCoreGraphicsAccelerated: "CoreGraphicsAccelerated",
	BackendCairo:                   "Cairo",
	BackendSkia:                    "Skia",
	BackendRecording:               "Recording",
}

// String returns the string representation of a BackendType.
func (t BackendType) String() string {
	if t >= 0 && int(t) < len(backendTypeNames) {
		return backendTypeNames[t]
	}
	return "Unknown"
}

// SurfaceFormat is the AzSurfaceFormat code. Libraries only ever return
// the four codes below.
type SurfaceFormat int32

const (
	FormatB8G8R8A8 SurfaceFormat = iota
	FormatB8G8R8X8
	FormatR5G6B5
	FormatA8
)

var surfaceFormatNames = [...]string{
	FormatB8G8R8A8: "B8G8R8A8",
	FormatB8G8R8X8: "B8G8R8X8",
	FormatR5G6B5:   "R5G6B5",
	FormatA8:       "A8",
}

// String returns the string representation of a SurfaceFormat.
func (f SurfaceFormat) String() string {
	if f >= 0 && int(f) < len(surfaceFormatNames) {
		return surfaceFormatNames[f]
	}
	return "Unknown"
}

// BytesPerPixel returns the storage size of one pixel, or 0 for an
// unknown code.
func (f SurfaceFormat) BytesPerPixel() int {
	switch f {
	case FormatB8G8R8A8, FormatB8G8R8X8:
		return 4
	case FormatR5G6B5:
		return 2
	case FormatA8:
		return 1
	default:
		return 0
	}
}

// CompositionOp is the pixel-blending rule, stored in the low byte of
// DrawOptions.Fields.
type CompositionOp uint8

const (
	OpOver CompositionOp = iota
	OpAdd
	OpAtop
	OpOut
	OpIn
	OpSource
	OpDestIn
	OpDestOut
	OpDestOver
	OpDestAtop
	OpXor
	OpMultiply
	OpScreen
	OpOverlay
	OpDarken
	OpLighten
	OpColorDodge
	OpColorBurn
	OpHardLight
	OpSoftLight
	OpDifference
	OpExclusion
	OpHue
	OpSaturation
	OpColor
	OpLuminosity

	// OpCount is the number of composition ops.
	OpCount
)

var compositionOpNames = [...]string{
	OpOver:       "Over",
	OpAdd:        "Add",
	OpAtop:       "Atop",
	OpOut:        "Out",
	OpIn:         "In",
	OpSource:     "Source",
	OpDestIn:     "DestIn",
	OpDestOut:    "DestOut",
	OpDestOver:   "DestOver",
	OpDestAtop:   "DestAtop",
	OpXor:        "Xor",
	OpMultiply:   "Multiply",
	OpScreen:     "Screen",
	OpOverlay:    "Overlay",
	OpDarken:     "Darken",
	OpLighten:    "Lighten",
	OpColorDodge: "ColorDodge",
	OpColorBurn:  "ColorBurn",
	OpHardLight:  "HardLight",
	OpSoftLight:  "SoftLight",
	OpDifference: "Difference",
	OpExclusion:  "Exclusion",
	OpHue:        "Hue",
	OpSaturation: "Saturation",
	OpColor:      "Color",
	OpLuminosity: "Luminosity",
}

// String returns the string representation of a CompositionOp.
func (op CompositionOp) String() string {
	if int(op) < len(compositionOpNames) {
		return compositionOpNames[op]
	}
	return "Unknown"
}

// AntialiasMode occupies three bits of DrawOptions.Fields.
type AntialiasMode uint8

const (
	AntialiasNone AntialiasMode = iota
	AntialiasGray
	AntialiasSubpixel
	AntialiasDefault
)

var antialiasModeNames = [...]string{
	AntialiasNone:     "None",
	AntialiasGray:     "Gray",
	AntialiasSubpixel: "Subpixel",
	AntialiasDefault:  "Default",
}

// String returns the string representation of an AntialiasMode.
func (m AntialiasMode) String() string {
	if int(m) < len(antialiasModeNames) {
		return antialiasModeNames[m]
	}
	return "Unknown"
}

// Snapping occupies one bit of DrawOptions.Fields.
type Snapping uint8

const (
	NoSnap Snapping = iota
	Snap
)

// String returns the string representation of a Snapping value.
func (s Snapping) String() string {
	switch s {
	case NoSnap:
		return "NoSnap"
	case Snap:
		return "Snap"
	default:
		return "Unknown"
	}
}

// JoinStyle is the low nibble of StrokeOptions.Fields.
type JoinStyle uint8

const (
	JoinBevel JoinStyle = iota
	JoinRound
	JoinMiter
	JoinMiterOrBevel
)

var joinStyleNames = [...]string{
	JoinBevel:        "Bevel",
	JoinRound:        "Round",
	JoinMiter:        "Miter",
	JoinMiterOrBevel: "MiterOrBevel",
}

// String returns the string representation of a JoinStyle.
func (j JoinStyle) String() string {
	if int(j) < len(joinStyleNames) {
		return joinStyleNames[j]
	}
	return "Unknown"
}

// CapStyle is the high nibble of StrokeOptions.Fields.
type CapStyle uint8

const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

var capStyleNames = [...]string{
	CapButt:   "Butt",
	CapRound:  "Round",
	CapSquare: "Square",
}

// String returns the string representation of a CapStyle.
func (c CapStyle) String() string {
	if int(c) < len(capStyleNames) {
		return capStyleNames[c]
	}
	return "Unknown"
}

// Filter selects surface sampling.
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterPoint
)

// String returns the string representation of a Filter.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterPoint:
		return "Point"
	default:
		return "Unknown"
	}
}

package azure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawOptionsFieldIsolation(t *testing.T) {
	var o DrawOptions
	o.SetCompositionOp(MultiplyOp)
	o.SetAntialiasMode(AntialiasMode(5))
	o.SetSnapping(Snap)

	assert.Equal(t, uint16(MultiplyOp)|5<<8|1<<11, o.Fields())
	assert.Equal(t, MultiplyOp, o.CompositionOp())
	assert.Equal(t, AntialiasMode(5), o.AntialiasMode())
	assert.Equal(t, Snap, o.Snapping())
}

func TestDrawOptionsSettersReplace(t *testing.T) {
	o := NewDrawOptions(0.5, ScreenOp, AntialiasGray)
	o.SetSnapping(Snap)

	o.SetCompositionOp(XorOp)
	o.SetAntialiasMode(AntialiasNone)
	o.SetSnapping(NoSnap)

	assert.Equal(t, uint16(XorOp), o.Fields())
	assert.Equal(t, float32(0.5), o.Alpha)
}

func TestDrawOptionsMasksOutOfRange(t *testing.T) {
	var o DrawOptions
	o.SetAntialiasMode(AntialiasMode(0xFF))
	o.SetSnapping(Snapping(0xFF))
	assert.Equal(t, uint16(7<<8|1<<11), o.Fields())
}

func TestDefaultDrawOptions(t *testing.T) {
	o := DefaultDrawOptions()
	assert.Equal(t, float32(1), o.Alpha)
	assert.Equal(t, OverOp, o.CompositionOp())
	assert.Equal(t, AntialiasDefault, o.AntialiasMode())
	assert.Equal(t, NoSnap, o.Snapping())
}

func TestStrokeOptionsFields(t *testing.T) {
	o := DefaultStrokeOptions()
	assert.Equal(t, uint8(CapButt)<<4|uint8(JoinMiterOrBevel), o.Fields())

	o.SetCapStyle(CapSquare)
	assert.Equal(t, JoinMiterOrBevel, o.JoinStyle())
	assert.Equal(t, CapSquare, o.CapStyle())

	o.SetJoinStyle(JoinRound)
	assert.Equal(t, JoinRound, o.JoinStyle())
	assert.Equal(t, CapSquare, o.CapStyle())
	assert.Equal(t, uint8(CapSquare)<<4|uint8(JoinRound), o.Fields())
}

func TestStrokeOptionsWire(t *testing.T) {
	dashes := []float32{4, 2}
	o := NewStrokeOptions(3, JoinBevel, CapRound, 4, dashes)
	o.DashOffset = 1

	w := o.wire()
	assert.Equal(t, float32(3), w.LineWidth)
	assert.Equal(t, float32(4), w.MiterLimit)
	assert.Equal(t, float32(1), w.DashOffset)
	assert.Equal(t, dashes, w.Dashes())
	assert.Equal(t, JoinBevel, w.JoinStyle())
	assert.Equal(t, CapRound, w.CapStyle())
	assert.Same(t, &dashes[0], w.DashPattern, "the wire form aliases the caller's dashes")

	assert.Nil(t, DefaultStrokeOptions().wire().DashPattern)
	assert.Zero(t, NewStrokeOptions(2, JoinRound, CapSquare, 4, []float32{}).wire().DashLength)
}

func TestDrawSurfaceOptionsFields(t *testing.T) {
	tests := []struct {
		opts DrawSurfaceOptions
		want uint32
	}{
		{DrawSurfaceOptions{Filter: FilterLinear}, 0},
		{DrawSurfaceOptions{Filter: FilterPoint}, 1},
		{DrawSurfaceOptions{Filter: FilterLinear, SamplingBounds: true}, 8},
		{DrawSurfaceOptions{Filter: FilterPoint, SamplingBounds: true}, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.opts.Fields(), "%+v", tt.opts)
	}
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, CompositionOp(0), OverOp)
	assert.Equal(t, CompositionOp(11), MultiplyOp)
	assert.Equal(t, CompositionOp(25), LuminosityOp)
	assert.Equal(t, BackendType(5), SkiaBackend)
	assert.Equal(t, BackendType(6), RecordingBackend)
	assert.Equal(t, "Multiply", MultiplyOp.String())
	assert.Equal(t, "Skia", SkiaBackend.String())
}

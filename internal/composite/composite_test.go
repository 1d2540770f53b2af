package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/azure/backend"
)

type px [4]byte

func blend(op backend.CompositionOp, s, d px) px {
	r, g, b, a := For(op)(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
	return px{r, g, b, a}
}

func TestOperators(t *testing.T) {
	red := px{255, 0, 0, 255}
	blue := px{0, 0, 255, 255}
	halfRed := px{128, 0, 0, 128}
	clear := px{}

	tests := []struct {
		name string
		op   backend.CompositionOp
		src  px
		dst  px
		want px
	}{
		{"over opaque", backend.OpOver, red, blue, red},
		{"over half", backend.OpOver, halfRed, blue, px{128, 0, 127, 255}},
		{"over transparent", backend.OpOver, clear, blue, blue},
		{"add clamps", backend.OpAdd, px{200, 0, 0, 200}, px{100, 0, 0, 100}, px{255, 0, 0, 255}},
		{"atop keeps dest alpha", backend.OpAtop, red, px{0, 0, 128, 128}, px{128, 0, 0, 128}},
		{"out over empty", backend.OpOut, red, clear, red},
		{"out over opaque", backend.OpOut, red, blue, clear},
		{"in over opaque", backend.OpIn, red, blue, red},
		{"in over empty", backend.OpIn, red, clear, clear},
		{"source replaces", backend.OpSource, halfRed, blue, halfRed},
		{"dest in", backend.OpDestIn, halfRed, blue, px{0, 0, 128, 128}},
		{"dest out opaque clears", backend.OpDestOut, red, blue, clear},
		{"dest over", backend.OpDestOver, red, blue, blue},
		{"dest atop", backend.OpDestAtop, red, blue, blue},
		{"xor opaque", backend.OpXor, red, blue, clear},
		{"multiply", backend.OpMultiply, px{255, 128, 0, 255}, px{128, 128, 128, 255}, px{128, 64, 0, 255}},
		{"screen black", backend.OpScreen, px{0, 0, 0, 255}, px{10, 20, 30, 255}, px{10, 20, 30, 255}},
		{"darken", backend.OpDarken, px{100, 200, 50, 255}, px{150, 150, 150, 255}, px{100, 150, 50, 255}},
		{"lighten", backend.OpLighten, px{100, 200, 50, 255}, px{150, 150, 150, 255}, px{150, 200, 150, 255}},
		{"difference equal", backend.OpDifference, px{90, 90, 90, 255}, px{90, 90, 90, 255}, px{0, 0, 0, 255}},
		{"exclusion white", backend.OpExclusion, px{255, 255, 255, 255}, px{0, 255, 0, 255}, px{255, 0, 255, 255}},
		{"hue of gray", backend.OpHue, px{200, 200, 200, 255}, px{100, 100, 100, 255}, px{100, 100, 100, 255}},
		{"luminosity", backend.OpLuminosity, px{200, 200, 200, 255}, px{50, 50, 50, 255}, px{200, 200, 200, 255}},
		{"color keeps gray backdrop lum", backend.OpColor, px{128, 128, 128, 255}, px{60, 60, 60, 255}, px{60, 60, 60, 255}},
		{"separable over empty dest", backend.OpMultiply, halfRed, clear, halfRed},
		{"separable with empty src", backend.OpOverlay, clear, blue, blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blend(tt.op, tt.src, tt.dst))
		})
	}
}

func TestEveryOpHasFunc(t *testing.T) {
	for op := backend.OpOver; op < backend.OpCount; op++ {
		assert.NotNil(t, funcs[op], op.String())
	}
	assert.NotNil(t, For(backend.OpCount))
}

func TestApplyBoundedByCoverage(t *testing.T) {
	dst := []byte{
		0, 0, 255, 255,
		0, 0, 255, 255,
		0, 0, 255, 255,
	}
	src := []byte{
		255, 0, 0, 255,
		128, 0, 0, 128,
		0, 0, 0, 0,
	}
	coverage := []byte{
		255, 255, 255, 255,
		128, 128, 128, 128,
		0, 0, 0, 0,
	}
	Apply(backend.OpSource, dst, src, coverage)

	assert.Equal(t, []byte{255, 0, 0, 255}, dst[0:4], "full coverage replaces")
	assert.Equal(t, []byte{128, 0, 127, 255}, dst[4:8], "half coverage mixes")
	assert.Equal(t, []byte{0, 0, 255, 255}, dst[8:12], "zero coverage untouched")
}

func TestMulDiv255Exact(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b += 17 {
			want := byte((a*b + 127) / 255)
			assert.Equal(t, want, mulDiv255(byte(a), byte(b)))
		}
	}
}

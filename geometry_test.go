package azure

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageAdapters(t *testing.T) {
	r := image.Rect(2, 3, 12, 8)
	assert.Equal(t, IntSize{Width: 10, Height: 5}, IntSizeFromImage(r))
	assert.Equal(t, Rect{X: 2, Y: 3, Width: 10, Height: 5}, RectFromImage(r))
	assert.Equal(t, r, RectFromImage(r).ImageRect())
}

func TestRectRoundOut(t *testing.T) {
	r := Rect{X: 0.5, Y: -0.25, Width: 2, Height: 1}
	assert.Equal(t, Rect{X: 0, Y: -1, Width: 3, Height: 2}, r.RoundOut())
	assert.Equal(t, image.Rect(0, -1, 3, 1), r.ImageRect())
}

func TestMatrixThenAndTransform(t *testing.T) {
	m := Scaling(2, 3).Then(Translation(10, 20))
	assert.Equal(t, Pt(12, 23), m.Transform(Pt(1, 1)))

	p := Rotation(math32.Pi / 2).Transform(Pt(1, 0))
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)
}

func TestMatrixInverse(t *testing.T) {
	m := Scaling(2, 4).Then(Translation(3, -5))
	inv, ok := m.Inverse()
	require.True(t, ok)

	p := inv.Transform(m.Transform(Pt(7, 11)))
	assert.InDelta(t, 7, p.X, 1e-5)
	assert.InDelta(t, 11, p.Y, 1e-5)

	_, ok = Scaling(0, 1).Inverse()
	assert.False(t, ok)
}

func TestMatrixWireLayout(t *testing.T) {
	m := Matrix2D{M11: 1, M12: 2, M21: 3, M22: 4, M31: 5, M32: 6}
	w := m.wire()
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, []float32{w.M11, w.M12, w.M21, w.M22, w.M31, w.M32})
}

func TestColorFromStd(t *testing.T) {
	c := ColorFromStd(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	assert.Equal(t, Color{R: 1, G: 0, B: 0.2, A: 1}, c)
	assert.Equal(t, Transparent, ColorFromStd(color.Transparent))
}

package pixfmt

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/azure/backend"
)

// Two pixels: opaque orange and half-transparent premultiplied blue.
var rgbaRow = []byte{
	255, 128, 0, 255,
	0, 0, 128, 128,
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format backend.SurfaceFormat
		stride int
		want   []byte
	}{
		{backend.FormatB8G8R8A8, 8, []byte{0, 128, 255, 255, 128, 0, 0, 128}},
		{backend.FormatB8G8R8X8, 8, []byte{0, 128, 255, 255, 128, 0, 0, 255}},
		{backend.FormatR5G6B5, 4, []byte{0x00, 0xFC, 0x10, 0x00}},
		{backend.FormatA8, 4, []byte{255, 128, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			dst := make([]byte, tt.stride)
			Encode(tt.format, dst, tt.stride, rgbaRow, 2, 1)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, format := range []backend.SurfaceFormat{backend.FormatB8G8R8A8, backend.FormatA8} {
		stride := 2*format.BytesPerPixel() + 3
		buf := make([]byte, stride)
		Encode(format, buf, stride, rgbaRow, 2, 1)

		got := make([]byte, 8)
		Decode(format, got, buf, stride, 2, 1)
		if format == backend.FormatA8 {
			assert.Equal(t, []byte{0, 0, 0, 255, 0, 0, 0, 128}, got)
		} else {
			assert.Equal(t, rgbaRow, got)
		}
	}
}

func TestDecodeR5G6B5(t *testing.T) {
	got := make([]byte, 4)
	Decode(backend.FormatR5G6B5, got, []byte{0xFF, 0xFF}, 2, 1, 1)
	assert.Equal(t, []byte{255, 255, 255, 255}, got)

	Decode(backend.FormatR5G6B5, got, []byte{0x00, 0xF8}, 2, 1, 1)
	assert.Equal(t, []byte{255, 0, 0, 255}, got)
}

func TestToNRGBA(t *testing.T) {
	buf := make([]byte, 8)
	Encode(backend.FormatB8G8R8A8, buf, 8, rgbaRow, 2, 1)

	img := ToNRGBA(backend.FormatB8G8R8A8, buf, 8, 2, 1)
	require.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 255, A: 128}, img.NRGBAAt(1, 0))
}

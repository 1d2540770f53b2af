// Package pixfmt converts between premultiplied RGBA pixel rows and the
// surface formats of the draw-target API.
//
// Premultiplied RGBA rows are 4 bytes per pixel with stride width*4. The
// surface formats are stored with an explicit stride:
//
//	B8G8R8A8  premultiplied B, G, R, A
//	B8G8R8X8  B, G, R, unused byte written as 0xFF
//	R5G6B5    little-endian uint16, red in the high bits
//	A8        alpha only
package pixfmt

import (
	"encoding/binary"
	"image"

	"github.com/gogpu/azure/backend"
)

// Encode writes w*h premultiplied RGBA pixels from src into dst.
func Encode(format backend.SurfaceFormat, dst []byte, dstStride int, src []byte, w, h int) {
	bpp := format.BytesPerPixel()
	for y := 0; y < h; y++ {
		s := src[y*w*4 : (y+1)*w*4]
		d := dst[y*dstStride : y*dstStride+w*bpp]
		switch format {
		case backend.FormatB8G8R8A8:
			for x := 0; x < w; x++ {
				d[x*4], d[x*4+1], d[x*4+2], d[x*4+3] = s[x*4+2], s[x*4+1], s[x*4], s[x*4+3]
			}
		case backend.FormatB8G8R8X8:
			for x := 0; x < w; x++ {
				d[x*4], d[x*4+1], d[x*4+2], d[x*4+3] = s[x*4+2], s[x*4+1], s[x*4], 0xFF
			}
		case backend.FormatR5G6B5:
			for x := 0; x < w; x++ {
				binary.LittleEndian.PutUint16(d[x*2:], pack565(s[x*4], s[x*4+1], s[x*4+2]))
			}
		case backend.FormatA8:
			for x := 0; x < w; x++ {
				d[x] = s[x*4+3]
			}
		}
	}
}

// Decode reads w*h pixels of format from src into premultiplied RGBA dst.
func Decode(format backend.SurfaceFormat, dst []byte, src []byte, srcStride int, w, h int) {
	bpp := format.BytesPerPixel()
	for y := 0; y < h; y++ {
		s := src[y*srcStride : y*srcStride+w*bpp]
		d := dst[y*w*4 : (y+1)*w*4]
		switch format {
		case backend.FormatB8G8R8A8:
			for x := 0; x < w; x++ {
				d[x*4], d[x*4+1], d[x*4+2], d[x*4+3] = s[x*4+2], s[x*4+1], s[x*4], s[x*4+3]
			}
		case backend.FormatB8G8R8X8:
			for x := 0; x < w; x++ {
				d[x*4], d[x*4+1], d[x*4+2], d[x*4+3] = s[x*4+2], s[x*4+1], s[x*4], 0xFF
			}
		case backend.FormatR5G6B5:
			for x := 0; x < w; x++ {
				r, g, b := unpack565(binary.LittleEndian.Uint16(s[x*2:]))
				d[x*4], d[x*4+1], d[x*4+2], d[x*4+3] = r, g, b, 0xFF
			}
		case backend.FormatA8:
			for x := 0; x < w; x++ {
				d[x*4], d[x*4+1], d[x*4+2], d[x*4+3] = 0, 0, 0, s[x]
			}
		}
	}
}

// ToNRGBA decodes a surface into a straight-alpha image.
func ToNRGBA(format backend.SurfaceFormat, src []byte, stride, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Decode(format, img.Pix, src, stride, w, h)
	Unpremultiply(img.Pix)
	return img
}

// Unpremultiply converts premultiplied RGBA pixels to straight alpha in place.
func Unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			v := (uint32(pix[i+c])*255 + a/2) / a
			if v > 255 {
				v = 255
			}
			pix[i+c] = byte(v)
		}
	}
}

func pack565(r, g, b byte) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func unpack565(v uint16) (r, g, b byte) {
	r5 := byte(v >> 11 & 0x1F)
	g6 := byte(v >> 5 & 0x3F)
	b5 := byte(v & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

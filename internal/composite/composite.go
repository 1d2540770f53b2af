// Package composite implements the composition operators of DrawOptions on
// premultiplied RGBA pixels.
//
// Porter-Duff operators follow "Compositing Digital Images" (1984); the
// separable and non-separable blend modes follow W3C Compositing and
// Blending Level 1. All values are premultiplied alpha in the range 0-255.
package composite

import "github.com/gogpu/azure/backend"

// Func blends one premultiplied source pixel onto one premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [backend.OpCount]Func{
	backend.OpOver:       over,
	backend.OpAdd:        add,
	backend.OpAtop:       atop,
	backend.OpOut:        out,
	backend.OpIn:         in,
	backend.OpSource:     source,
	backend.OpDestIn:     destIn,
	backend.OpDestOut:    destOut,
	backend.OpDestOver:   destOver,
	backend.OpDestAtop:   destAtop,
	backend.OpXor:        xor,
	backend.OpMultiply:   multiply,
	backend.OpScreen:     screen,
	backend.OpOverlay:    overlay,
	backend.OpDarken:     darken,
	backend.OpLighten:    lighten,
	backend.OpColorDodge: colorDodge,
	backend.OpColorBurn:  colorBurn,
	backend.OpHardLight:  hardLight,
	backend.OpSoftLight:  softLight,
	backend.OpDifference: difference,
	backend.OpExclusion:  exclusion,
	backend.OpHue:        hue,
	backend.OpSaturation: saturation,
	backend.OpColor:      color,
	backend.OpLuminosity: luminosity,
}

// For returns the blend function for op. Unknown ops fall back to Over.
func For(op backend.CompositionOp) Func {
	if op < backend.OpCount {
		return funcs[op]
	}
	return over
}

// Apply composites src onto dst with op, bounded by coverage.
//
// All three slices hold premultiplied RGBA pixels of the same size. src is
// the drawing already scaled by its coverage; coverage holds the shape's
// antialiased coverage in its alpha channel. Pixels with zero coverage are
// left untouched, so operators such as Source or In only affect the area
// the shape covers.
func Apply(op backend.CompositionOp, dst, src, coverage []byte) {
	f := For(op)
	n := min(len(dst), len(src), len(coverage))
	for i := 0; i+3 < n; i += 4 {
		m := coverage[i+3]
		if m == 0 {
			continue
		}
		sr, sg, sb, sa := src[i], src[i+1], src[i+2], src[i+3]
		if m < 255 {
			sr, sg, sb, sa = unscale(sr, m), unscale(sg, m), unscale(sb, m), unscale(sa, m)
		}
		dr, dg, db, da := dst[i], dst[i+1], dst[i+2], dst[i+3]
		r, g, b, a := f(sr, sg, sb, sa, dr, dg, db, da)
		if m < 255 {
			r, g, b, a = lerp(dr, r, m), lerp(dg, g, m), lerp(db, b, m), lerp(da, a, m)
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}

// Porter-Duff operators.

// over: S + D*(1-Sa)
func over(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// add: min(S + D, 1)
func add(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// atop: S*Da + D*(1-Sa)
func atop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, inv)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, inv)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, inv)),
		da
}

// out: S*(1-Da)
func out(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return mulDiv255(sr, inv), mulDiv255(sg, inv), mulDiv255(sb, inv), mulDiv255(sa, inv)
}

// in: S*Da
func in(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// destIn: D*Sa
func destIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// destOut: D*(1-Sa)
func destOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return mulDiv255(dr, inv), mulDiv255(dg, inv), mulDiv255(db, inv), mulDiv255(da, inv)
}

// destOver: S*(1-Da) + D
func destOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return addClamp(mulDiv255(sr, inv), dr),
		addClamp(mulDiv255(sg, inv), dg),
		addClamp(mulDiv255(sb, inv), db),
		addClamp(mulDiv255(sa, inv), da)
}

// destAtop: S*(1-Da) + D*Sa
func destAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return addClamp(mulDiv255(sr, inv), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, inv), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, inv), mulDiv255(db, sa)),
		sa
}

// xor: S*(1-Da) + D*(1-Sa)
func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

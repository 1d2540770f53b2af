package composite

import "github.com/chewxy/math32"

// Non-separable blend modes operate on the whole RGB triplet.

type rgb struct{ r, g, b float32 }

// lum uses the BT.601 weights: 0.30*r + 0.59*g + 0.11*b.
func lum(c rgb) float32 {
	return 0.30*c.r + 0.59*c.g + 0.11*c.b
}

func sat(c rgb) float32 {
	return math32.Max(c.r, math32.Max(c.g, c.b)) - math32.Min(c.r, math32.Min(c.g, c.b))
}

// clipColor pulls out-of-range components towards the luminance.
func clipColor(c rgb) rgb {
	l := lum(c)
	n := math32.Min(c.r, math32.Min(c.g, c.b))
	x := math32.Max(c.r, math32.Max(c.g, c.b))
	if n < 0 {
		c = rgb{l + (c.r-l)*l/(l-n), l + (c.g-l)*l/(l-n), l + (c.b-l)*l/(l-n)}
	}
	if x > 1 {
		c = rgb{l + (c.r-l)*(1-l)/(x-l), l + (c.g-l)*(1-l)/(x-l), l + (c.b-l)*(1-l)/(x-l)}
	}
	return c
}

func setLum(c rgb, l float32) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

func setSat(c rgb, s float32) rgb {
	ch := [3]*float32{&c.r, &c.g, &c.b}
	// order ch as min, mid, max
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	if *ch[1] > *ch[2] {
		ch[1], ch[2] = ch[2], ch[1]
	}
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	lo, mid, hi := *ch[0], *ch[1], *ch[2]
	if hi > lo {
		*ch[1] = (mid - lo) * s / (hi - lo)
		*ch[2] = s
	} else {
		*ch[1], *ch[2] = 0, 0
	}
	*ch[0] = 0
	return c
}

// nonSeparable composes B(Cs, Cb) with the same formula as separable.
func nonSeparable(sr, sg, sb, sa, dr, dg, db, da byte, blend func(cs, cb rgb) rgb) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	fsa, fda := norm(sa), norm(da)
	cs := rgb{norm(unpremul(sr, sa)), norm(unpremul(sg, sa)), norm(unpremul(sb, sa))}
	cb := rgb{norm(unpremul(dr, da)), norm(unpremul(dg, da)), norm(unpremul(db, da))}
	bl := blend(cs, cb)
	compose := func(s, d byte, b float32) byte {
		return denorm((1-fsa)*norm(d) + (1-fda)*norm(s) + fsa*fda*b)
	}
	return compose(sr, dr, bl.r), compose(sg, dg, bl.g), compose(sb, db, bl.b), denorm(fsa + fda - fsa*fda)
}

func hue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb rgb) rgb {
		return setLum(setSat(cs, sat(cb)), lum(cb))
	})
}

func saturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb rgb) rgb {
		return setLum(setSat(cb, sat(cs)), lum(cb))
	})
}

func color(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb rgb) rgb {
		return setLum(cs, lum(cb))
	})
}

func luminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb rgb) rgb {
		return setLum(cb, lum(cs))
	})
}

package composite

import "github.com/chewxy/math32"

// separable applies a per-channel blend function B(Cs, Cb) on straight
// colors and composes the result:
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//	Ao = Sa + Da - Sa*Da
func separable(sr, sg, sb, sa, dr, dg, db, da byte, blend func(cs, cb float32) float32) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	fsa, fda := norm(sa), norm(da)
	channel := func(s, d byte) byte {
		fs, fd := norm(s), norm(d)
		cs := math32.Min(fs/fsa, 1)
		cb := math32.Min(fd/fda, 1)
		return denorm((1-fsa)*fd + (1-fda)*fs + fsa*fda*blend(cs, cb))
	}
	return channel(sr, dr), channel(sg, dg), channel(sb, db), denorm(fsa + fda - fsa*fda)
}

func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, multiplyChannel)
}

func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChannel)
}

// overlay is HardLight with the layers swapped.
func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb float32) float32 {
		return hardLightChannel(cb, cs)
	})
}

func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math32.Min)
}

func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math32.Max)
}

func colorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb float32) float32 {
		switch {
		case cb == 0:
			return 0
		case cs >= 1:
			return 1
		default:
			return math32.Min(1, cb/(1-cs))
		}
	})
}

func colorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb float32) float32 {
		switch {
		case cb >= 1:
			return 1
		case cs <= 0:
			return 0
		default:
			return 1 - math32.Min(1, (1-cb)/cs)
		}
	})
}

func hardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChannel)
}

func softLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb float32) float32 {
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float32
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math32.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	})
}

func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb float32) float32 {
		return math32.Abs(cs - cb)
	})
}

func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cs, cb float32) float32 {
		return cs + cb - 2*cs*cb
	})
}

func multiplyChannel(cs, cb float32) float32 { return cs * cb }

func screenChannel(cs, cb float32) float32 { return cs + cb - cs*cb }

func hardLightChannel(cs, cb float32) float32 {
	if cs <= 0.5 {
		return multiplyChannel(cb, 2*cs)
	}
	return screenChannel(cb, 2*cs-1)
}

func norm(v byte) float32 { return float32(v) / 255 }

func denorm(v float32) byte {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

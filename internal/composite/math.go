package composite

// mulDiv255 multiplies two bytes and divides by 255 exactly.
// Alvy Ray Smith: ((x + 128) + ((x + 128) >> 8)) >> 8
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unscale divides v by the coverage m (m > 0), clamping to 255.
func unscale(v, m byte) byte {
	x := (uint32(v)*255 + uint32(m)/2) / uint32(m)
	if x > 255 {
		return 255
	}
	return byte(x)
}

// lerp returns d + (r-d)*m/255.
func lerp(d, r, m byte) byte {
	return addClamp(mulDiv255(r, m), mulDiv255(d, 255-m))
}

// unpremul returns the straight value of a premultiplied channel.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	return unscale(c, a)
}

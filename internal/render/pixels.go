package render

import "image/color"

// fillRGBA paints every pixel of an RGBA buffer with c, doubling the filled
// prefix on each copy.
func fillRGBA(buf []byte, c color.RGBA) {
	if len(buf) < 4 {
		return
	}
	buf[0] = c.R
	buf[1] = c.G
	buf[2] = c.B
	buf[3] = c.A
	for filled := 4; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// rgbaAt reads the pixel at linear index i of an RGBA buffer.
func rgbaAt(buf []byte, i int) color.RGBA {
	base := i * 4
	return color.RGBA{R: buf[base+0], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

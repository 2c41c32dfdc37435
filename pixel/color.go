package pixel

import "image/color"

// RGB565Model converts colors to the packed 5-6-5 representation.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// RGB565Color is a 16-bit color with red in the high 5 bits.
type RGB565Color uint16

func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c >> 11 & 0x1f)
	r = (r<<3 | r>>2) * 0x101
	g = uint32(c >> 5 & 0x3f)
	g = (g<<2 | g>>4) * 0x101
	b = uint32(c & 0x1f)
	b = (b<<3 | b>>2) * 0x101
	return r, g, b, 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB565Color((r>>11)<<11 | (g>>10)<<5 | b>>11)
}

package pixel

// Format identifies the in-memory pixel layout of a surface.
type Format uint8

// Supported formats.
const (
	// Unknown for when detection is not (yet) implemented.
	Unknown Format = iota

	// RGB565 is a 16-bit little-endian format with red in the high 5 bits.
	RGB565

	// RGBA8888 stores one byte per channel in R, G, B, A order.
	RGBA8888

	// RGBX8888 is RGBA8888 with a don't-care fourth byte.
	RGBX8888

	// BGRA8888 stores one byte per channel in B, G, R, A order.
	BGRA8888
)

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB_565"
	case RGBA8888:
		return "RGBA_8888"
	case RGBX8888:
		return "RGBX_8888"
	case BGRA8888:
		return "BGRA_8888"
	default:
		return "unknown"
	}
}

// PixelBytes returns the storage size of one pixel, or 0 for Unknown.
func (f Format) PixelBytes() int {
	switch f {
	case RGB565:
		return 2
	case RGBA8888, RGBX8888, BGRA8888:
		return 4
	default:
		return 0
	}
}

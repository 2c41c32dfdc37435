package pixel

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// Surface describes a rectangular pixel buffer.
//
// The drawing surface returned by a backend owns its backing slice;
// device surfaces are views into memory owned elsewhere (typically a
// memory-mapped framebuffer arena) and must not outlive it.
type Surface struct {
	Width  int
	Height int

	// RowBytes is the stride in bytes between vertically adjacent
	// pixels. At least Width*PixelBytes.
	RowBytes int

	// PixelBytes is the storage size of one pixel.
	PixelBytes int

	Format Format

	// Pix holds the pixel bytes. Non-nil while the surface is live.
	Pix []byte
}

// NewSurface allocates a zeroed surface that owns its pixels.
func NewSurface(width, height, rowBytes, pixelBytes int, format Format) (*Surface, error) {
	if err := validateGeometry(width, height, rowBytes, pixelBytes); err != nil {
		return nil, err
	}
	return &Surface{
		Width:      width,
		Height:     height,
		RowBytes:   rowBytes,
		PixelBytes: pixelBytes,
		Format:     format,
		Pix:        make([]byte, height*rowBytes),
	}, nil
}

// NewSurfaceView wraps pix without copying. The view does not own pix
// and pix must hold at least height*rowBytes bytes.
func NewSurfaceView(pix []byte, width, height, rowBytes, pixelBytes int, format Format) (*Surface, error) {
	if err := validateGeometry(width, height, rowBytes, pixelBytes); err != nil {
		return nil, err
	}
	if len(pix) < height*rowBytes {
		return nil, fmt.Errorf("pixel: %d-byte slice cannot back a %dx%d surface with %d-byte rows",
			len(pix), width, height, rowBytes)
	}
	return &Surface{
		Width:      width,
		Height:     height,
		RowBytes:   rowBytes,
		PixelBytes: pixelBytes,
		Format:     format,
		Pix:        pix[:height*rowBytes],
	}, nil
}

func validateGeometry(width, height, rowBytes, pixelBytes int) error {
	if width <= 0 || height <= 0 || pixelBytes <= 0 || rowBytes < width*pixelBytes {
		return fmt.Errorf("pixel: invalid %dx%d surface geometry (%d-byte rows, %d-byte pixels)",
			width, height, rowBytes, pixelBytes)
	}
	return nil
}

// Size returns the length in bytes of the pixel data.
func (s *Surface) Size() int {
	return s.Height * s.RowBytes
}

// Clear zeroes the pixel data.
func (s *Surface) Clear() {
	clear(s.Pix[:s.Size()])
}

// CopyFrom copies the pixel bytes of src, which must have the same
// geometry.
func (s *Surface) CopyFrom(src *Surface) {
	copy(s.Pix[:s.Size()], src.Pix[:src.Size()])
}

// SwapRedBlue exchanges the first and third byte of every 4-byte pixel
// group in place, converting between RGBA and BGRA channel order. No-op
// for 2-byte formats.
func (s *Surface) SwapRedBlue() {
	if s.PixelBytes != 4 {
		return
	}
	pix := s.Pix[:s.Size()]
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

func (s *Surface) ColorModel() color.Model {
	if s.Format == RGB565 {
		return RGB565Model
	}
	return color.RGBAModel
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return y*s.RowBytes + x*s.PixelBytes
}

func (s *Surface) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(s.Bounds()) {
		return color.Transparent
	}
	i := s.PixOffset(x, y)
	switch s.Format {
	case RGB565:
		return RGB565Color(binary.LittleEndian.Uint16(s.Pix[i:]))
	case BGRA8888:
		return color.RGBA{R: s.Pix[i+2], G: s.Pix[i+1], B: s.Pix[i], A: s.Pix[i+3]}
	case RGBX8888:
		return color.RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: 0xff}
	default:
		return color.RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
	}
}

func (s *Surface) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(s.Bounds()) {
		return
	}
	i := s.PixOffset(x, y)
	if s.Format == RGB565 {
		v := rgb565Model(c).(RGB565Color)
		binary.LittleEndian.PutUint16(s.Pix[i:], uint16(v))
		return
	}
	r, g, b, a := c.RGBA()
	switch s.Format {
	case BGRA8888:
		s.Pix[i+0] = byte(b >> 8)
		s.Pix[i+1] = byte(g >> 8)
		s.Pix[i+2] = byte(r >> 8)
		s.Pix[i+3] = byte(a >> 8)
	case RGBX8888:
		s.Pix[i+0] = byte(r >> 8)
		s.Pix[i+1] = byte(g >> 8)
		s.Pix[i+2] = byte(b >> 8)
		s.Pix[i+3] = 0xff
	default:
		s.Pix[i+0] = byte(r >> 8)
		s.Pix[i+1] = byte(g >> 8)
		s.Pix[i+2] = byte(b >> 8)
		s.Pix[i+3] = byte(a >> 8)
	}
}

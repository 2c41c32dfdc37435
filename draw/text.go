package draw

import (
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LoadFontFace parses a TrueType font file and returns a face at the
// given point size.
func LoadFontFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// Text draws s with the baseline starting at p. A nil face uses the
// built-in 7x13 face.
func Text(dst Image, p image.Point, face font.Face, s string, c color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
}

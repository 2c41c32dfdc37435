// Package draw provides the small set of drawing helpers the demo and
// recovery UIs need on top of a [pixel.Surface]: lines, boxes and text.
// Anything a surface can do, any [draw.Image] can; the full rasterizer
// lives with the caller.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [image/draw.Draw].
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	bresenham(dst, x, y, x, y+h-1, c)
}

// Rectangle draws a rectangle outline.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, rect.Dx(), c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, rect.Dx(), c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, rect.Dy(), c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, rect.Dy(), c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Generalized with integer
func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	var dx, dy, e, slope int

	// Drawing p1 -> p2 is equivalent to drawing p2 -> p1, so sort the
	// points in x-axis order to handle only half of the cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	if dy < 0 {
		dy = -dy
	}

	switch {
	case x1 == x2 && y1 == y2:
		dst.Set(x1, y1, c)

	case y1 == y2:
		for ; dx != 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
		}
		dst.Set(x1, y1, c)

	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for ; dy != 0; dy-- {
			dst.Set(x1, y1, c)
			y1++
		}
		dst.Set(x1, y1, c)

	case dx == dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		for ; dx != 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
			y1 += step
		}
		dst.Set(x1, y1, c)

	case dx > dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dy, e, slope = 2*dy, dx, 2*dx
		for ; dx != 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
			e -= dy
			if e < 0 {
				y1 += step
				e += slope
			}
		}
		dst.Set(x2, y2, c)

	default:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dx, e, slope = 2*dx, dy, 2*dy
		for ; dy != 0; dy-- {
			dst.Set(x1, y1, c)
			y1 += step
			e -= dx
			if e < 0 {
				x1++
				e += slope
			}
		}
		dst.Set(x2, y2, c)
	}
}

package richtext

import "github.com/gogpu/gg"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Insets is padding between a paragraph's outer box and its text content.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// rectanglePath builds a closed axis-aligned quadrilateral from the top-left
// and bottom-right corners: MoveTo(topLeft), then four LineTo elements ending
// back at the top-left. Every visual-line segment produced by a [TextLayout]
// follows the same five-element form.
func rectanglePath(topLeftX, topLeftY, bottomRightX, bottomRightY float64) []gg.PathElement {
	return []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(topLeftX, topLeftY)},
		gg.LineTo{Point: gg.Pt(bottomRightX, topLeftY)},
		gg.LineTo{Point: gg.Pt(bottomRightX, bottomRightY)},
		gg.LineTo{Point: gg.Pt(topLeftX, bottomRightY)},
		gg.LineTo{Point: gg.Pt(topLeftX, topLeftY)},
	}
}

// elementsBounds returns the bounding box of all points touched by the
// elements. ok is false when the elements contain no points, so an empty
// outline never reads as a zero-area rectangle at the origin.
func elementsBounds(elems []gg.PathElement) (bounds Rect, ok bool) {
	var minX, minY, maxX, maxY float64
	first := true
	visit := func(pts ...gg.Point) {
		for _, pt := range pts {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	for _, e := range elems {
		switch e := e.(type) {
		case gg.MoveTo:
			visit(e.Point)
		case gg.LineTo:
			visit(e.Point)
		case gg.QuadTo:
			visit(e.Control, e.Point)
		case gg.CubicTo:
			visit(e.Control1, e.Control2, e.Point)
		}
	}
	if first {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

package richtext

import "github.com/gogpu/gg"

// rangeShapeSafely synthesizes the outline for runes [start, end), including
// the trailing line break when end == paragraph length + 1. The result is
// one closed quadrilateral (five elements) per visual line touched.
//
// The function is pure given (start, end, current layout): it never touches
// renderer state and may be called repeatedly with identical results.
//
// Trailing-line-break policy, matching editor selection behavior:
//   - empty paragraph: the whole render box, so a selected "line" of nothing
//     still reads as a selected line;
//   - start at the paragraph length (only the line break selected): a
//     rectangle from the last character's top-right corner to the render
//     box's bottom-right corner;
//   - otherwise: the shape of [start, length) with the last visual-line
//     segment's right edge stretched to the render box.
//
// Independently, when the paragraph wraps onto multiple visual lines, every
// segment's right edge is pushed out to the render box width, except the
// final segment when end sits mid-line rather than exactly on a wrap
// boundary.
func (p *ParagraphText) rangeShapeSafely(start, end int) []gg.PathElement {
	length := p.paragraph.Length()
	width, height := p.layout.Bounds()

	var shape []gg.PathElement
	switch {
	case end <= length:
		// Range without the line break.
		shape = p.layout.RangeShape(start, end)

	case length == 0:
		shape = rectanglePath(0, 0, width, height)

	case start == length:
		// Only the line break is selected: anchor at the top-right
		// corner of the last character's shape.
		shape = p.layout.RangeShape(start-1, start)
		if tr, ok := topRightOf(shape); ok {
			shape = rectanglePath(tr.X, tr.Y, width, height)
		} else {
			logger().Warn("richtext: degenerate shape for last character, skipping line-break extension",
				"start", start, "elements", len(shape))
		}

	default:
		shape = p.layout.RangeShape(start, length)
		// Stretch the final visual-line segment's right edge to the
		// render box. A shape shorter than one full segment is left
		// alone rather than indexed out of bounds.
		if len(shape) > 3 {
			tr := len(shape) - 4
			br := len(shape) - 3
			if lt, ok := shape[tr].(gg.LineTo); ok {
				shape[tr] = gg.LineTo{Point: gg.Pt(width, lt.Point.Y)}
				shape[br] = gg.LineTo{Point: gg.Pt(width, height)}
			}
		} else {
			logger().Warn("richtext: degenerate range shape, skipping line-break extension",
				"start", start, "end", end, "elements", len(shape))
		}
	}

	if p.layout.LineCount() > 1 {
		// Fill wrapped lines out to the margin. The final segment is
		// stretched too only when end falls exactly on a wrap boundary;
		// a selection ending mid-line keeps its true right edge.
		wrappedAtEnd := end > 0 && p.layout.LineForChar(end) > p.layout.LineForChar(end-1)
		adjust := len(shape)
		if !wrappedAtEnd {
			adjust -= 5
		}
		for i := 0; i < adjust; i++ {
			if _, ok := shape[i].(gg.MoveTo); !ok {
				continue
			}
			if i+2 >= len(shape) {
				break
			}
			if lt, ok := shape[i+1].(gg.LineTo); ok {
				shape[i+1] = gg.LineTo{Point: gg.Pt(width, lt.Point.Y)}
			}
			if lt, ok := shape[i+2].(gg.LineTo); ok {
				shape[i+2] = gg.LineTo{Point: gg.Pt(width, lt.Point.Y)}
			}
		}
	}

	return shape
}

// topRightOf extracts the top-right corner of the last segment of a range
// shape: the fourth element from the end, following the five-element
// MoveTo/LineTo segment layout.
func topRightOf(shape []gg.PathElement) (gg.Point, bool) {
	if len(shape) < 4 {
		return gg.Point{}, false
	}
	lt, ok := shape[len(shape)-4].(gg.LineTo)
	if !ok {
		return gg.Point{}, false
	}
	return lt.Point, true
}

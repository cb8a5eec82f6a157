package gotext

import "github.com/gogpu/gg"

// LineCount returns the number of visual lines. An empty paragraph still
// occupies one line.
func (l *Layout) LineCount() int {
	return len(l.lines)
}

// LineForChar returns the visual line of the given rune offset. An offset
// sitting exactly on a wrap boundary belongs to the line it starts.
func (l *Layout) LineForChar(offset int) int {
	offset = l.clamp(offset)
	for i := range l.lines {
		if offset < l.lines[i].end {
			return i
		}
	}
	return len(l.lines) - 1
}

// LineStart returns the rune offset of the first character on the line.
func (l *Layout) LineStart(lineIdx int) int {
	return l.lineAt(lineIdx).start
}

// LineEnd returns the rune offset one past the last character on the line.
func (l *Layout) LineEnd(lineIdx int) int {
	return l.lineAt(lineIdx).end
}

// RangeShape returns one closed quadrilateral per visual line touched by
// runes [start, end), five elements each.
func (l *Layout) RangeShape(start, end int) []gg.PathElement {
	start = l.clamp(start)
	end = l.clamp(end)
	if start >= end {
		return nil
	}
	var shape []gg.PathElement
	for i := l.LineForChar(start); i <= l.LineForChar(end-1); i++ {
		ln := &l.lines[i]
		segStart := max(start, ln.start)
		segEnd := min(end, ln.end)
		if segStart >= segEnd {
			continue
		}
		x0 := l.xAt(ln, segStart)
		x1 := l.xAt(ln, segEnd)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		shape = append(shape, quad(x0, ln.top, x1, ln.top+l.lineHeight)...)
	}
	return shape
}

// CaretShape returns a vertical segment at the offset's leading edge. With
// leading false, an offset on a wrap boundary renders at the end of the
// previous line instead of the start of the next.
func (l *Layout) CaretShape(offset int, leading bool) []gg.PathElement {
	offset = l.clamp(offset)
	li := l.LineForChar(offset)
	if !leading && offset > 0 {
		if prev := l.LineForChar(offset - 1); prev < li {
			li = prev
		}
	}
	ln := &l.lines[li]
	x := l.xAt(ln, min(offset, ln.end))
	return []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(x, ln.top)},
		gg.LineTo{Point: gg.Pt(x, ln.top+l.lineHeight)},
	}
}

// UnderlineShape returns one horizontal segment per visual line touched by
// runes [start, end), positioned just below the baseline.
func (l *Layout) UnderlineShape(start, end int) []gg.PathElement {
	start = l.clamp(start)
	end = l.clamp(end)
	if start >= end {
		return nil
	}
	var shape []gg.PathElement
	for i := l.LineForChar(start); i <= l.LineForChar(end-1); i++ {
		ln := &l.lines[i]
		segStart := max(start, ln.start)
		segEnd := min(end, ln.end)
		if segStart >= segEnd {
			continue
		}
		x0 := l.xAt(ln, segStart)
		x1 := l.xAt(ln, segEnd)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		y := ln.top + l.ascent + l.descent*0.4
		shape = append(shape,
			gg.MoveTo{Point: gg.Pt(x0, y)},
			gg.LineTo{Point: gg.Pt(x1, y)},
		)
	}
	return shape
}

// Bounds returns the layout's render box size: the wrap width (or widest
// line when unwrapped) by the total line height.
func (l *Layout) Bounds() (width, height float64) {
	return l.width, l.height
}

// LineHeight returns the height of one visual line.
func (l *Layout) LineHeight() float64 {
	return l.lineHeight
}

// LineBaseline returns the y coordinate of the given line's text baseline.
func (l *Layout) LineBaseline(lineIdx int) float64 {
	return l.lineAt(lineIdx).top + l.ascent
}

// LineText returns the text of the given visual line.
func (l *Layout) LineText(lineIdx int) string {
	ln := l.lineAt(lineIdx)
	return string(l.runes[ln.start:ln.end])
}

// CharX returns the x coordinate of the boundary before the given rune
// offset on its visual line.
func (l *Layout) CharX(offset int) float64 {
	offset = l.clamp(offset)
	ln := &l.lines[l.LineForChar(offset)]
	return l.xAt(ln, min(offset, ln.end))
}

func (l *Layout) clamp(offset int) int {
	return min(max(offset, 0), len(l.runes))
}

func (l *Layout) lineAt(i int) *line {
	i = min(max(i, 0), len(l.lines)-1)
	return &l.lines[i]
}

// xAt maps a rune boundary on a line to its visual x position. RTL lines
// run right to left, so logical positions mirror around the line width.
func (l *Layout) xAt(ln *line, offset int) float64 {
	v := ln.xs[offset-ln.start]
	if l.rtl {
		return ln.width() - v
	}
	return v
}

// quad builds one closed five-element quadrilateral.
func quad(x0, y0, x1, y1 float64) []gg.PathElement {
	return []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(x0, y0)},
		gg.LineTo{Point: gg.Pt(x1, y0)},
		gg.LineTo{Point: gg.Pt(x1, y1)},
		gg.LineTo{Point: gg.Pt(x0, y1)},
		gg.LineTo{Point: gg.Pt(x0, y0)},
	}
}

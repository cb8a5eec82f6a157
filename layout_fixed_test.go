package richtext

import "github.com/gogpu/gg"

// fixedLayout lays runes on a monospace grid for deterministic geometry in
// tests: cols runes per visual line, each cell cellW by cellH, inside a
// render box of boxW by boxH.
type fixedLayout struct {
	length int
	cols   int
	cellW  float64
	cellH  float64
	boxW   float64
	boxH   float64
}

func (l *fixedLayout) LineCount() int {
	if l.length == 0 {
		return 1
	}
	return (l.length + l.cols - 1) / l.cols
}

func (l *fixedLayout) LineForChar(offset int) int {
	if l.length == 0 {
		return 0
	}
	if offset >= l.length {
		return (l.length - 1) / l.cols
	}
	if offset < 0 {
		return 0
	}
	return offset / l.cols
}

func (l *fixedLayout) LineStart(line int) int {
	return min(line*l.cols, l.length)
}

func (l *fixedLayout) LineEnd(line int) int {
	return min((line+1)*l.cols, l.length)
}

func (l *fixedLayout) RangeShape(start, end int) []gg.PathElement {
	start = min(max(start, 0), l.length)
	end = min(max(end, start), l.length)
	if start >= end {
		return nil
	}
	var shape []gg.PathElement
	for line := l.LineForChar(start); line <= l.LineForChar(end-1); line++ {
		lineStart := line * l.cols
		segStart := max(start, lineStart)
		segEnd := min(end, lineStart+l.cols)
		x0 := float64(segStart-lineStart) * l.cellW
		x1 := float64(segEnd-lineStart) * l.cellW
		y0 := float64(line) * l.cellH
		shape = append(shape, rectanglePath(x0, y0, x1, y0+l.cellH)...)
	}
	return shape
}

func (l *fixedLayout) CaretShape(offset int, leading bool) []gg.PathElement {
	offset = min(max(offset, 0), l.length)
	line := l.LineForChar(offset)
	col := offset - line*l.cols
	x := float64(col) * l.cellW
	y0 := float64(line) * l.cellH
	return []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(x, y0)},
		gg.LineTo{Point: gg.Pt(x, y0+l.cellH)},
	}
}

func (l *fixedLayout) UnderlineShape(start, end int) []gg.PathElement {
	start = min(max(start, 0), l.length)
	end = min(max(end, start), l.length)
	if start >= end {
		return nil
	}
	var shape []gg.PathElement
	for line := l.LineForChar(start); line <= l.LineForChar(end-1); line++ {
		lineStart := line * l.cols
		segStart := max(start, lineStart)
		segEnd := min(end, lineStart+l.cols)
		x0 := float64(segStart-lineStart) * l.cellW
		x1 := float64(segEnd-lineStart) * l.cellW
		y := float64(line)*l.cellH + l.cellH - 1
		shape = append(shape,
			gg.MoveTo{Point: gg.Pt(x0, y)},
			gg.LineTo{Point: gg.Pt(x1, y)},
		)
	}
	return shape
}

func (l *fixedLayout) Bounds() (width, height float64) {
	return l.boxW, l.boxH
}

var _ TextLayout = (*fixedLayout)(nil)

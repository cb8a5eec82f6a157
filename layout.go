package richtext

import "github.com/gogpu/gg"

// TextLayout answers line-geometry queries for one paragraph of laid-out
// text. Implementations are supplied by a text-layout engine; layout/gotext
// provides one backed by go-text/typesetting.
//
// Offsets are rune offsets into the paragraph text. Implementations must
// clamp out-of-range offsets rather than panic: the renderer probes one past
// the paragraph length when a range includes the trailing line break.
type TextLayout interface {
	// LineCount returns the number of visual lines the paragraph wraps
	// into. An empty paragraph still occupies one visual line.
	LineCount() int

	// LineForChar returns the visual line index of the given rune offset.
	// An offset sitting exactly on a wrap boundary belongs to the line it
	// starts, so LineForChar(end) > LineForChar(end-1) identifies a range
	// ending at a wrap.
	LineForChar(offset int) int

	// LineStart returns the rune offset of the first character on the
	// given visual line.
	LineStart(line int) int

	// LineEnd returns the rune offset one past the last character on the
	// given visual line.
	LineEnd(line int) int

	// RangeShape returns the outline covering runes [start, end): one
	// closed quadrilateral per visual line touched, each exactly five
	// elements (MoveTo topLeft, LineTo topRight, LineTo bottomRight,
	// LineTo bottomLeft, LineTo topLeft), back to back. Returns nil for
	// an empty range.
	RangeShape(start, end int) []gg.PathElement

	// CaretShape returns the caret outline at the given rune offset,
	// normally a vertical segment at the character's leading edge. When
	// leading is false the trailing edge of the preceding character is
	// used instead.
	CaretShape(offset int, leading bool) []gg.PathElement

	// UnderlineShape returns underline segments for runes [start, end),
	// one horizontal segment per visual line touched.
	UnderlineShape(start, end int) []gg.PathElement

	// Bounds returns the width and height of the paragraph's render box,
	// excluding insets.
	Bounds() (width, height float64)
}

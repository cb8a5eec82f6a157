package richtext

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg"
)

// StrokeType positions a border stroke relative to the shape outline.
type StrokeType int

const (
	// StrokeCentered draws the stroke centered on the outline.
	StrokeCentered StrokeType = iota
	// StrokeInside draws the stroke inside the outline.
	StrokeInside
	// StrokeOutside draws the stroke outside the outline.
	StrokeOutside
)

// String returns the string representation of the stroke type.
func (t StrokeType) String() string {
	switch t {
	case StrokeCentered:
		return "Centered"
	case StrokeInside:
		return "Inside"
	case StrokeOutside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// BorderStyle is a resolved border decoration for a span.
type BorderStyle struct {
	Color gg.RGBA
	// Width is the stroke width. A width <= 0 disables the border.
	Width float64
	Type  StrokeType
	// Dash is the stroke dash pattern; nil draws a solid border.
	Dash *gg.Dash
}

// UnderlineStyle is a resolved underline decoration for a span.
type UnderlineStyle struct {
	Color gg.RGBA
	// Width is the stroke width. A width <= 0 disables the underline.
	Width float64
	Cap   gg.LineCap
	// Dash is the stroke dash pattern; nil draws a solid underline.
	Dash *gg.Dash
}

// SpanStyle holds the resolved decoration attributes of one styled span.
// Style resolution (cascading, inheritance) happens outside this package;
// richtext only consumes the already-typed values. Nil fields mean the
// decoration is absent.
type SpanStyle struct {
	Background *gg.RGBA
	Border     *BorderStyle
	Underline  *UnderlineStyle
}

// StyledSpan is a maximal run of paragraph text sharing one resolved style.
type StyledSpan struct {
	Text  string
	Style SpanStyle
}

// Length returns the span's text length in runes.
func (s StyledSpan) Length() int {
	return utf8.RuneCountInString(s.Text)
}

// Paragraph is an ordered, read-only sequence of styled spans. The renderer
// never mutates it; the owning document model replaces the whole paragraph
// when its content changes.
type Paragraph struct {
	spans  []StyledSpan
	length int
}

// NewParagraph creates a paragraph from the given spans.
func NewParagraph(spans ...StyledSpan) *Paragraph {
	p := &Paragraph{spans: spans}
	for _, s := range spans {
		p.length += s.Length()
	}
	return p
}

// Spans returns the paragraph's styled spans in order. The returned slice
// must not be modified.
func (p *Paragraph) Spans() []StyledSpan {
	return p.spans
}

// Length returns the paragraph's total text length in runes. The trailing
// line break is virtual and not included.
func (p *Paragraph) Length() int {
	return p.length
}

// Text returns the concatenated text of all spans.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

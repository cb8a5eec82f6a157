package richtext

import (
	"fmt"

	"github.com/gogpu/gg"
)

// decorationKind distinguishes the three run decorations. It is a closed
// set: every DecorationAttributes value carries exactly one kind, and values
// of different kinds never compare equal.
type decorationKind int

const (
	decorationBackground decorationKind = iota
	decorationBorder
	decorationUnderline
)

// String returns the string representation of the decoration kind.
func (k decorationKind) String() string {
	switch k {
	case decorationBackground:
		return "Background"
	case decorationBorder:
		return "Border"
	case decorationUnderline:
		return "Underline"
	default:
		return "Unknown"
	}
}

// DecorationAttributes is the immutable visual description of one run
// decoration, extracted from a span's resolved style. Two attributes compare
// equal when every field matches; consecutive spans with equal attributes
// are merged into a single shape.
//
// The zero width sentinel: a decoration with no color, or a stroked
// decoration with width <= 0, is "null" and produces no shape.
type DecorationAttributes struct {
	kind     decorationKind
	color    gg.RGBA
	hasColor bool
	width    float64
	dash     []float64

	// strokeType is only meaningful for borders.
	strokeType StrokeType
	// cap is only meaningful for underlines.
	cap gg.LineCap
}

// backgroundAttributes extracts the background decoration of a span style.
func backgroundAttributes(s SpanStyle) DecorationAttributes {
	a := DecorationAttributes{kind: decorationBackground}
	if s.Background != nil {
		a.color = *s.Background
		a.hasColor = true
	}
	return a
}

// borderAttributes extracts the border decoration of a span style.
func borderAttributes(s SpanStyle) DecorationAttributes {
	a := DecorationAttributes{kind: decorationBorder, width: -1}
	if s.Border == nil || s.Border.Width <= 0 {
		return a
	}
	a.color = s.Border.Color
	a.hasColor = true
	a.width = s.Border.Width
	a.strokeType = s.Border.Type
	a.dash = dashArray(s.Border.Dash)
	return a
}

// underlineAttributes extracts the underline decoration of a span style.
func underlineAttributes(s SpanStyle) DecorationAttributes {
	a := DecorationAttributes{kind: decorationUnderline, width: -1}
	if s.Underline == nil || s.Underline.Width <= 0 {
		return a
	}
	a.color = s.Underline.Color
	a.hasColor = true
	a.width = s.Underline.Width
	a.cap = s.Underline.Cap
	a.dash = dashArray(s.Underline.Dash)
	return a
}

func dashArray(d *gg.Dash) []float64 {
	if d == nil {
		return nil
	}
	return d.Array
}

// IsNull reports whether the decoration is absent: no color, or, for
// stroked decorations, a non-positive width.
func (a DecorationAttributes) IsNull() bool {
	if !a.hasColor {
		return true
	}
	if a.kind == decorationBackground {
		return false
	}
	return a.width <= 0
}

// Equal reports whether two decoration attributes describe the same visual,
// including the variant-specific stroke type or line cap.
func (a DecorationAttributes) Equal(b DecorationAttributes) bool {
	if a.kind != b.kind || a.hasColor != b.hasColor || a.color != b.color || a.width != b.width {
		return false
	}
	if len(a.dash) != len(b.dash) {
		return false
	}
	for i := range a.dash {
		if a.dash[i] != b.dash[i] {
			return false
		}
	}
	switch a.kind {
	case decorationBorder:
		return a.strokeType == b.strokeType
	case decorationUnderline:
		return a.cap == b.cap
	default:
		return true
	}
}

// String returns a diagnostic description of the attributes.
func (a DecorationAttributes) String() string {
	if a.IsNull() {
		return fmt.Sprintf("%s[null]", a.kind)
	}
	switch a.kind {
	case decorationBorder:
		return fmt.Sprintf("Border[type=%s width=%v color=%v dash=%v]", a.strokeType, a.width, a.color, a.dash)
	case decorationUnderline:
		return fmt.Sprintf("Underline[cap=%v width=%v color=%v dash=%v]", a.cap, a.width, a.color, a.dash)
	default:
		return fmt.Sprintf("Background[color=%v]", a.color)
	}
}

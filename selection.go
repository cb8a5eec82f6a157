package richtext

import (
	"fmt"

	"github.com/gogpu/gg"
)

// defaultHighlightFill is the selection fill used unless overridden.
var defaultHighlightFill = gg.RGBA{R: 0.2, G: 0.45, B: 0.9, A: 0.35}

// SelectionPath is one selection highlight rendered within a paragraph. Like
// carets, selections have identity and an externally owned lifecycle; the
// renderer reacts to attach/detach and to range changes but never creates
// selections itself.
//
// The range end may be paragraph length + 1 to request inclusion of the
// trailing line break, which fills the selection out to the render box.
type SelectionPath struct {
	name       string
	start, end int

	elements []gg.PathElement
	origin   gg.Point
	fill     gg.RGBA

	// owner and onChanged are installed by the paragraph the selection is
	// attached to and removed again on detach. A selection has at most
	// one owner; attaching elsewhere detaches it first.
	owner     *ParagraphText
	onChanged func()
}

// NewSelection creates an empty selection with the given diagnostic name.
func NewSelection(name string) *SelectionPath {
	return &SelectionPath{
		name: name,
		fill: defaultHighlightFill,
	}
}

// Name returns the selection's diagnostic name.
func (s *SelectionPath) Name() string { return s.name }

// Range returns the selected rune range [start, end).
func (s *SelectionPath) Range() (start, end int) {
	return s.start, s.end
}

// Length returns the number of positions covered by the selection.
func (s *SelectionPath) Length() int {
	return s.end - s.start
}

// SetRange changes the selected range and notifies the owning paragraph,
// if any, that its geometry is stale. end may be paragraph length + 1 to
// include the trailing line break.
func (s *SelectionPath) SetRange(start, end int) {
	if start == s.start && end == s.end {
		return
	}
	s.start, s.end = start, end
	if s.onChanged != nil {
		s.onChanged()
	}
}

// SetFill sets the highlight fill color.
func (s *SelectionPath) SetFill(col gg.RGBA) { s.fill = col }

// Elements returns the selection's current outline, possibly several
// disjoint quadrilaterals for wrapped text.
func (s *SelectionPath) Elements() []gg.PathElement { return s.elements }

// Origin returns the selection's layout origin within the paragraph box.
func (s *SelectionPath) Origin() gg.Point { return s.origin }

// SetOrigin moves the selection's layout origin.
func (s *SelectionPath) SetOrigin(p gg.Point) { s.origin = p }

// Draw fills the selection outline.
func (s *SelectionPath) Draw(dc *gg.Context) error {
	if len(s.elements) == 0 {
		return nil
	}
	dc.Push()
	defer dc.Pop()
	dc.Translate(s.origin.X, s.origin.Y)
	tracePath(dc, s.elements)
	dc.SetColor(s.fill.Color())
	return dc.Fill()
}

// String returns a diagnostic description of the selection.
func (s *SelectionPath) String() string {
	return fmt.Sprintf("Selection(%s[%d,%d))", s.name, s.start, s.end)
}

func (s *SelectionPath) setElements(elems []gg.PathElement) { s.elements = elems }

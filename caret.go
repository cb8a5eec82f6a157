package richtext

import (
	"fmt"

	"github.com/gogpu/gg"
)

// defaultCaretWidth is the stroke width used for caret outlines.
const defaultCaretWidth = 1.0

// CaretNode is one caret rendered within a paragraph. A caret has identity:
// the same *CaretNode may be moved between positions, and queries address it
// directly. Carets are created and destroyed by the owning widget; the
// paragraph renderer only attaches and detaches them.
type CaretNode struct {
	name string
	pos  int

	elements []gg.PathElement
	origin   gg.Point
	color    gg.RGBA
	width    float64

	// owner and onMoved are installed by the paragraph the caret is
	// attached to and removed again on detach, so a discarded paragraph
	// leaves no live callback behind. A caret has at most one owner;
	// attaching elsewhere detaches it first.
	owner   *ParagraphText
	onMoved func()
}

// NewCaret creates a caret with the given diagnostic name, positioned at
// column 0.
func NewCaret(name string) *CaretNode {
	return &CaretNode{
		name:  name,
		color: gg.RGBA{A: 1},
		width: defaultCaretWidth,
	}
}

// Name returns the caret's diagnostic name.
func (c *CaretNode) Name() string { return c.name }

// Pos returns the caret's column position as a rune offset. The stored
// position may exceed the paragraph length; it is clamped when shapes are
// computed, not when set.
func (c *CaretNode) Pos() int { return c.pos }

// SetPos moves the caret to the given column position and notifies the
// owning paragraph, if any, that its geometry is stale.
func (c *CaretNode) SetPos(pos int) {
	if pos == c.pos {
		return
	}
	c.pos = pos
	if c.onMoved != nil {
		c.onMoved()
	}
}

// SetColor sets the caret's stroke color. Default is opaque black.
func (c *CaretNode) SetColor(col gg.RGBA) { c.color = col }

// SetWidth sets the caret's stroke width.
func (c *CaretNode) SetWidth(w float64) { c.width = w }

// Elements returns the caret's current outline, recomputed by the owning
// paragraph on every layout pass.
func (c *CaretNode) Elements() []gg.PathElement { return c.elements }

// Origin returns the caret's layout origin within the paragraph box.
func (c *CaretNode) Origin() gg.Point { return c.origin }

// SetOrigin moves the caret's layout origin.
func (c *CaretNode) SetOrigin(p gg.Point) { c.origin = p }

// Draw strokes the caret outline.
func (c *CaretNode) Draw(dc *gg.Context) error {
	if len(c.elements) == 0 {
		return nil
	}
	dc.Push()
	defer dc.Pop()
	dc.Translate(c.origin.X, c.origin.Y)
	tracePath(dc, c.elements)
	dc.SetColor(c.color.Color())
	dc.SetLineWidth(c.width)
	dc.ClearDash()
	return dc.Stroke()
}

// String returns a diagnostic description of the caret.
func (c *CaretNode) String() string {
	return fmt.Sprintf("Caret(%s@%d)", c.name, c.pos)
}

func (c *CaretNode) setElements(elems []gg.PathElement) { c.elements = elems }

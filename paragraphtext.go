package richtext

import (
	"fmt"

	"github.com/gogpu/gg"
)

// NodeFactory produces the drawable text node for one styled span. The
// factory is supplied by the host (it knows how glyphs are drawn); passing
// nil creates a paragraph with geometry but no text nodes, which is enough
// for measurement and for hosts that draw text themselves.
type NodeFactory func(span StyledSpan, start int) Node

// ParagraphText renders one paragraph: its text nodes, per-run decoration
// shapes, selection highlights, and carets, all attached to an ordered child
// list with fixed z-order (backgrounds, selections, borders, text,
// underlines, carets, back to front).
//
// All methods must be called from the host UI thread. Geometry is
// recomputed by Layout; mutations only mark the geometry stale, and every
// query forces a pass before answering.
type ParagraphText struct {
	paragraph *Paragraph
	layout    TextLayout

	children childList
	insets   Insets

	// screenOffset maps the paragraph's outer box to the host's screen
	// coordinate space for the *OnScreen queries.
	screenOffset gg.Point

	carets     []*CaretNode
	selections []*SelectionPath

	backgroundShapes *sharedShapeHelper
	borderShapes     *sharedShapeHelper
	underlineShapes  *sharedShapeHelper

	dirty bool
}

// NewParagraphText creates a renderer for the given paragraph over the given
// layout. The paragraph is read-only and never mutated. factory may be nil.
func NewParagraphText(par *Paragraph, layout TextLayout, factory NodeFactory, opts ...Option) *ParagraphText {
	p := &ParagraphText{
		paragraph: par,
		layout:    layout,
		dirty:     true,
	}
	for _, opt := range opts {
		opt(p)
	}

	if factory != nil {
		start := 0
		for _, span := range par.Spans() {
			if n := factory(span, start); n != nil {
				n.SetOrigin(p.contentOrigin())
				p.children.push(bandText, n)
			}
			start += span.Length()
		}
	}

	equal := DecorationAttributes.Equal
	p.backgroundShapes = &sharedShapeHelper{
		equal:  equal,
		create: newShapePath,
		configure: func(s *shapePath, r sharedRange) {
			s.SetOrigin(p.contentOrigin())
			s.configureFill(r.attrs.color)
			s.elements = p.rangeShapeSafely(r.start, r.end)
		},
		attach:  func(s *shapePath) { p.children.pushFront(bandBackground, s) },
		release: p.detachShapes,
	}
	p.borderShapes = &sharedShapeHelper{
		equal:  equal,
		create: newShapePath,
		configure: func(s *shapePath, r sharedRange) {
			s.SetOrigin(p.contentOrigin())
			s.configureStroke(r.attrs.color, r.attrs.width, r.attrs.strokeType, gg.LineCapButt, r.attrs.dash)
			s.elements = p.rangeShapeSafely(r.start, r.end)
		},
		attach:  func(s *shapePath) { p.children.pushFront(bandBorder, s) },
		release: p.detachShapes,
	}
	p.underlineShapes = &sharedShapeHelper{
		equal:  equal,
		create: newShapePath,
		configure: func(s *shapePath, r sharedRange) {
			s.SetOrigin(p.contentOrigin())
			s.configureStroke(r.attrs.color, r.attrs.width, StrokeCentered, r.attrs.cap, r.attrs.dash)
			s.elements = p.layout.UnderlineShape(r.start, r.end)
		},
		attach:  func(s *shapePath) { p.children.push(bandUnderline, s) },
		release: p.detachShapes,
	}
	return p
}

// Paragraph returns the rendered paragraph.
func (p *ParagraphText) Paragraph() *Paragraph {
	return p.paragraph
}

// SetLayout swaps the layout geometry source, typically after the host
// re-wrapped the paragraph to a new width. Marks geometry stale.
func (p *ParagraphText) SetLayout(layout TextLayout) {
	p.layout = layout
	p.requestLayout()
}

// SetScreenOffset sets the screen-space position of the paragraph's outer
// box, used by the *OnScreen queries. Pure coordinate bookkeeping; it does
// not invalidate geometry.
func (p *ParagraphText) SetScreenOffset(x, y float64) {
	p.screenOffset = gg.Pt(x, y)
}

// RequestLayout marks the paragraph's geometry stale. The next Layout call
// (explicit or forced by a query) recomputes all shapes.
func (p *ParagraphText) RequestLayout() {
	p.requestLayout()
}

func (p *ParagraphText) requestLayout() {
	p.dirty = true
}

// Layout runs a layout pass if geometry is stale, recomputing caret shapes,
// then selection shapes, then the per-run decoration shapes. A no-op when
// geometry is current.
func (p *ParagraphText) Layout() {
	if !p.dirty {
		return
	}
	p.dirty = false
	p.updateAllCaretShapes()
	p.updateAllSelectionShapes()
	p.updateDecorationShapes()
	logger().Debug("richtext: layout pass",
		"carets", len(p.carets),
		"selections", len(p.selections),
		"children", p.children.len())
}

// AddCaret attaches a caret to this paragraph: its shape joins the caret
// z-band and is computed immediately, and future position changes mark the
// paragraph's geometry stale. Adding an already-attached caret is a no-op;
// a caret attached to another paragraph is detached from it first.
func (p *ParagraphText) AddCaret(c *CaretNode) {
	if p.children.contains(c) {
		return
	}
	if c.owner != nil {
		c.owner.RemoveCaret(c)
	}
	c.owner = p
	c.onMoved = p.requestLayout
	c.SetOrigin(p.contentOrigin())
	p.children.push(bandCaret, c)
	p.carets = append(p.carets, c)
	p.updateSingleCaret(c)
}

// RemoveCaret detaches a caret: its shape leaves the child list and its
// change callback is uninstalled, leaving no references from the caret back
// to this paragraph. Removing an unattached caret is a no-op.
func (p *ParagraphText) RemoveCaret(c *CaretNode) {
	if !p.children.remove(c) {
		return
	}
	c.owner = nil
	c.onMoved = nil
	for i, have := range p.carets {
		if have == c {
			p.carets = append(p.carets[:i], p.carets[i+1:]...)
			break
		}
	}
}

// AddSelection attaches a selection to this paragraph. Its highlight shape
// joins the selection z-band and is computed immediately; future range
// changes mark the paragraph's geometry stale. Adding an already-attached
// selection is a no-op; a selection attached to another paragraph is
// detached from it first.
func (p *ParagraphText) AddSelection(s *SelectionPath) {
	if p.children.contains(s) {
		return
	}
	if s.owner != nil {
		s.owner.RemoveSelection(s)
	}
	s.owner = p
	s.onChanged = p.requestLayout
	s.SetOrigin(p.contentOrigin())
	p.children.push(bandSelection, s)
	p.selections = append(p.selections, s)
	p.updateSingleSelection(s)
}

// RemoveSelection detaches a selection and uninstalls its change callback.
// Removing an unattached selection is a no-op.
func (p *ParagraphText) RemoveSelection(s *SelectionPath) {
	if !p.children.remove(s) {
		return
	}
	s.owner = nil
	s.onChanged = nil
	for i, have := range p.selections {
		if have == s {
			p.selections = append(p.selections[:i], p.selections[i+1:]...)
			break
		}
	}
}

// CaretOffsetX returns the horizontal midpoint of the caret's shape in
// paragraph-local coordinates.
func (p *ParagraphText) CaretOffsetX(c *CaretNode) (float64, error) {
	p.Layout()
	if err := p.checkWithinParagraph(c); err != nil {
		return 0, err
	}
	b, ok := elementsBounds(c.Elements())
	if !ok {
		return 0, nil
	}
	return (b.X + b.MaxX()) / 2, nil
}

// CaretBounds returns the caret shape's bounding box in the paragraph's
// outer coordinate space (insets included).
func (p *ParagraphText) CaretBounds(c *CaretNode) (Rect, error) {
	p.Layout()
	if err := p.checkWithinParagraph(c); err != nil {
		return Rect{}, err
	}
	b, _ := elementsBounds(c.Elements())
	return b.Translate(c.Origin().X, c.Origin().Y), nil
}

// CaretBoundsOnScreen returns the caret shape's bounding box in the host's
// screen coordinate space.
func (p *ParagraphText) CaretBoundsOnScreen(c *CaretNode) (Rect, error) {
	b, err := p.CaretBounds(c)
	if err != nil {
		return Rect{}, err
	}
	return b.Translate(p.screenOffset.X, p.screenOffset.Y), nil
}

// RangeBoundsOnScreen measures the bounding box of an arbitrary rune range
// in screen space by synthesizing a transient probe shape, measuring it,
// and discarding it. ok is false for a range with no geometry.
func (p *ParagraphText) RangeBoundsOnScreen(from, to int) (bounds Rect, ok bool) {
	p.Layout()

	probe := newShapePath()
	probe.SetOrigin(p.contentOrigin())
	p.children.push(bandCaret, probe)
	probe.elements = p.rangeShapeSafely(from, to)

	b, ok := elementsBounds(probe.elements)
	p.children.remove(probe)
	if !ok {
		return Rect{}, false
	}
	return b.Translate(probe.origin.X+p.screenOffset.X, probe.origin.Y+p.screenOffset.Y), true
}

// SelectionBoundsOnScreen returns the bounding box of a selection's shape in
// screen space. ok is false for a zero-length selection, which has no shape.
func (p *ParagraphText) SelectionBoundsOnScreen(s *SelectionPath) (bounds Rect, ok bool, err error) {
	if s.Length() == 0 {
		return Rect{}, false, nil
	}
	p.Layout()
	if err := p.checkWithinParagraph(s); err != nil {
		return Rect{}, false, err
	}
	b, ok := elementsBounds(s.Elements())
	if !ok {
		return Rect{}, false, nil
	}
	return b.Translate(s.Origin().X+p.screenOffset.X, s.Origin().Y+p.screenOffset.Y), true, nil
}

// CurrentLineIndex returns the visual line the caret currently sits on.
func (p *ParagraphText) CurrentLineIndex(c *CaretNode) (int, error) {
	p.Layout()
	if err := p.checkWithinParagraph(c); err != nil {
		return 0, err
	}
	return p.layout.LineForChar(p.clampedPosition(c)), nil
}

// LineIndexAt returns the visual line containing the given rune offset.
func (p *ParagraphText) LineIndexAt(pos int) int {
	p.Layout()
	return p.layout.LineForChar(pos)
}

// CurrentLineStartPosition returns the rune offset of the first character on
// the caret's visual line.
func (p *ParagraphText) CurrentLineStartPosition(c *CaretNode) (int, error) {
	line, err := p.CurrentLineIndex(c)
	if err != nil {
		return 0, err
	}
	return p.layout.LineStart(line), nil
}

// CurrentLineEndPosition returns the rune offset one past the last character
// on the caret's visual line.
func (p *ParagraphText) CurrentLineEndPosition(c *CaretNode) (int, error) {
	line, err := p.CurrentLineIndex(c)
	if err != nil {
		return 0, err
	}
	return p.layout.LineEnd(line), nil
}

// String returns a diagnostic description of the paragraph renderer.
func (p *ParagraphText) String() string {
	return fmt.Sprintf("ParagraphText(len=%d children=%d)", p.paragraph.Length(), p.children.len())
}

func (p *ParagraphText) contentOrigin() gg.Point {
	return gg.Pt(p.insets.Left, p.insets.Top)
}

// checkWithinParagraph verifies that a queried node is currently parented
// under this paragraph. Queries on foreign nodes fail instead of answering
// from stale or unrelated geometry.
func (p *ParagraphText) checkWithinParagraph(n Node) error {
	if !p.children.contains(n) {
		return &OwnershipError{Node: n}
	}
	return nil
}

// clampedPosition clamps a caret's column position into [0, length].
func (p *ParagraphText) clampedPosition(c *CaretNode) int {
	return min(max(c.Pos(), 0), p.paragraph.Length())
}

func (p *ParagraphText) updateAllCaretShapes() {
	for _, c := range p.carets {
		p.updateSingleCaret(c)
	}
}

func (p *ParagraphText) updateSingleCaret(c *CaretNode) {
	c.SetOrigin(p.contentOrigin())
	c.setElements(p.layout.CaretShape(p.clampedPosition(c), true))
}

func (p *ParagraphText) updateAllSelectionShapes() {
	for _, s := range p.selections {
		p.updateSingleSelection(s)
	}
}

func (p *ParagraphText) updateSingleSelection(s *SelectionPath) {
	s.SetOrigin(p.contentOrigin())
	start, end := s.Range()
	s.setElements(p.rangeShapeSafely(start, end))
}

// updateDecorationShapes walks the paragraph's spans left to right,
// accumulating shared ranges for each decoration kind independently, then
// reconciles each kind's shape pool.
func (p *ParagraphText) updateDecorationShapes() {
	start := 0
	for _, span := range p.paragraph.Spans() {
		end := start + span.Length()

		if bg := backgroundAttributes(span.Style); !bg.IsNull() {
			p.backgroundShapes.updateSharedRange(bg, start, end)
		}
		if border := borderAttributes(span.Style); !border.IsNull() {
			p.borderShapes.updateSharedRange(border, start, end)
		}
		if underline := underlineAttributes(span.Style); !underline.IsNull() {
			p.underlineShapes.updateSharedRange(underline, start, end)
		}

		start = end
	}

	p.borderShapes.updateShapes()
	p.backgroundShapes.updateShapes()
	p.underlineShapes.updateShapes()
}

// detachShapes releases pooled shapes that are no longer needed.
func (p *ParagraphText) detachShapes(unused []*shapePath) {
	for _, s := range unused {
		p.children.remove(s)
	}
}

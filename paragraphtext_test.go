package richtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func gridLayout(length int) *fixedLayout {
	return &fixedLayout{length: length, cols: 4, cellW: 8, cellH: 16, boxW: 100, boxH: 60}
}

func TestAddRemoveCaretLeavesNoResiduals(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("main")

	if got := p.children.len(); got != 0 {
		t.Fatalf("fresh paragraph has %d children, want 0", got)
	}

	p.AddCaret(c)
	if got := p.children.len(); got != 1 {
		t.Errorf("after add: %d children, want 1", got)
	}
	if c.onMoved == nil {
		t.Error("after add: caret has no change callback installed")
	}
	if len(c.Elements()) == 0 {
		t.Error("after add: caret shape was not computed")
	}

	p.RemoveCaret(c)
	if got := p.children.len(); got != 0 {
		t.Errorf("after remove: %d children, want 0", got)
	}
	if c.onMoved != nil {
		t.Error("after remove: caret still holds a change callback")
	}
	if len(p.carets) != 0 {
		t.Errorf("after remove: %d tracked carets, want 0", len(p.carets))
	}
}

func TestAddCaretTwiceIsNoOp(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("main")

	p.AddCaret(c)
	p.AddCaret(c)
	if got := p.children.len(); got != 1 {
		t.Errorf("%d children, want 1", got)
	}
	if got := len(p.carets); got != 1 {
		t.Errorf("%d tracked carets, want 1", got)
	}
}

func TestAddCaretReparentsFromOtherParagraph(t *testing.T) {
	p1 := newGridParagraph(10, gridLayout(10))
	p2 := newGridParagraph(10, gridLayout(10))
	c := NewCaret("shared")

	p1.AddCaret(c)
	p2.AddCaret(c)

	if p1.children.contains(c) {
		t.Error("first paragraph still holds the caret after reattach")
	}
	if len(p1.carets) != 0 {
		t.Errorf("first paragraph tracks %d carets, want 0", len(p1.carets))
	}
	if !p2.children.contains(c) {
		t.Error("second paragraph does not hold the caret")
	}

	// Moves must land in the new owner's pass, not the old one's.
	p1.Layout()
	p2.Layout()
	c.SetPos(3)
	if p1.dirty {
		t.Error("move marked the former owner stale")
	}
	if !p2.dirty {
		t.Error("move did not mark the current owner stale")
	}
}

func TestAddSelectionReparentsFromOtherParagraph(t *testing.T) {
	p1 := newGridParagraph(10, gridLayout(10))
	p2 := newGridParagraph(10, gridLayout(10))
	s := NewSelection("shared")

	p1.AddSelection(s)
	p2.AddSelection(s)

	if p1.children.contains(s) {
		t.Error("first paragraph still holds the selection after reattach")
	}
	if !p2.children.contains(s) {
		t.Error("second paragraph does not hold the selection")
	}

	p1.Layout()
	p2.Layout()
	s.SetRange(1, 4)
	if p1.dirty {
		t.Error("range change marked the former owner stale")
	}
	if !p2.dirty {
		t.Error("range change did not mark the current owner stale")
	}
}

func TestCaretOffsetX(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("main")
	c.SetPos(2)
	p.AddCaret(c)

	x, err := p.CaretOffsetX(c)
	if err != nil {
		t.Fatalf("CaretOffsetX: %v", err)
	}
	if x != 16 {
		t.Errorf("got x=%v, want 16", x)
	}
}

func TestCaretMoveRecomputesOnNextPass(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("main")
	p.AddCaret(c)
	p.Layout()

	c.SetPos(3)
	if !p.dirty {
		t.Fatal("caret move did not mark geometry stale")
	}

	x, err := p.CaretOffsetX(c) // forces the pass
	if err != nil {
		t.Fatalf("CaretOffsetX: %v", err)
	}
	if x != 24 {
		t.Errorf("got x=%v, want 24", x)
	}
}

func TestCaretPositionClamped(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("main")
	c.SetPos(99)
	p.AddCaret(c)

	b, err := p.CaretBounds(c)
	if err != nil {
		t.Fatalf("CaretBounds: %v", err)
	}
	// Clamped to offset 10, which sits at column 2 of the last line.
	if b.X != 16 || b.Y != 32 {
		t.Errorf("got origin (%v,%v), want (16,32)", b.X, b.Y)
	}
}

func TestQueryOnForeignCaretFails(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("foreign")

	if _, err := p.CaretOffsetX(c); !errors.Is(err, ErrNotInParagraph) {
		t.Errorf("CaretOffsetX: got %v, want ErrNotInParagraph", err)
	}
	if _, err := p.CaretBounds(c); !errors.Is(err, ErrNotInParagraph) {
		t.Errorf("CaretBounds: got %v, want ErrNotInParagraph", err)
	}
	if _, err := p.CurrentLineIndex(c); !errors.Is(err, ErrNotInParagraph) {
		t.Errorf("CurrentLineIndex: got %v, want ErrNotInParagraph", err)
	}

	var oe *OwnershipError
	_, err := p.CaretOffsetX(c)
	if !errors.As(err, &oe) {
		t.Fatalf("error is %T, want *OwnershipError", err)
	}
	if oe.Node != Node(c) {
		t.Error("OwnershipError does not carry the queried node")
	}
}

func TestSelectionLifecycleAndBounds(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	s := NewSelection("primary")
	p.AddSelection(s)

	// Zero-length selection has no shape, not a zero-area rectangle.
	if _, ok, err := p.SelectionBoundsOnScreen(s); err != nil || ok {
		t.Errorf("zero-length selection: got ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	s.SetRange(0, 2)
	b, ok, err := p.SelectionBoundsOnScreen(s)
	if err != nil || !ok {
		t.Fatalf("got ok=%v err=%v, want ok=true err=nil", ok, err)
	}
	if b.X != 0 || b.Y != 0 || b.W != 16 || b.H != 16 {
		t.Errorf("got bounds %+v, want {0 0 16 16}", b)
	}

	p.RemoveSelection(s)
	if s.onChanged != nil {
		t.Error("after remove: selection still holds a change callback")
	}
	if got := p.children.len(); got != 0 {
		t.Errorf("after remove: %d children, want 0", got)
	}
}

func TestSelectionBoundsOnForeignSelectionFails(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	s := NewSelection("foreign")
	s.SetRange(0, 2)

	if _, _, err := p.SelectionBoundsOnScreen(s); !errors.Is(err, ErrNotInParagraph) {
		t.Errorf("got %v, want ErrNotInParagraph", err)
	}
}

func TestRangeBoundsOnScreenUsesTransientProbe(t *testing.T) {
	p := NewParagraphText(
		NewParagraph(StyledSpan{Text: strings.Repeat("a", 10)}),
		gridLayout(10),
		nil,
		WithInsets(Insets{Left: 5, Top: 7}),
		WithScreenOffset(100, 50),
	)

	before := p.children.len()
	b, ok := p.RangeBoundsOnScreen(0, 2)
	if !ok {
		t.Fatal("got ok=false, want true")
	}
	if b.X != 105 || b.Y != 57 || b.W != 16 || b.H != 16 {
		t.Errorf("got bounds %+v, want {105 57 16 16}", b)
	}
	if got := p.children.len(); got != before {
		t.Errorf("probe shape leaked: %d children, want %d", got, before)
	}

	if _, ok := p.RangeBoundsOnScreen(3, 3); ok {
		t.Error("empty range: got ok=true, want false")
	}
}

func TestLineQueries(t *testing.T) {
	p := newGridParagraph(10, gridLayout(10))
	c := NewCaret("main")
	c.SetPos(5)
	p.AddCaret(c)

	line, err := p.CurrentLineIndex(c)
	if err != nil {
		t.Fatalf("CurrentLineIndex: %v", err)
	}
	if line != 1 {
		t.Errorf("line index: got %d, want 1", line)
	}

	start, err := p.CurrentLineStartPosition(c)
	if err != nil {
		t.Fatalf("CurrentLineStartPosition: %v", err)
	}
	if start != 4 {
		t.Errorf("line start: got %d, want 4", start)
	}

	end, err := p.CurrentLineEndPosition(c)
	if err != nil {
		t.Fatalf("CurrentLineEndPosition: %v", err)
	}
	if end != 8 {
		t.Errorf("line end: got %d, want 8", end)
	}

	if got := p.LineIndexAt(9); got != 2 {
		t.Errorf("LineIndexAt(9): got %d, want 2", got)
	}
}

func TestDecorationShapesMergeAcrossSpans(t *testing.T) {
	yellow := gg.RGBA{R: 1, G: 1, B: 0.6, A: 1}
	pink := gg.RGBA{R: 1, G: 0.7, B: 0.8, A: 1}

	par := NewParagraph(
		StyledSpan{Text: "ab", Style: SpanStyle{Background: &yellow}},
		StyledSpan{Text: "cd", Style: SpanStyle{Background: &yellow}},
		StyledSpan{Text: "ef", Style: SpanStyle{Background: &pink}},
		StyledSpan{Text: "gh"},
	)
	p := NewParagraphText(par, &fixedLayout{length: 8, cols: 20, cellW: 8, cellH: 16, boxW: 200, boxH: 16}, nil)
	p.Layout()

	if got := len(p.backgroundShapes.shapes); got != 2 {
		t.Fatalf("got %d background shapes, want 2 (adjacent equal spans merged)", got)
	}
	b, ok := elementsBounds(p.backgroundShapes.shapes[0].Elements())
	if !ok {
		t.Fatal("first background shape has no geometry")
	}
	if b.X != 0 || b.MaxX() != 32 {
		t.Errorf("merged shape spans x [%v,%v], want [0,32]", b.X, b.MaxX())
	}
}

func TestDecorationShapeCountSelfHeals(t *testing.T) {
	yellow := gg.RGBA{R: 1, G: 1, B: 0.6, A: 1}
	par := NewParagraph(
		StyledSpan{Text: "abcd", Style: SpanStyle{Background: &yellow}},
	)
	p := NewParagraphText(par, &fixedLayout{length: 4, cols: 20, cellW: 8, cellH: 16, boxW: 200, boxH: 16}, nil)

	p.Layout()
	if got := len(p.backgroundShapes.shapes); got != 1 {
		t.Fatalf("got %d background shapes, want 1", got)
	}
	first := p.backgroundShapes.shapes[0]

	// Later passes keep exactly one live shape and reuse its identity.
	p.RequestLayout()
	p.Layout()
	if got := len(p.backgroundShapes.shapes); got != 1 {
		t.Errorf("after second pass: %d background shapes, want 1", got)
	}
	if p.backgroundShapes.shapes[0] != first {
		t.Error("after second pass: shape identity was not reused")
	}
	if got := p.children.len(); got != 1 {
		t.Errorf("after second pass: %d children, want 1", got)
	}
}

func TestZOrderBands(t *testing.T) {
	yellow := gg.RGBA{R: 1, G: 1, B: 0.6, A: 1}
	red := gg.RGBA{R: 1, A: 1}

	par := NewParagraph(
		StyledSpan{Text: strings.Repeat("a", 8), Style: SpanStyle{
			Background: &yellow,
			Border:     &BorderStyle{Color: red, Width: 1},
			Underline:  &UnderlineStyle{Color: red, Width: 1},
		}},
	)
	textNode := &probeNode{}
	factory := func(span StyledSpan, start int) Node { return textNode }
	p := NewParagraphText(par, &fixedLayout{length: 8, cols: 20, cellW: 8, cellH: 16, boxW: 200, boxH: 16}, factory)

	s := NewSelection("primary")
	s.SetRange(0, 4)
	p.AddSelection(s)
	c := NewCaret("main")
	p.AddCaret(c)
	p.Layout()

	var order []Node
	p.children.each(func(n Node) bool {
		order = append(order, n)
		return true
	})
	if len(order) != 6 {
		t.Fatalf("got %d children, want 6", len(order))
	}

	// Back to front: background, selection, border, text, underline, caret.
	if _, ok := order[0].(*shapePath); !ok {
		t.Errorf("child 0: got %T, want background *shapePath", order[0])
	}
	if order[1] != Node(s) {
		t.Errorf("child 1: got %T, want the selection", order[1])
	}
	if _, ok := order[2].(*shapePath); !ok {
		t.Errorf("child 2: got %T, want border *shapePath", order[2])
	}
	if order[3] != Node(textNode) {
		t.Errorf("child 3: got %T, want the text node", order[3])
	}
	if _, ok := order[4].(*shapePath); !ok {
		t.Errorf("child 4: got %T, want underline *shapePath", order[4])
	}
	if order[5] != Node(c) {
		t.Errorf("child 5: got %T, want the caret", order[5])
	}
}

// probeNode is a minimal Node for factory and z-order tests.
type probeNode struct {
	origin gg.Point
}

func (n *probeNode) Elements() []gg.PathElement { return nil }
func (n *probeNode) Origin() gg.Point           { return n.origin }
func (n *probeNode) SetOrigin(p gg.Point)       { n.origin = p }
func (n *probeNode) Draw(*gg.Context) error     { return nil }

package richtext

import "github.com/gogpu/gg"

// Node is a drawable handle attached to a paragraph's child list. Carets,
// selections, pooled decoration shapes, and the text nodes produced by the
// paragraph's node factory all implement it.
type Node interface {
	// Elements returns the node's current path outline in local
	// coordinates. Text nodes may return nil.
	Elements() []gg.PathElement

	// Origin returns the node's layout origin within the paragraph box.
	Origin() gg.Point

	// SetOrigin moves the node's layout origin. The renderer rebinds every
	// child's origin to the paragraph insets on each layout pass.
	SetOrigin(gg.Point)

	// Draw renders the node onto the drawing context. The context's
	// transform already maps paragraph coordinates to device coordinates.
	Draw(dc *gg.Context) error
}

// band names one z-order slot in a paragraph's child list. Bands are drawn
// in declaration order, so later bands cover earlier ones.
type band int

const (
	bandBackground band = iota
	bandSelection
	bandBorder
	bandText
	bandUnderline
	bandCaret
	numBands
)

// childList is an explicit ordered child collection with fixed z-order
// bands. It replaces a scene graph's child-node list: membership doubles as
// the ownership check for geometry queries, and z-order is fixed per band
// instead of per insertion call.
type childList struct {
	bands [numBands][]Node
}

// push appends the node to the back (topmost position) of its band.
func (l *childList) push(b band, n Node) {
	l.bands[b] = append(l.bands[b], n)
}

// pushFront inserts the node at the front (bottommost position) of its band.
func (l *childList) pushFront(b band, n Node) {
	l.bands[b] = append([]Node{n}, l.bands[b]...)
}

// remove detaches the node from whichever band holds it. It reports whether
// the node was present.
func (l *childList) remove(n Node) bool {
	for b := range l.bands {
		for i, c := range l.bands[b] {
			if c == n {
				l.bands[b] = append(l.bands[b][:i], l.bands[b][i+1:]...)
				return true
			}
		}
	}
	return false
}

// contains reports whether the node is currently attached.
func (l *childList) contains(n Node) bool {
	for b := range l.bands {
		for _, c := range l.bands[b] {
			if c == n {
				return true
			}
		}
	}
	return false
}

// len returns the total number of attached nodes across all bands.
func (l *childList) len() int {
	total := 0
	for b := range l.bands {
		total += len(l.bands[b])
	}
	return total
}

// each visits every node back to front. Visiting stops if fn returns false.
func (l *childList) each(fn func(Node) bool) {
	for b := range l.bands {
		for _, c := range l.bands[b] {
			if !fn(c) {
				return
			}
		}
	}
}

// shapePath is a pooled decoration shape realized in the child list. One
// shapePath draws one merged same-attribute range as a fill or a stroke.
type shapePath struct {
	elements []gg.PathElement
	origin   gg.Point

	fill   gg.RGBA
	filled bool

	strokeColor gg.RGBA
	stroked     bool
	strokeWidth float64
	strokeType  StrokeType
	lineCap     gg.LineCap
	dash        []float64
}

func newShapePath() *shapePath {
	return &shapePath{}
}

func (s *shapePath) Elements() []gg.PathElement { return s.elements }
func (s *shapePath) Origin() gg.Point           { return s.origin }
func (s *shapePath) SetOrigin(p gg.Point)       { s.origin = p }

func (s *shapePath) Draw(dc *gg.Context) error {
	if len(s.elements) == 0 {
		return nil
	}
	dc.Push()
	defer dc.Pop()
	dc.Translate(s.origin.X, s.origin.Y)
	tracePath(dc, s.elements)
	if s.filled {
		dc.SetColor(s.fill.Color())
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	if s.stroked {
		dc.SetColor(s.strokeColor.Color())
		dc.SetLineWidth(s.strokeWidth)
		dc.SetLineCap(s.lineCap)
		if len(s.dash) > 0 {
			dc.SetDash(s.dash...)
		} else {
			dc.ClearDash()
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	dc.ClearPath()
	return nil
}

// configureFill makes the shape a plain fill with no stroke.
func (s *shapePath) configureFill(color gg.RGBA) {
	s.filled = true
	s.fill = color
	s.stroked = false
	s.strokeWidth = 0
	s.dash = nil
}

// configureStroke makes the shape a stroke with no fill.
func (s *shapePath) configureStroke(color gg.RGBA, width float64, t StrokeType, lineCap gg.LineCap, dash []float64) {
	s.filled = false
	s.stroked = true
	s.strokeColor = color
	s.strokeWidth = width
	s.strokeType = t
	s.lineCap = lineCap
	s.dash = dash
}

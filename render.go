package richtext

import "github.com/gogpu/gg"

// Draw renders the paragraph's children back to front onto the drawing
// context, forcing a layout pass first. The context's current transform
// maps paragraph coordinates to device coordinates; callers translate it to
// the paragraph's position before drawing.
func (p *ParagraphText) Draw(dc *gg.Context) error {
	p.Layout()
	var err error
	p.children.each(func(n Node) bool {
		err = n.Draw(dc)
		return err == nil
	})
	return err
}

// tracePath replays path elements onto a drawing context.
func tracePath(dc *gg.Context, elems []gg.PathElement) {
	for _, e := range elems {
		switch e := e.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

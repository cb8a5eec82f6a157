package richtext

// Option configures a ParagraphText during creation.
type Option func(*ParagraphText)

// WithInsets sets the padding between the paragraph's outer box and its
// text content. All child shapes are positioned relative to the content
// origin (left inset, top inset).
func WithInsets(in Insets) Option {
	return func(p *ParagraphText) {
		p.insets = in
	}
}

// WithScreenOffset sets the initial screen-space position of the
// paragraph's outer box, used by the *OnScreen queries. The host can move
// it later with [ParagraphText.SetScreenOffset].
func WithScreenOffset(x, y float64) Option {
	return func(p *ParagraphText) {
		p.screenOffset.X = x
		p.screenOffset.Y = y
	}
}

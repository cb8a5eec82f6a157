// Command richtext-demo renders a styled, wrapped paragraph with a
// selection highlight and two carets to a PNG.
package main

import (
	"flag"
	"log"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/layout/gotext"
)

const fontSize = 22

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 240, "image height")
		output = flag.String("output", "richtext.png", "output file")
	)
	flag.Parse()

	par := buildParagraph()

	face, err := gotext.ParseFont(lmroman10regular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	layout, err := gotext.New(par.Text(), face, fontSize, gotext.WithMaxWidth(560))
	if err != nil {
		log.Fatalf("Failed to lay out paragraph: %v", err)
	}

	source, err := ggtext.NewFontSource(lmroman10regular.TTF)
	if err != nil {
		log.Fatalf("Failed to load font source: %v", err)
	}
	defer func() { _ = source.Close() }()

	factory := func(span richtext.StyledSpan, start int) richtext.Node {
		return &spanNode{span: span, start: start, layout: layout, face: source.Face(fontSize)}
	}
	p := richtext.NewParagraphText(par, layout, factory,
		richtext.WithInsets(richtext.Insets{Left: 40, Top: 40, Right: 40, Bottom: 40}))

	sel := richtext.NewSelection("demo")
	p.AddSelection(sel)
	sel.SetRange(4, 26)

	caret := richtext.NewCaret("primary")
	caret.SetWidth(2)
	p.AddCaret(caret)
	caret.SetPos(26)

	second := richtext.NewCaret("secondary")
	second.SetColor(gg.RGBA{R: 0.8, G: 0.1, B: 0.1, A: 1})
	second.SetWidth(2)
	p.AddCaret(second)
	second.SetPos(48)

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.White)
	if err := p.Draw(dc); err != nil {
		log.Fatalf("Failed to draw paragraph: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildParagraph() *richtext.Paragraph {
	yellow := gg.RGBA{R: 1, G: 0.95, B: 0.6, A: 1}
	red := gg.RGBA{R: 0.8, G: 0.1, B: 0.1, A: 1}
	blue := gg.RGBA{R: 0.15, G: 0.3, B: 0.8, A: 1}
	return richtext.NewParagraph(
		richtext.StyledSpan{Text: "The quick brown fox "},
		richtext.StyledSpan{
			Text:  "jumps over",
			Style: richtext.SpanStyle{Background: &yellow},
		},
		richtext.StyledSpan{
			Text: " the lazy dog while ",
			Style: richtext.SpanStyle{
				Underline: &richtext.UnderlineStyle{Color: red, Width: 1.5},
			},
		},
		richtext.StyledSpan{
			Text: "nobody watches",
			Style: richtext.SpanStyle{
				Border: &richtext.BorderStyle{Color: blue, Width: 1, Type: richtext.StrokeCentered},
			},
		},
		richtext.StyledSpan{Text: " from the porch."},
	)
}

// spanNode draws one styled span's text, split across the visual lines it
// occupies, at the layout's baselines.
type spanNode struct {
	span   richtext.StyledSpan
	start  int
	layout *gotext.Layout
	face   ggtext.Face
	origin gg.Point
}

func (n *spanNode) Elements() []gg.PathElement { return nil }
func (n *spanNode) Origin() gg.Point           { return n.origin }
func (n *spanNode) SetOrigin(p gg.Point)       { n.origin = p }

func (n *spanNode) Draw(dc *gg.Context) error {
	dc.SetFont(n.face)
	dc.SetColor(gg.Black.Color())

	end := n.start + n.span.Length()
	for li := n.layout.LineForChar(n.start); li < n.layout.LineCount(); li++ {
		segStart := max(n.start, n.layout.LineStart(li))
		segEnd := min(end, n.layout.LineEnd(li))
		if segStart >= segEnd {
			break
		}
		runes := []rune(n.layout.LineText(li))
		text := string(runes[segStart-n.layout.LineStart(li) : segEnd-n.layout.LineStart(li)])
		x := n.origin.X + n.layout.CharX(segStart)
		y := n.origin.Y + n.layout.LineBaseline(li)
		dc.DrawString(text, x, y)
	}
	return nil
}

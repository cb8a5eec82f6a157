// Package richtext renders a single paragraph of styled, wrapped text for
// text-editing widgets in the GoGPU ecosystem.
//
// # Overview
//
// richtext turns logical character ranges into drawable path outlines and
// keeps those outlines in sync with live sets of carets and selections and
// with the paragraph's line-wrapping geometry. It draws, back to front:
// per-run background fills, selection highlights, per-run borders, the text
// itself, per-run underlines, and carets.
//
// The package does not lay text out. Line geometry comes from a [TextLayout]
// implementation; layout/gotext provides one backed by go-text/typesetting,
// and tests can use any deterministic stub.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/richtext"
//	)
//
//	par := richtext.NewParagraph(
//	    richtext.StyledSpan{Text: "hello ", Style: richtext.SpanStyle{}},
//	    richtext.StyledSpan{Text: "world", Style: richtext.SpanStyle{
//	        Background: &gg.RGBA{R: 1, G: 1, B: 0.6, A: 1},
//	    }},
//	)
//	pt := richtext.NewParagraphText(par, layout, nodeFactory)
//
//	caret := richtext.NewCaret("main")
//	caret.SetPos(3)
//	pt.AddCaret(caret)
//
//	pt.Layout()
//	pt.Draw(dc) // dc is a *gg.Context
//
// # Concurrency
//
// richtext is single-threaded: every operation must run on the host
// widget's UI thread. Geometry recomputation is synchronous
// within a layout pass, and queries force a pass before answering.
package richtext

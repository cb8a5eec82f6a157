// Package gotext implements richtext.TextLayout on top of
// go-text/typesetting.
//
// Text is shaped with the HarfBuzz shaper, greedily wrapped to a maximum
// width at word boundaries (falling back to character boundaries for words
// wider than a line), and the resulting per-rune advance table answers every
// line-geometry query: visual line lookup, range outlines, caret shapes, and
// underline segments.
//
// Positions inside a ligature cluster snap to the cluster start, the same
// compromise most editors make.
package gotext

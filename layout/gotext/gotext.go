package gotext

import (
	"bytes"
	"fmt"
	"math"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/richtext"
)

// line is one visual line of the layout.
type line struct {
	// start and end are rune offsets [start, end) into the paragraph.
	start, end int
	// xs holds end-start+1 boundary positions in logical order: xs[i] is
	// the pen position before rune start+i, xs[end-start] the line width.
	xs []float64
	// top is the y coordinate of the line's upper edge.
	top float64
}

func (ln *line) width() float64 {
	return ln.xs[len(ln.xs)-1]
}

// Layout is the shaped and wrapped geometry of one paragraph. It implements
// richtext.TextLayout. A Layout is immutable once built; rebuild it when the
// text or the wrap width changes.
type Layout struct {
	runes []rune
	lines []line

	lineHeight float64
	ascent     float64
	descent    float64

	width  float64
	height float64
	rtl    bool
}

var _ richtext.TextLayout = (*Layout)(nil)

// ParseFont parses TTF/OTF font data into a face usable with New.
func ParseFont(data []byte) (*font.Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: parse font: %w", err)
	}
	return face, nil
}

// New shapes and wraps text at the given font size and returns its layout.
func New(text string, face *font.Face, size float64, opts ...Option) (*Layout, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Layout{runes: []rune(text)}

	dir := di.DirectionLTR
	if len(l.runes) > 0 {
		dir = baseDirection(text)
	}
	l.rtl = dir == di.DirectionRTL

	// Shape a single space for an empty paragraph so line metrics are
	// still available; the advance table itself goes unused.
	measure := l.runes
	if len(measure) == 0 {
		measure = []rune{' '}
	}
	advances, bounds := shapeAdvances(measure, face, size, dir, o.language)
	l.ascent = fixedToFloat(bounds.Ascent)
	l.descent = math.Abs(fixedToFloat(bounds.Descent))
	gap := math.Abs(fixedToFloat(bounds.Gap))
	l.lineHeight = (l.ascent + l.descent + gap) * o.lineSpacing

	l.buildLines(advances, o.maxWidth)

	l.width = o.maxWidth
	if l.width <= 0 {
		for i := range l.lines {
			l.width = max(l.width, l.lines[i].width())
		}
	}
	l.height = float64(len(l.lines)) * l.lineHeight
	return l, nil
}

// shapeAdvances shapes the whole rune slice as one run and returns the
// advance of each rune plus the font's line bounds. Glyphs are mapped back
// to runes through their cluster index; a multi-rune cluster contributes its
// whole advance to the cluster's first rune.
func shapeAdvances(runes []rune, face *font.Face, size float64, dir di.Direction, lang string) ([]float64, shaping.Bounds) {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(lang),
	}
	shaper := &shaping.HarfbuzzShaper{}
	output := shaper.Shape(input)

	advances := make([]float64, len(runes))
	for _, g := range output.Glyphs {
		cluster := g.TextIndex()
		if cluster < 0 || cluster >= len(advances) {
			continue
		}
		advances[cluster] += fixedToFloat(g.Advance)
	}
	return advances, output.LineBounds
}

// buildLines greedily wraps the advance table to maxWidth. Breaks happen
// after the last space on the line when possible, otherwise before the rune
// that overflows (character fallback for words wider than a line).
func (l *Layout) buildLines(advances []float64, maxWidth float64) {
	type span struct{ start, end int }
	var spans []span

	start := 0
	lineWidth := 0.0
	lastBreak := -1
	for i := range l.runes {
		lineWidth += advances[i]
		if maxWidth > 0 && lineWidth > maxWidth && i > start {
			br := i
			if lastBreak >= start {
				br = lastBreak + 1
			}
			spans = append(spans, span{start, br})
			start = br
			lastBreak = -1
			lineWidth = 0
			for j := start; j <= i; j++ {
				lineWidth += advances[j]
			}
		}
		if unicode.IsSpace(l.runes[i]) {
			lastBreak = i
		}
	}
	spans = append(spans, span{start, len(l.runes)})

	l.lines = make([]line, len(spans))
	for i, sp := range spans {
		ln := line{
			start: sp.start,
			end:   sp.end,
			top:   float64(i) * l.lineHeight,
			xs:    make([]float64, sp.end-sp.start+1),
		}
		x := 0.0
		for j := sp.start; j < sp.end; j++ {
			ln.xs[j-sp.start] = x
			x += advances[j]
		}
		ln.xs[sp.end-sp.start] = x
		l.lines[i] = ln
	}
}

// baseDirection resolves the paragraph's base direction from its first
// strong directional run.
func baseDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

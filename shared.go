package richtext

// sharedRange pairs one decoration's attributes with the contiguous rune
// range it covers. Ranges are accumulated during a layout pass and consumed
// by the same pass; they are never retained across paragraphs or passes.
type sharedRange struct {
	attrs      DecorationAttributes
	start, end int
}

// sharedShapeHelper coalesces consecutive same-attribute runs into minimal
// ranges and reconciles the realized shapes against them. Each decoration
// kind owns its own helper; behavior specific to the kind (how a shape is
// created, configured, and where it is inserted) is injected as functions.
type sharedShapeHelper struct {
	ranges []sharedRange
	shapes []*shapePath

	equal     func(a, b DecorationAttributes) bool
	create    func() *shapePath
	configure func(s *shapePath, r sharedRange)
	attach    func(s *shapePath)
	release   func(unused []*shapePath)
}

// updateSharedRange records that runs [start, end) carry the given
// attributes. Called once per styled run, left to right, in original run
// order. Consecutive calls whose range continues the previous one with equal
// attributes extend that range; anything else starts a new range.
func (h *sharedShapeHelper) updateSharedRange(attrs DecorationAttributes, start, end int) {
	if n := len(h.ranges); n > 0 {
		last := &h.ranges[n-1]
		if start == last.end && h.equal(last.attrs, attrs) {
			last.end = end
			return
		}
	}
	h.ranges = append(h.ranges, sharedRange{attrs: attrs, start: start, end: end})
}

// updateShapes reconciles the realized shapes against the accumulated
// ranges: surplus shapes are released, missing ones created and attached,
// and every remaining shape reconfigured in place. Reusing shape identities
// when the counts match keeps rendering stable across passes. The range
// list is cleared afterwards.
func (h *sharedShapeHelper) updateShapes() {
	needed := len(h.ranges)
	available := len(h.shapes)

	switch {
	case needed < available:
		unused := h.shapes[needed:]
		h.release(unused)
		for i := range unused {
			unused[i] = nil
		}
		h.shapes = h.shapes[:needed]
	case available < needed:
		for i := available; i < needed; i++ {
			s := h.create()
			h.shapes = append(h.shapes, s)
			h.attach(s)
		}
	}

	for i, r := range h.ranges {
		h.configure(h.shapes[i], r)
	}

	h.ranges = h.ranges[:0]
}

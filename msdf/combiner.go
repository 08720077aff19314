package msdf

// EdgeSelector is implemented by each of the four selector families in
// selector.go. D is the selector's per-sample result type: SignedDistance
// for true/perpendicular distance, MultiDistance or MultiAndTrueDistance
// for the multi-channel variants.
type EdgeSelector[D any] interface {
	Reset(origin Point)
	AddEdge(e *Edge)
	Distance() D
}

// SelectorFactory builds a fresh selector; the combiner calls Reset on it
// immediately after construction, once per contour (Simple) or once per
// Combine call (Overlapping).
type SelectorFactory[D any] func() EdgeSelector[D]

// SimpleContourCombiner computes a shape-wide distance by running one
// selector per contour and folding the per-contour results with merge. It
// makes no attempt to resolve ambiguity from overlapping or nested
// contours under the non-zero fill rule; OverlappingContourCombiner does.
type SimpleContourCombiner[D any] struct {
	newSelector SelectorFactory[D]
	merge       func(a, b D) D
}

// NewSimpleContourCombiner returns a combiner using newSelector to build
// one selector per contour and merge to fold per-contour results.
func NewSimpleContourCombiner[D any](newSelector SelectorFactory[D], merge func(a, b D) D) *SimpleContourCombiner[D] {
	return &SimpleContourCombiner[D]{newSelector: newSelector, merge: merge}
}

// Combine returns the shape-wide distance at origin.
func (c *SimpleContourCombiner[D]) Combine(shape *Shape, origin Point) D {
	var result D
	has := false
	for _, contour := range shape.Contours {
		sel := c.newSelector()
		sel.Reset(origin)
		for i := range contour.Edges {
			sel.AddEdge(&contour.Edges[i])
		}
		d := sel.Distance()
		if !has {
			result = d
			has = true
		} else {
			result = c.merge(result, d)
		}
	}
	return result
}

// OverlappingContourCombiner adds a scanline-based sign correction on
// top of Simple so shapes with overlapping or self-intersecting
// contours are rendered by the non-zero winding rule: a single selector
// is run over every edge of every contour (Simple instead runs one per
// contour and merges the results), and the
// result's sign is flipped when it disagrees with the shape's actual
// fill state at origin under the non-zero rule. The scanline behind
// that fill test is cached and only rebuilt when origin.Y changes,
// which the generator's serpentine row traversal guarantees happens
// once per row rather than once per pixel.
type OverlappingContourCombiner[D any] struct {
	newSelector SelectorFactory[D]
	resolve     func(D) float64
	negate      func(D) D

	haveY    bool
	cachedY  float64
	scanline *Scanline
}

// NewOverlappingContourCombiner returns a combiner using newSelector to
// build the shared selector, resolve to extract the scalar used for the
// filled-vs-sign comparison (Distance for SignedDistance, Representative
// for the multi-channel types), and negate to flip every scalar channel
// of a result, including the true-distance alpha of MultiAndTrueDistance.
func NewOverlappingContourCombiner[D any](newSelector SelectorFactory[D], resolve func(D) float64, negate func(D) D) *OverlappingContourCombiner[D] {
	return &OverlappingContourCombiner[D]{newSelector: newSelector, resolve: resolve, negate: negate}
}

// Combine returns the shape-wide, sign-corrected distance at origin.
func (c *OverlappingContourCombiner[D]) Combine(shape *Shape, origin Point) D {
	if !c.haveY || origin.Y != c.cachedY {
		c.scanline = shape.ScanlineAt(origin.Y)
		c.cachedY = origin.Y
		c.haveY = true
	}

	sel := c.newSelector()
	sel.Reset(origin)
	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			sel.AddEdge(&contour.Edges[i])
		}
	}
	d := sel.Distance()

	filled := c.scanline.Filled(origin.X)
	if filled == (c.resolve(d) < 0) {
		return d
	}
	return c.negate(d)
}

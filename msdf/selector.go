package msdf

// TrueDistanceSelector accumulates the ordering-minimum SignedDistance
// over a stream of edges, ignoring color. It backs GenerateSDF.
type TrueDistanceSelector struct {
	origin Point
	best   SignedDistance
}

// NewTrueDistanceSelector returns a selector reset to origin.
func NewTrueDistanceSelector(origin Point) *TrueDistanceSelector {
	s := &TrueDistanceSelector{}
	s.Reset(origin)
	return s
}

// Reset starts a fresh accumulation around origin.
func (s *TrueDistanceSelector) Reset(origin Point) {
	s.origin = origin
	s.best = InfiniteDistance()
}

// AddEdge folds one edge's candidate distance into the running minimum.
func (s *TrueDistanceSelector) AddEdge(e *Edge) {
	d, t := e.SignedDistance(s.origin)
	_ = t
	s.best = s.best.Closer(d)
}

// Distance returns the accumulated result.
func (s *TrueDistanceSelector) Distance() SignedDistance { return s.best }

// Merge combines two true-distance outputs, keeping the closer one.
func (s *TrueDistanceSelector) Merge(a, b SignedDistance) SignedDistance { return a.Closer(b) }

// PerpendicularDistanceSelector is TrueDistanceSelector but converts
// every candidate through Edge.PerpendicularDistance before comparing,
// unifying the field across convex corners. It backs GeneratePSDF.
type PerpendicularDistanceSelector struct {
	origin Point
	best   SignedDistance
}

// NewPerpendicularDistanceSelector returns a selector reset to origin.
func NewPerpendicularDistanceSelector(origin Point) *PerpendicularDistanceSelector {
	s := &PerpendicularDistanceSelector{}
	s.Reset(origin)
	return s
}

// Reset starts a fresh accumulation around origin.
func (s *PerpendicularDistanceSelector) Reset(origin Point) {
	s.origin = origin
	s.best = InfiniteDistance()
}

// AddEdge folds one edge's perpendicular-converted distance into the
// running minimum.
func (s *PerpendicularDistanceSelector) AddEdge(e *Edge) {
	d, t := e.SignedDistance(s.origin)
	d = e.PerpendicularDistance(d, s.origin, t)
	s.best = s.best.Closer(d)
}

// Distance returns the accumulated result.
func (s *PerpendicularDistanceSelector) Distance() SignedDistance { return s.best }

// Merge combines two perpendicular-distance outputs, keeping the closer.
func (s *PerpendicularDistanceSelector) Merge(a, b SignedDistance) SignedDistance {
	return a.Closer(b)
}

// MultiDistanceSelector accumulates three independent minima, one per
// RGB channel: AddEdge updates channel X only when the edge's color
// contains X. It backs GenerateMSDF.
type MultiDistanceSelector struct {
	origin Point
	r, g, b SignedDistance
}

// NewMultiDistanceSelector returns a selector reset to origin.
func NewMultiDistanceSelector(origin Point) *MultiDistanceSelector {
	s := &MultiDistanceSelector{}
	s.Reset(origin)
	return s
}

// Reset starts a fresh accumulation around origin.
func (s *MultiDistanceSelector) Reset(origin Point) {
	s.origin = origin
	s.r = InfiniteDistance()
	s.g = InfiniteDistance()
	s.b = InfiniteDistance()
}

// AddEdge folds one edge's candidate distance into every channel its
// color includes.
func (s *MultiDistanceSelector) AddEdge(e *Edge) {
	if e.Color == ColorBlack {
		return
	}
	d, t := e.SignedDistance(s.origin)
	if e.Color.HasRed() {
		s.r = s.r.Closer(d)
	}
	if e.Color.HasGreen() {
		s.g = s.g.Closer(d)
	}
	if e.Color.HasBlue() {
		s.b = s.b.Closer(d)
	}
	_ = t
}

// Distance returns the accumulated three-channel result.
func (s *MultiDistanceSelector) Distance() MultiDistance {
	return MultiDistance{R: s.r.Distance, G: s.g.Distance, B: s.b.Distance}
}

// Merge combines two multi-channel outputs, taking the smaller |value|
// per channel independently.
func (s *MultiDistanceSelector) Merge(a, b MultiDistance) MultiDistance {
	return MultiDistance{
		R: closerScalar(a.R, b.R),
		G: closerScalar(a.G, b.G),
		B: closerScalar(a.B, b.B),
	}
}

func closerScalar(a, b float64) float64 {
	if absf(a) <= absf(b) {
		return a
	}
	return b
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// MultiAndTrueDistanceSelector is a MultiDistanceSelector plus a fourth
// accumulator, A, that is updated on every AddEdge regardless of color.
// It backs GenerateMTSDF.
type MultiAndTrueDistanceSelector struct {
	inner MultiDistanceSelector
	a     SignedDistance
}

// NewMultiAndTrueDistanceSelector returns a selector reset to origin.
func NewMultiAndTrueDistanceSelector(origin Point) *MultiAndTrueDistanceSelector {
	s := &MultiAndTrueDistanceSelector{}
	s.Reset(origin)
	return s
}

// Reset starts a fresh accumulation around origin.
func (s *MultiAndTrueDistanceSelector) Reset(origin Point) {
	s.inner.Reset(origin)
	s.a = InfiniteDistance()
}

// AddEdge updates the three color channels as MultiDistanceSelector
// does, and unconditionally folds the candidate into the true-distance
// channel A.
func (s *MultiAndTrueDistanceSelector) AddEdge(e *Edge) {
	s.inner.AddEdge(e)
	d, _ := e.SignedDistance(s.inner.origin)
	s.a = s.a.Closer(d)
}

// Distance returns the accumulated four-channel result.
func (s *MultiAndTrueDistanceSelector) Distance() MultiAndTrueDistance {
	m := s.inner.Distance()
	return MultiAndTrueDistance{R: m.R, G: m.G, B: m.B, A: s.a.Distance}
}

// Merge combines two MTSDF outputs channel-wise.
func (s *MultiAndTrueDistanceSelector) Merge(a, b MultiAndTrueDistance) MultiAndTrueDistance {
	return MultiAndTrueDistance{
		R: closerScalar(a.R, b.R),
		G: closerScalar(a.G, b.G),
		B: closerScalar(a.B, b.B),
		A: closerScalar(a.A, b.A),
	}
}

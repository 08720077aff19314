package msdf

import (
	"math"
	"testing"
)

// TestEdgeEndpointDistanceIsNearZero checks that every edge's own
// endpoints lie (within tolerance) on that edge's zero level set.
func TestEdgeEndpointDistanceIsNearZero(t *testing.T) {
	edges := []Edge{
		NewLinearEdge(Point{0, 0}, Point{10, 3}),
		NewQuadraticEdge(Point{0, 0}, Point{5, 10}, Point{10, 0}),
		NewCubicEdge(Point{0, 0}, Point{3, 10}, Point{7, -10}, Point{10, 0}),
	}
	const eps = 1e-6
	for i := range edges {
		e := &edges[i]
		for _, p := range []Point{e.StartPoint(), e.EndPoint()} {
			sd, _ := e.SignedDistance(p)
			if math.Abs(sd.Distance) > eps {
				t.Errorf("%v.SignedDistance(endpoint %v).Distance = %v, want |.| <= %v", e.Type, p, sd.Distance, eps)
			}
		}
	}
}

// TestShapeNormalizeIdempotent checks normalize;normalize is equivalent
// to a single normalize, and leaves every contour with winding >= 0.
func TestShapeNormalizeIdempotent(t *testing.T) {
	s := NewShape()
	s.AddContour(square(0, 0, 10).Reverse())
	s.AddContour(square(20, 20, 5))

	s.Normalize(FlipNegativeWinding)
	firstPass := make([]float64, len(s.Contours))
	for i, c := range s.Contours {
		firstPass[i] = c.Winding()
		if firstPass[i] < 0 {
			t.Errorf("contour %d Winding() = %v after Normalize, want >= 0", i, firstPass[i])
		}
	}

	s.Normalize(FlipNegativeWinding)
	for i, c := range s.Contours {
		if got := c.Winding(); got != firstPass[i] {
			t.Errorf("contour %d Winding() changed on second Normalize: %v -> %v", i, firstPass[i], got)
		}
	}
}

// TestScanlineWindingConvexRegion checks that for a convex filled
// region, Filled(x) agrees with straightforward inside/outside
// reasoning about a horizontal slice through it.
func TestScanlineWindingConvexRegion(t *testing.T) {
	shape := NewShape()
	shape.AddContour(square(0, 0, 10))

	sl := shape.ScanlineAt(5)
	tests := []struct {
		x      float64
		inside bool
	}{
		{-1, false},
		{0.5, true},
		{5, true},
		{9.5, true},
		{11, false},
	}
	for _, tt := range tests {
		if got := sl.Filled(tt.x); got != tt.inside {
			t.Errorf("Filled(%v) = %v, want %v", tt.x, got, tt.inside)
		}
	}
}

// TestScanlineSymmetryEqualCrossingCounts checks that any finite closed
// contour crosses a scanline with an equal number of +1 and -1
// intersections, since the contour must return to where it started.
func TestScanlineSymmetryEqualCrossingCounts(t *testing.T) {
	shapes := []*Shape{
		func() *Shape { s := NewShape(); s.AddContour(square(0, 0, 10)); return s }(),
		func() *Shape {
			s := NewShape()
			s.AddContour(square(0, 0, 20))
			s.AddContour(square(5, 5, 10).Reverse())
			return s
		}(),
	}
	for i, shape := range shapes {
		for _, level := range []float64{2.5, 5, 7.5, 10} {
			pos, neg := 0, 0
			for _, c := range shape.Contours {
				for j := range c.Edges {
					for _, cr := range c.Edges[j].ScanlineIntersections(level) {
						switch cr.Direction {
						case 1:
							pos++
						case -1:
							neg++
						}
					}
				}
			}
			if pos != neg {
				t.Errorf("shape %d at y=%v: %d positive vs %d negative crossings, want equal", i, level, pos, neg)
			}
		}
	}
}

// TestColoringAdjacencyPopulationAtMostOne checks that after coloring,
// every pair of adjacent edges across a detected corner shares at most
// one channel; the smooth-contour half of the property is covered by
// TestColoringSmoothContourUniformColor.
func TestColoringAdjacencyPopulationAtMostOne(t *testing.T) {
	s := NewShape()
	s.AddContour(square(0, 0, 10))
	EdgeColoringSimple(s, DefaultEdgeColoringConfig())

	c := s.Contours[0]
	for i := range c.Edges {
		next := (i + 1) % len(c.Edges)
		if pop := (c.Edges[i].Color & c.Edges[next].Color).PopCount(); pop > 1 {
			t.Errorf("edges %d/%d share %d channels, want <= 1", i, next, pop)
		}
	}
}

func TestColoringSmoothContourUniformColor(t *testing.T) {
	// An eight-segment circle approximated with quadratic arcs has no
	// corners under the default threshold, so every edge must end up
	// the same non-black color.
	s := NewShape()
	c := NewContour()
	const n = 8
	for i := 0; i < n; i++ {
		a0 := 2 * math.Pi * float64(i) / n
		a1 := 2 * math.Pi * float64(i+1) / n
		aMid := (a0 + a1) / 2
		const r = 10
		p0 := Point{r * math.Cos(a0), r * math.Sin(a0)}
		p1 := Point{r * math.Cos(a1), r * math.Sin(a1)}
		// Push the quadratic control point out along the bisector so
		// the arc bulges outward, matching a real circle approximation.
		ctrl := Point{(r / math.Cos(math.Pi/n)) * math.Cos(aMid), (r / math.Cos(math.Pi/n)) * math.Sin(aMid)}
		c.AddEdge(NewQuadraticEdge(p0, ctrl, p1))
	}
	s.AddContour(c)
	EdgeColoringSimple(s, DefaultEdgeColoringConfig())

	first := c.Edges[0].Color
	if first == ColorBlack {
		t.Fatal("smooth contour left uncolored (Black)")
	}
	for i, e := range c.Edges {
		if e.Color != first {
			t.Errorf("edge %d color = %v, want %v (uniform smooth contour)", i, e.Color, first)
		}
	}
}

// TestGeneratorDeterminism checks that generating the same shape twice
// with the same configuration produces bitwise-identical output.
func TestGeneratorDeterminism(t *testing.T) {
	shape := unitSquareShape()
	gen := DefaultGenerator()

	a, err := gen.GenerateSDF(shape)
	if err != nil {
		t.Fatalf("first GenerateSDF: %v", err)
	}
	b, err := gen.GenerateSDF(shape)
	if err != nil {
		t.Fatalf("second GenerateSDF: %v", err)
	}
	if len(a.Data) != len(b.Data) {
		t.Fatalf("bitmap length changed between runs: %d vs %d", len(a.Data), len(b.Data))
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("sample %d differs between runs: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}

// TestGeneratorDeterminismAcrossFreshGenerators checks that determinism
// holds independent of generator instance reuse -- the output is a pure
// function of (shape, config), not of any hidden mutable state carried
// between calls, which is the externally observable form of traversal
// order not mattering.
func TestGeneratorDeterminismAcrossFreshGenerators(t *testing.T) {
	shape := unitSquareShape()
	cfg := DefaultGeneratorConfig()

	a, err := NewGenerator(cfg).GenerateSDF(shape)
	if err != nil {
		t.Fatalf("GenerateSDF (first generator): %v", err)
	}
	b, err := NewGenerator(cfg).GenerateSDF(shape)
	if err != nil {
		t.Fatalf("GenerateSDF (second generator): %v", err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("sample %d differs across independent generators: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}

// TestSignContinuityAtOutline checks that along a horizontal sweep
// through a shape, the generated SDF's sign (relative to the 0.5
// midpoint a mapped value represents) changes exactly where the sweep
// crosses the outline, not elsewhere.
func TestSignContinuityAtOutline(t *testing.T) {
	shape := NewShape()
	shape.AddContour(square(4, 4, 20))

	cfg := DefaultGeneratorConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Transformation = NewSDFTransformation(IdentityProjection(), NewDistanceMapping(SymmetricRange(4)))

	bmp, err := NewGenerator(cfg).GenerateSDF(shape)
	if err != nil {
		t.Fatalf("GenerateSDF: %v", err)
	}

	const row = 14 // well inside [4, 24], away from top/bottom edges
	transitions := 0
	prevHigh := bmp.At(0, row, 0) > 0.5
	for x := 1; x < 32; x++ {
		high := bmp.At(x, row, 0) > 0.5
		if high != prevHigh {
			transitions++
			// Every transition must land near one of the square's two
			// vertical edges (x=4 or x=24), within a one-pixel margin.
			if math.Abs(float64(x)-4) > 1.5 && math.Abs(float64(x)-24) > 1.5 {
				t.Errorf("unexpected sign transition at x=%d, not near either vertical edge", x)
			}
		}
		prevHigh = high
	}
	if transitions != 2 {
		t.Errorf("found %d sign transitions along the row, want exactly 2 (entering and leaving the square)", transitions)
	}
}

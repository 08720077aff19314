package msdf

import "math"

// EdgeType classifies an edge segment by its control-point arity.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota
	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic
	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Edge is a tagged variant over the three Bezier degrees the kernel
// supports. Dispatch on Type is total: every method below has a case for
// all three variants, there is no "unknown" fallthrough that matters.
type Edge struct {
	Type EdgeType

	// Points holds the control points. Linear uses [0:2], quadratic
	// [0:3], cubic all four; point(0) is always Points[0].
	Points [4]Point

	Color EdgeColor
}

// NewLinearEdge builds a line segment from start to end.
func NewLinearEdge(start, end Point) Edge {
	return Edge{Type: EdgeLinear, Points: [4]Point{start, end}, Color: ColorWhite}
}

// NewQuadraticEdge builds a quadratic Bezier segment.
func NewQuadraticEdge(start, control, end Point) Edge {
	return Edge{Type: EdgeQuadratic, Points: [4]Point{start, control, end}, Color: ColorWhite}
}

// NewCubicEdge builds a cubic Bezier segment.
func NewCubicEdge(start, c1, c2, end Point) Edge {
	return Edge{Type: EdgeCubic, Points: [4]Point{start, c1, c2, end}, Color: ColorWhite}
}

// StartPoint returns point(0).
func (e *Edge) StartPoint() Point { return e.Points[0] }

// EndPoint returns point(1).
func (e *Edge) EndPoint() Point {
	switch e.Type {
	case EdgeLinear:
		return e.Points[1]
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[0]
	}
}

// Point evaluates the curve at parameter t via explicit Bernstein /
// de Casteljau form.
func (e *Edge) Point(t float64) Point {
	switch e.Type {
	case EdgeLinear:
		return e.Points[0].Lerp(e.Points[1], t)
	case EdgeQuadratic:
		return bezierQuad(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return bezierCubic(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return e.Points[0]
	}
}

// Direction returns the first derivative at t. When the control points
// are collinear and the derivative vanishes exactly at an endpoint, it
// falls back to the chord direction rather than returning the zero
// vector: P1-P0 (linear, always exact), P2-P0 (quadratic), or P2-P0 at
// t=0 / P3-P1 at t=1 (cubic).
func (e *Edge) Direction(t float64) Point {
	switch e.Type {
	case EdgeLinear:
		return e.Points[1].Sub(e.Points[0])
	case EdgeQuadratic:
		d := bezierQuadDeriv(e.Points[0], e.Points[1], e.Points[2], t)
		if d.LengthSquared() == 0 {
			return e.Points[2].Sub(e.Points[0])
		}
		return d
	case EdgeCubic:
		d := bezierCubicDeriv(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
		if d.LengthSquared() == 0 {
			if t == 0 {
				return e.Points[2].Sub(e.Points[0])
			}
			return e.Points[3].Sub(e.Points[1])
		}
		return d
	default:
		return Point{1, 0}
	}
}

// DirectionChange returns the second derivative at t. The coloring
// algorithms' corner detector does not use it; it compares Direction
// values only.
func (e *Edge) DirectionChange(t float64) Point {
	switch e.Type {
	case EdgeLinear:
		return Point{}
	case EdgeQuadratic:
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		return p2.Sub(p1).Sub(p1.Sub(p0))
	case EdgeCubic:
		return bezierCubicSecondDeriv(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return Point{}
	}
}

// Bound returns the axis-aligned bounding box: endpoints extended by any
// real derivative roots (extrema) strictly inside (0,1).
func (e *Edge) Bound() Rect {
	switch e.Type {
	case EdgeLinear:
		return boundOf(e.Points[0], e.Points[1])
	case EdgeQuadratic:
		return e.quadraticBound()
	case EdgeCubic:
		return e.cubicBound()
	default:
		return Rect{}
	}
}

func boundOf(pts ...Point) Rect {
	r := Rect{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MaxX = max(r.MaxX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}

func (e *Edge) quadraticBound() Rect {
	p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
	r := boundOf(p0, p2)
	// X extrema.
	dx := p0.X - 2*p1.X + p2.X
	if math.Abs(dx) > 1e-12 {
		t := (p0.X - p1.X) / dx
		if t > 0 && t < 1 {
			x := bezierQuad(p0, p1, p2, t).X
			r.MinX, r.MaxX = min(r.MinX, x), max(r.MaxX, x)
		}
	}
	// Y extrema.
	dy := p0.Y - 2*p1.Y + p2.Y
	if math.Abs(dy) > 1e-12 {
		t := (p0.Y - p1.Y) / dy
		if t > 0 && t < 1 {
			y := bezierQuad(p0, p1, p2, t).Y
			r.MinY, r.MaxY = min(r.MinY, y), max(r.MaxY, y)
		}
	}
	return r
}

func (e *Edge) cubicBound() Rect {
	p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
	r := boundOf(p0, p3)

	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2 * (p0.X - 2*p1.X + p2.X)
	cx := p1.X - p0.X
	for _, t := range solveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			x := bezierCubic(p0, p1, p2, p3, t).X
			r.MinX, r.MaxX = min(r.MinX, x), max(r.MaxX, x)
		}
	}
	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2 * (p0.Y - 2*p1.Y + p2.Y)
	cy := p1.Y - p0.Y
	for _, t := range solveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			y := bezierCubic(p0, p1, p2, p3, t).Y
			r.MinY, r.MaxY = min(r.MinY, y), max(r.MaxY, y)
		}
	}
	return r
}

// Reverse returns the edge traversed in the opposite direction: point(t)
// of the result equals point(1-t) of e.
func (e *Edge) Reverse() Edge {
	r := *e
	switch e.Type {
	case EdgeLinear:
		r.Points[0], r.Points[1] = e.Points[1], e.Points[0]
	case EdgeQuadratic:
		r.Points[0], r.Points[2] = e.Points[2], e.Points[0]
	case EdgeCubic:
		r.Points[0], r.Points[3] = e.Points[3], e.Points[0]
		r.Points[1], r.Points[2] = e.Points[2], e.Points[1]
	}
	return r
}

// MoveStartPoint returns a copy of e with point(0) relocated to p.
func (e *Edge) MoveStartPoint(p Point) Edge {
	r := *e
	r.Points[0] = p
	return r
}

// MoveEndPoint returns a copy of e with point(1) relocated to p.
func (e *Edge) MoveEndPoint(p Point) Edge {
	r := *e
	switch e.Type {
	case EdgeLinear:
		r.Points[1] = p
	case EdgeQuadratic:
		r.Points[2] = p
	case EdgeCubic:
		r.Points[3] = p
	}
	return r
}

// SplitInThirds returns three edges whose concatenation reproduces e,
// obtained by de Casteljau subdivision at t=1/3 and t=2/3 (trivial for
// linear edges).
func (e *Edge) SplitInThirds() [3]Edge {
	var out [3]Edge
	switch e.Type {
	case EdgeLinear:
		p0, p1 := e.Points[0], e.Points[1]
		a := p0.Lerp(p1, 1.0/3)
		b := p0.Lerp(p1, 2.0/3)
		out = [3]Edge{NewLinearEdge(p0, a), NewLinearEdge(a, b), NewLinearEdge(b, p1)}
	case EdgeQuadratic:
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		a := p0.Lerp(p1, 1.0/3)
		b := p1.Lerp(p2, 1.0/3)
		m1 := a.Lerp(b, 1.0/3)
		a2 := p0.Lerp(p1, 2.0/3)
		b2 := p1.Lerp(p2, 2.0/3)
		m2 := a2.Lerp(b2, 2.0/3)
		midControl := a.Lerp(b, 2.0/3)
		out = [3]Edge{
			NewQuadraticEdge(p0, a, m1),
			NewQuadraticEdge(m1, midControl, m2),
			NewQuadraticEdge(m2, b2, p2),
		}
	case EdgeCubic:
		p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
		c1, m1, c2, m2, c3 := cubicThirds(p0, p1, p2, p3)
		out = [3]Edge{
			NewCubicEdge(p0, c1[0], c1[1], m1),
			NewCubicEdge(m1, c2[0], c2[1], m2),
			NewCubicEdge(m2, c3[0], c3[1], p3),
		}
	default:
		out = [3]Edge{*e, *e, *e}
	}
	for i := range out {
		out[i].Color = e.Color
	}
	return out
}

// cubicThirds performs exact repeated de Casteljau subdivision of a
// cubic Bezier at t=1/3 and t=2/3, returning the two control points and
// the endpoint for each of the three resulting segments.
func cubicThirds(p0, p1, p2, p3 Point) (c1 [2]Point, m1 Point, c2 [2]Point, m2 Point, c3 [2]Point) {
	split := func(a, b, c, d Point, t float64) (ab, abc, abcd, bcd, cd Point) {
		ab = a.Lerp(b, t)
		bc := b.Lerp(c, t)
		cd = c.Lerp(d, t)
		abc = ab.Lerp(bc, t)
		bcd = bc.Lerp(cd, t)
		abcd = abc.Lerp(bcd, t)
		return
	}
	ab, abc, abcd, bcd, cd := split(p0, p1, p2, p3, 1.0/3)
	c1 = [2]Point{ab, abc}
	m1 = abcd
	// The remaining curve from m1 to p3 has control points bcd, cd;
	// global t=2/3 is its local t=1/2.
	ab2, abc2, abcd2, bcd2, cd2 := split(m1, bcd, cd, p3, 0.5)
	c2 = [2]Point{ab2, abc2}
	m2 = abcd2
	c3 = [2]Point{bcd2, cd2}
	return
}

// bezierQuad evaluates a quadratic Bezier at t.
func bezierQuad(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// bezierCubic evaluates a cubic Bezier at t.
func bezierCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	u2, t2 := u*u, t*t
	return Point{
		u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

func bezierQuadDeriv(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		2*u*(p1.X-p0.X) + 2*t*(p2.X-p1.X),
		2*u*(p1.Y-p0.Y) + 2*t*(p2.Y-p1.Y),
	}
}

func bezierCubicDeriv(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

func bezierCubicSecondDeriv(p0, p1, p2, p3 Point, t float64) Point {
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

package msdf

import "math"

// cornerEndpointSnap is the tolerance (in parameter space) within which
// a winning t is treated as clamped to an endpoint for the purposes of
// PerpendicularDistance's convex-corner unification.
const cornerEndpointSnap = 1e-4

// SignedDistance finds t in [0,1] minimizing |Point(t) - p| and returns
// the signed distance at that point together with the winning t. Interior
// winners get Dot=0 and a sign taken from the tangent/offset cross
// product; endpoint winners get Dot = |tangent . offset|, both unit, and
// keep the endpoint's own sign.
func (e *Edge) SignedDistance(p Point) (SignedDistance, float64) {
	switch e.Type {
	case EdgeLinear:
		return e.linearSignedDistance(p)
	case EdgeQuadratic:
		return e.quadraticSignedDistance(p)
	case EdgeCubic:
		return e.cubicSignedDistance(p)
	default:
		return InfiniteDistance(), 0
	}
}

func signAt(tangent, offset Point) float64 {
	if tangent.Cross(offset) < 0 {
		return -1
	}
	return 1
}

func endpointDistance(tangent, offset Point) SignedDistance {
	dist := offset.Length() * signAt(tangent, offset)
	dot := math.Abs(tangent.NormalizedOrZero().Dot(offset.NormalizedOrZero()))
	return SignedDistance{Distance: dist, Dot: dot}
}

func (e *Edge) linearSignedDistance(p Point) (SignedDistance, float64) {
	p0, p1 := e.Points[0], e.Points[1]
	ab := p1.Sub(p0)
	ap := p.Sub(p0)
	abLenSq := ab.LengthSquared()
	if abLenSq == 0 {
		return endpointDistance(Point{1, 0}, ap), 0
	}
	t := ap.Dot(ab) / abLenSq
	if t > 0 && t < 1 {
		perp := ab.Orthogonal(1)
		offset := p.Sub(p0.Add(ab.Mul(t)))
		dist := offset.Length()
		if perp.Dot(ap) < 0 {
			dist = -dist
		}
		return SignedDistance{Distance: dist, Dot: 0}, t
	}
	if t <= 0 {
		return endpointDistance(ab, ap), t
	}
	return endpointDistance(ab, p.Sub(p1)), t
}

func (e *Edge) quadraticSignedDistance(p Point) (SignedDistance, float64) {
	p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]

	qa := p0.Sub(p)
	qb := p1.Sub(p0)
	qc := p2.Sub(p1).Sub(qb)

	// d|Q(t)-p|^2/dt = 0 expands to a cubic in t.
	c3 := qc.Dot(qc)
	c2 := 3 * qc.Dot(qb)
	c1 := 2*qb.Dot(qb) + qc.Dot(qa)
	c0 := qa.Dot(qb)

	roots := solveCubic(c3, c2, c1, c0)

	best := InfiniteDistance()
	bestT := 0.0

	consider := func(t float64) {
		var sd SignedDistance
		var dist Point
		if t <= 0 {
			dist = p.Sub(p0)
			tangent := e.Direction(0)
			sd = endpointDistance(tangent, dist)
			t = 0
		} else if t >= 1 {
			dist = p.Sub(p2)
			tangent := e.Direction(1)
			sd = endpointDistance(tangent, dist)
			t = 1
		} else {
			pt := bezierQuad(p0, p1, p2, t)
			offset := p.Sub(pt)
			tangent := bezierQuadDeriv(p0, p1, p2, t)
			s := offset.Length()
			if tangent.Cross(offset) < 0 {
				s = -s
			}
			sd = SignedDistance{Distance: s, Dot: 0}
		}
		if sd.Less(best) {
			best = sd
			bestT = t
		}
	}

	consider(0)
	consider(1)
	for _, t := range roots {
		if t > 0 && t < 1 {
			consider(t)
		}
	}

	return best, bestT
}

func (e *Edge) cubicSignedDistance(p Point) (SignedDistance, float64) {
	p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]

	best := InfiniteDistance()
	bestT := 0.0

	consider := func(t float64) {
		var sd SignedDistance
		if t <= 0 {
			sd = endpointDistance(e.Direction(0), p.Sub(p0))
			t = 0
		} else if t >= 1 {
			sd = endpointDistance(e.Direction(1), p.Sub(p3))
			t = 1
		} else {
			pt := bezierCubic(p0, p1, p2, p3, t)
			offset := p.Sub(pt)
			tangent := bezierCubicDeriv(p0, p1, p2, p3, t)
			s := offset.Length()
			if tangent.Cross(offset) < 0 {
				s = -s
			}
			sd = SignedDistance{Distance: s, Dot: 0}
		}
		if sd.Less(best) {
			best = sd
			bestT = t
		}
	}

	consider(0)
	consider(1)

	const seeds = 4
	for i := 0; i <= seeds; i++ {
		t0 := float64(i) / float64(seeds)
		if t, ok := newtonRefine(p0, p1, p2, p3, p, t0); ok {
			consider(t)
		}
	}

	return best, bestT
}

// newtonRefine runs up to 4 Newton iterations on
// <Q(t)-p, Q'(t)> = 0, seeded at t0. Returns false if a step carries t
// outside [0,1].
func newtonRefine(p0, p1, p2, p3, p Point, t0 float64) (float64, bool) {
	t := t0
	for i := 0; i < 4; i++ {
		pt := bezierCubic(p0, p1, p2, p3, t)
		q := pt.Sub(p)
		d1 := bezierCubicDeriv(p0, p1, p2, p3, t)
		d2 := bezierCubicSecondDeriv(p0, p1, p2, p3, t)

		denom := d1.Dot(d1) + q.Dot(d2)
		if denom == 0 {
			break
		}
		step := t - q.Dot(d1)/denom
		if step < 0 || step > 1 {
			return 0, false
		}
		t = step
	}
	return t, true
}

// PerpendicularDistance converts d, computed at parameter t against p,
// into the perpendicular-to-tangent variant used by PSDF: when t clamps
// to an endpoint, the signed distance to the tangent line at that
// endpoint replaces d if its magnitude is smaller. Linear edges are
// returned unchanged (their tangent line at either endpoint is the
// segment itself).
func (e *Edge) PerpendicularDistance(d SignedDistance, p Point, t float64) SignedDistance {
	if e.Type == EdgeLinear {
		return d
	}
	var tangent, anchor Point
	switch {
	case t <= cornerEndpointSnap:
		tangent = e.Direction(0)
		anchor = e.StartPoint()
	case t >= 1-cornerEndpointSnap:
		tangent = e.Direction(1)
		anchor = e.EndPoint()
	default:
		return d
	}
	offset := p.Sub(anchor)
	perp := tangent.Orthogonal(1).NormalizedOrZero()
	perpDist := perp.Dot(offset)
	if math.Abs(perpDist) < math.Abs(d.Distance) {
		return SignedDistance{Distance: perpDist, Dot: d.Dot}
	}
	return d
}

// ScanlineIntersections returns every crossing of this edge with the
// horizontal line y=level: the parameter t, the x coordinate, and the
// crossing direction (sign of dy/dt). Tangent grazings (dy/dt == 0) are
// reported with direction 0 so the caller (the Scanline type) can filter
// them out.
func (e *Edge) ScanlineIntersections(level float64) []ScanlineCrossing {
	switch e.Type {
	case EdgeLinear:
		return e.linearScanline(level)
	case EdgeQuadratic:
		return e.quadraticScanline(level)
	case EdgeCubic:
		return e.cubicScanline(level)
	default:
		return nil
	}
}

// ScanlineCrossing is one crossing of an edge with a horizontal line.
type ScanlineCrossing struct {
	T         float64
	X         float64
	Direction int
}

func (e *Edge) linearScanline(level float64) []ScanlineCrossing {
	p0, p1 := e.Points[0], e.Points[1]
	dy := p1.Y - p0.Y
	if dy == 0 {
		return nil
	}
	t := (level - p0.Y) / dy
	if t < 0 || t > 1 {
		return nil
	}
	dir := 1
	if dy < 0 {
		dir = -1
	}
	x := p0.X + t*(p1.X-p0.X)
	return []ScanlineCrossing{{T: t, X: x, Direction: dir}}
}

func (e *Edge) quadraticScanline(level float64) []ScanlineCrossing {
	p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
	a := p0.Y - 2*p1.Y + p2.Y
	b := 2 * (p1.Y - p0.Y)
	c := p0.Y - level
	roots := solveQuadratic(a, b, c)
	var out []ScanlineCrossing
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		dy := bezierQuadDeriv(p0, p1, p2, t).Y
		if dy == 0 {
			out = append(out, ScanlineCrossing{T: t, X: bezierQuad(p0, p1, p2, t).X, Direction: 0})
			continue
		}
		dir := 1
		if dy < 0 {
			dir = -1
		}
		out = append(out, ScanlineCrossing{T: t, X: bezierQuad(p0, p1, p2, t).X, Direction: dir})
	}
	return out
}

func (e *Edge) cubicScanline(level float64) []ScanlineCrossing {
	p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
	a := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	b := 3 * (p0.Y - 2*p1.Y + p2.Y)
	c := 3 * (p1.Y - p0.Y)
	d := p0.Y - level
	roots := solveCubic(a, b, c, d)
	var out []ScanlineCrossing
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		dy := bezierCubicDeriv(p0, p1, p2, p3, t).Y
		if dy == 0 {
			out = append(out, ScanlineCrossing{T: t, X: bezierCubic(p0, p1, p2, p3, t).X, Direction: 0})
			continue
		}
		dir := 1
		if dy < 0 {
			dir = -1
		}
		out = append(out, ScanlineCrossing{T: t, X: bezierCubic(p0, p1, p2, p3, t).X, Direction: dir})
	}
	return out
}

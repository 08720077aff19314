package msdf

import "math"

// Point is a 2-D real vector. It plays both roles the geometry kernel
// needs -- position and direction -- the distinction is purely in how a
// caller uses it, not in the type.
type Point struct {
	X, Y float64
}

// Pt is a short constructor, handy in test tables and literal shapes.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the 3-D cross product of p and q,
// treating both as vectors in the z=0 plane. Positive when q is
// counter-clockwise from p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// LengthSquared avoids the square root when only comparison is needed.
func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Normalized returns a unit vector in the direction of p. The zero
// vector normalizes to the +X axis so that callers relying on a tangent
// direction never receive NaN; NormalizedOrZero is available for callers
// that need the true zero-vector behavior instead.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return Point{1, 0}
	}
	return Point{p.X / l, p.Y / l}
}

// NormalizedOrZero is like Normalized but returns the true zero vector
// instead of an axis fallback when p has zero length.
func (p Point) NormalizedOrZero() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Orthogonal returns p rotated by 90 degrees. Counter-clockwise unless
// polarity is negative.
func (p Point) Orthogonal(polarity float64) Point {
	if polarity < 0 {
		return Point{p.Y, -p.X}
	}
	return Point{-p.Y, p.X}
}

// ComponentMul returns p with each axis independently scaled by the
// matching axis of q, used by Projection to apply a non-uniform scale.
func (p Point) ComponentMul(q Point) Point { return Point{p.X * q.X, p.Y * q.Y} }

// ComponentDiv is the inverse of ComponentMul.
func (p Point) ComponentDiv(q Point) Point { return Point{p.X / q.X, p.Y / q.Y} }

// Lerp returns the point at parameter t between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Angle returns the angle of p in radians, in (-pi, pi].
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// AngleBetween returns the unsigned angle between two vectors, in [0, pi].
func AngleBetween(a, b Point) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle has non-positive area.
func (r Rect) IsEmpty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies within r, inclusive of the border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Expand returns r grown by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r.MinX - margin, r.MinY - margin, r.MaxX + margin, r.MaxY + margin}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

package msdf

// Contour is an ordered, cyclically-closed sequence of edges: point(1)
// of edge i is expected to equal point(0) of edge (i+1) mod n, within
// numerical tolerance. Closure is enforced by the caller that builds the
// contour, not checked here.
type Contour struct {
	Edges []Edge
}

// NewContour returns an empty contour.
func NewContour() *Contour { return &Contour{} }

// AddEdge appends an edge.
func (c *Contour) AddEdge(e Edge) { c.Edges = append(c.Edges, e) }

// Bound returns the union of every edge's bounding box.
func (c *Contour) Bound() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}
	r := c.Edges[0].Bound()
	for i := 1; i < len(c.Edges); i++ {
		r = r.Union(c.Edges[i].Bound())
	}
	return r
}

// Winding estimates the contour's orientation via the shoelace sum over
// edge endpoints: +1 counter-clockwise, -1 clockwise, 0 degenerate.
func (c *Contour) Winding() float64 {
	switch {
	case c.SignedArea() > 0:
		return 1
	case c.SignedArea() < 0:
		return -1
	default:
		return 0
	}
}

// SignedArea returns the raw shoelace sum (positive for CCW), which
// Winding reduces to a sign.
func (c *Contour) SignedArea() float64 {
	var area float64
	for i := range c.Edges {
		p0 := c.Edges[i].StartPoint()
		p1 := c.Edges[i].EndPoint()
		area += p0.Cross(p1)
	}
	return area / 2
}

// Reverse returns a new contour tracing the same outline in the opposite
// direction: each edge is individually reversed and the edge order is
// flipped. Reversing negates Winding exactly.
func (c *Contour) Reverse() *Contour {
	n := len(c.Edges)
	r := &Contour{Edges: make([]Edge, n)}
	for i, e := range c.Edges {
		r.Edges[n-1-i] = e.Reverse()
	}
	return r
}

// Clone returns a deep copy of the contour.
func (c *Contour) Clone() *Contour {
	r := &Contour{Edges: make([]Edge, len(c.Edges))}
	copy(r.Edges, c.Edges)
	return r
}

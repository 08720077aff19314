package msdf

// YAxisOrientation records whether a Shape's Y axis points away from the
// origin mathematically (upward) or the way raster image rows are
// numbered (downward). The generator does not read it: output row y
// always samples pixel-space y+0.5, whichever orientation is set.
type YAxisOrientation int

const (
	// YAxisUpward is the mathematical convention: increasing Y goes up.
	YAxisUpward YAxisOrientation = iota
	// YAxisDownward is the image convention: increasing Y goes down.
	YAxisDownward
)

// Shape is an ordered sequence of contours plus the axis convention its
// coordinates were authored in.
type Shape struct {
	Contours       []*Contour
	YAxis          YAxisOrientation
	cachedBound    Rect
	boundsComputed bool
}

// NewShape returns an empty shape using the upward (mathematical)
// Y convention.
func NewShape() *Shape { return &Shape{YAxis: YAxisUpward} }

// AddContour appends a contour.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
	s.boundsComputed = false
}

// Bound returns the union of every contour's bounding box, cached until
// the next AddContour call.
func (s *Shape) Bound() Rect {
	if s.boundsComputed {
		return s.cachedBound
	}
	if len(s.Contours) == 0 {
		s.cachedBound = Rect{}
		s.boundsComputed = true
		return s.cachedBound
	}
	r := s.Contours[0].Bound()
	for i := 1; i < len(s.Contours); i++ {
		r = r.Union(s.Contours[i].Bound())
	}
	s.cachedBound = r
	s.boundsComputed = true
	return r
}

// EdgeCount returns the total number of edges across every contour.
func (s *Shape) EdgeCount() int {
	n := 0
	for _, c := range s.Contours {
		n += len(c.Edges)
	}
	return n
}

// Validate reports whether every contour is closed (point(1) of its last
// edge equals point(0) of its first edge, within tolerance). This is
// advisory: the generator never refuses to run on a shape that fails it,
// per spec's "well-formed but uninformative" error policy -- callers may
// still consult it to decide whether to trust the output.
func (s *Shape) Validate() bool {
	const eps = 1e-6
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		first := c.Edges[0].StartPoint()
		last := c.Edges[len(c.Edges)-1].EndPoint()
		if abs64(first.X-last.X) > eps || abs64(first.Y-last.Y) > eps {
			return false
		}
	}
	return true
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ScanlineAt returns the sorted Scanline of every contour's crossings
// with the horizontal line y = level, ready for Winding/Filled queries.
// The generator's sign-correction pass uses this to verify the sign it
// computed from local edge geometry against the shape's actual fill at
// that row.
func (s *Shape) ScanlineAt(level float64) *Scanline {
	sl := NewScanline()
	for _, c := range s.Contours {
		for i := range c.Edges {
			for _, cr := range c.Edges[i].ScanlineIntersections(level) {
				sl.AddIntersection(cr.X, cr.Direction)
			}
		}
	}
	sl.Sort()
	return sl
}

// NormalizeHoles controls how Normalize treats contours with negative
// winding. See DESIGN.md's Open Question on this -- the reference
// behavior unconditionally flips them, which silently destroys
// "outer CCW plus inner CW hole" topology under the non-zero fill rule.
type NormalizeHoles int

const (
	// FlipNegativeWinding matches the literal reference behavior:
	// every contour ends up with Winding() >= 0.
	FlipNegativeWinding NormalizeHoles = iota
	// PreserveHoles leaves contours with negative winding (holes)
	// untouched; only degenerate (zero-winding) contours are left as-is
	// too, since there is no sign to flip.
	PreserveHoles
)

// Normalize brings every contour to non-negative winding, unless mode is
// PreserveHoles in which case negatively-wound contours (holes) are left
// alone. Normalize;Normalize is idempotent under either mode, and under
// FlipNegativeWinding every contour ends up with Winding() >= 0.
func (s *Shape) Normalize(mode NormalizeHoles) {
	if mode == PreserveHoles {
		return
	}
	for i, c := range s.Contours {
		if c.Winding() < 0 {
			s.Contours[i] = c.Reverse()
		}
	}
	s.boundsComputed = false
}

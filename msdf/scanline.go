package msdf

import "sort"

// scanIntersection is one crossing of a scanline with a shape's outline.
type scanIntersection struct {
	X         float64
	Direction int
}

// Scanline holds the sorted intersections of a horizontal line with a
// shape, and answers winding-number queries along it. Grazing crossings
// (Direction == 0) are never added -- AddIntersection discards them, so
// Shape.ScanlineAt and direct callers alike can forward raw crossings.
type Scanline struct {
	intersections []scanIntersection
	sorted        bool
	cursor        int
	cursorX       float64
	cursorSum     int
	haveCursor    bool
}

// NewScanline returns an empty scanline.
func NewScanline() *Scanline { return &Scanline{} }

// Reset discards all intersections, keeping the underlying storage for
// reuse.
func (s *Scanline) Reset() {
	s.intersections = s.intersections[:0]
	s.sorted = false
	s.haveCursor = false
	s.cursor = 0
}

// AddIntersection records a crossing at x with the given direction sign.
// A direction of 0 (tangent grazing) is silently discarded -- it
// contributes nothing to a winding sum and callers should not pass it
// except as a convenience when forwarding raw edge crossings.
func (s *Scanline) AddIntersection(x float64, direction int) {
	if direction == 0 {
		return
	}
	s.intersections = append(s.intersections, scanIntersection{X: x, Direction: direction})
	s.sorted = false
}

// Sort establishes the ascending-by-X invariant Winding requires.
func (s *Scanline) Sort() {
	sort.Slice(s.intersections, func(i, j int) bool {
		return s.intersections[i].X < s.intersections[j].X
	})
	s.sorted = true
	s.haveCursor = false
}

// Winding returns the sum of crossing directions strictly left of x. If
// intersections were added since the last Sort, Winding sorts them first.
func (s *Scanline) Winding(x float64) int {
	if !s.sorted {
		s.Sort()
	}
	// Monotonically increasing queries resume from the last cursor
	// position instead of rescanning from the start; any other query
	// rescans from the beginning.
	start := 0
	sum := 0
	if s.haveCursor && x >= s.cursorX {
		start = s.cursor
		sum = s.cursorSum
	}
	i := start
	for ; i < len(s.intersections) && s.intersections[i].X < x; i++ {
		sum += s.intersections[i].Direction
	}
	s.cursor = i
	s.cursorX = x
	s.cursorSum = sum
	s.haveCursor = true
	return sum
}

// Filled reports whether x lies inside the shape under the non-zero
// winding rule.
func (s *Scanline) Filled(x float64) bool {
	return s.Winding(x) != 0
}

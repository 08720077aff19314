package msdf

import "testing"

func square(x0, y0, side float64) *Contour {
	c := NewContour()
	p0 := Point{x0, y0}
	p1 := Point{x0 + side, y0}
	p2 := Point{x0 + side, y0 + side}
	p3 := Point{x0, y0 + side}
	c.AddEdge(NewLinearEdge(p0, p1))
	c.AddEdge(NewLinearEdge(p1, p2))
	c.AddEdge(NewLinearEdge(p2, p3))
	c.AddEdge(NewLinearEdge(p3, p0))
	return c
}

func TestContourBound(t *testing.T) {
	c := square(0, 0, 10)
	b := c.Bound()
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 10 || b.MaxY != 10 {
		t.Errorf("Bound() = %+v, want {0 0 10 10}", b)
	}
}

func TestContourBoundEmpty(t *testing.T) {
	c := NewContour()
	if b := c.Bound(); b != (Rect{}) {
		t.Errorf("empty contour Bound() = %+v, want zero value", b)
	}
}

func TestContourWindingCCW(t *testing.T) {
	c := square(0, 0, 10)
	if w := c.Winding(); w != 1 {
		t.Errorf("CCW square Winding() = %v, want 1", w)
	}
}

func TestContourWindingCW(t *testing.T) {
	c := square(0, 0, 10).Reverse()
	if w := c.Winding(); w != -1 {
		t.Errorf("reversed square Winding() = %v, want -1", w)
	}
}

func TestContourReverseNegatesWinding(t *testing.T) {
	c := square(0, 0, 10)
	want := -c.Winding()
	if got := c.Reverse().Winding(); got != want {
		t.Errorf("Reverse().Winding() = %v, want %v", got, want)
	}
}

func TestContourReversePreservesShape(t *testing.T) {
	c := square(0, 0, 10)
	r := c.Reverse()
	if len(r.Edges) != len(c.Edges) {
		t.Fatalf("Reverse() edge count = %d, want %d", len(r.Edges), len(c.Edges))
	}
	if r.Bound() != c.Bound() {
		t.Errorf("Reverse().Bound() = %+v, want %+v", r.Bound(), c.Bound())
	}
}

func TestContourClone(t *testing.T) {
	c := square(0, 0, 10)
	clone := c.Clone()
	clone.Edges[0] = NewLinearEdge(Point{99, 99}, Point{100, 100})
	if c.Edges[0].StartPoint() == (Point{99, 99}) {
		t.Errorf("Clone() shares storage with the original")
	}
}

package msdf

import (
	"math"
	"testing"
)

func TestInfiniteDistanceLosesToAnyFinite(t *testing.T) {
	inf := InfiniteDistance()
	finite := SignedDistance{Distance: 1000, Dot: 0}
	if inf.Less(finite) {
		t.Errorf("InfiniteDistance().Less(finite) = true, want false")
	}
	if got := inf.Closer(finite); got != finite {
		t.Errorf("Closer(inf, finite) = %v, want %v", got, finite)
	}
}

func TestSignedDistanceLessByMagnitude(t *testing.T) {
	near := SignedDistance{Distance: -1, Dot: 0}
	far := SignedDistance{Distance: 5, Dot: 0}
	if !near.Less(far) {
		t.Errorf("near.Less(far) = false, want true")
	}
	if far.Less(near) {
		t.Errorf("far.Less(near) = true, want false")
	}
}

func TestSignedDistanceTieBreakByDot(t *testing.T) {
	a := SignedDistance{Distance: 3, Dot: 0.2}
	b := SignedDistance{Distance: -3, Dot: 0.8}
	if !a.Less(b) {
		t.Errorf("a.Less(b) = false, want true (equal magnitude, lower dot wins)")
	}
}

func TestMultiDistanceRepresentativeIsMedian(t *testing.T) {
	m := MultiDistance{R: 1, G: 5, B: 3}
	if got := m.Representative(); got != 3 {
		t.Errorf("Representative() = %v, want 3 (median)", got)
	}
}

func TestMultiDistanceLessComparesByRepresentative(t *testing.T) {
	near := MultiDistance{R: 1, G: 1, B: 1}
	far := MultiDistance{R: 9, G: 9, B: 9}
	if !near.Less(far) {
		t.Errorf("near.Less(far) = false, want true")
	}
}

func TestMultiAndTrueDistanceRepresentativeIgnoresA(t *testing.T) {
	m := MultiAndTrueDistance{R: 1, G: 5, B: 3, A: 100}
	if got := m.Representative(); got != 3 {
		t.Errorf("Representative() = %v, want 3 (A excluded)", got)
	}
}

func TestMedian3AllOrderings(t *testing.T) {
	orderings := [][3]float64{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, o := range orderings {
		if got := median3(o[0], o[1], o[2]); got != 2 {
			t.Errorf("median3(%v) = %v, want 2", o, got)
		}
	}
}

func TestInfiniteDistanceIsNegativeInfinity(t *testing.T) {
	if d := InfiniteDistance().Distance; !math.IsInf(d, -1) {
		t.Errorf("InfiniteDistance().Distance = %v, want -Inf", d)
	}
}

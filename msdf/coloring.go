package msdf

import "math"

// EdgeColoringConfig controls every coloring algorithm in this package.
// AngleThreshold is the minimum unsigned angle, in radians, between the
// direction leaving one edge and the direction entering the next for
// their shared endpoint to be treated as a corner rather than a smooth
// join. Seed drives the deterministic pseudo-random choices the
// algorithms make when more than one coloring would be equally valid.
type EdgeColoringConfig struct {
	AngleThreshold float64
	Seed           uint64
}

// DefaultEdgeColoringConfig returns a 3-degree corner threshold, the
// conventional default for font and icon outlines, with a zero seed.
func DefaultEdgeColoringConfig() EdgeColoringConfig {
	return EdgeColoringConfig{AngleThreshold: 3 * math.Pi / 180, Seed: 0}
}

// detectCorners returns the indices of edges that begin immediately
// after a sharp direction change, generalizing the teacher's inline
// corner scan in assignContourColors to operate on any of the three
// edge degrees via Edge.Direction rather than a type-specific accessor.
func detectCorners(contour *Contour, angleThreshold float64) []int {
	n := len(contour.Edges)
	if n == 0 {
		return nil
	}
	var corners []int
	prevDir := contour.Edges[n-1].Direction(1).Normalized()
	for i := range contour.Edges {
		curDir := contour.Edges[i].Direction(0).Normalized()
		if AngleBetween(prevDir, curDir) > angleThreshold {
			corners = append(corners, i)
		}
		prevDir = contour.Edges[i].Direction(1).Normalized()
	}
	return corners
}

// colorTeardrop handles the single-corner contour: a closed loop with
// exactly one sharp point (the common "teardrop" shape produced by a
// font's dotless i or a rounded terminal). It splits the loop roughly in
// half around the corner and gives each half a distinct tri-color, so
// the median-decode sees two channels disagree across the corner and
// one agree, which is enough to keep the point sharp.
func colorTeardrop(contour *Contour, corner int, seed *colorSeed) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}
	colorA := switchColor(ColorWhite, seed, ColorBlack)
	colorB := switchColor(colorA, seed, ColorBlack)
	half := n / 2
	for i := 0; i < n; i++ {
		idx := (corner + i) % n
		if i < half {
			contour.Edges[idx].Color = colorA
		} else {
			contour.Edges[idx].Color = colorB
		}
	}
}

// colorMultiCorner assigns one tri-color per spline (the run of edges
// between two consecutive corners), cycling colors at each corner via
// switchColor and banning the first spline's color on the last spline,
// so the two edges meeting at every corner share exactly one channel.
// minor, if non-nil, is consulted at each corner
// (by its index into corners) to request a plain complement instead of
// a fresh pseudo-random draw -- edgeColoringInkTrap uses this to avoid
// spending a brand new color on a corner that bridges a sliver too thin
// for the new color to register.
func colorMultiCorner(contour *Contour, corners []int, seed *colorSeed, minor func(cornerIndex int) bool) {
	n := len(contour.Edges)
	cornerCount := len(corners)
	if n == 0 || cornerCount == 0 {
		return
	}

	color := switchColor(ColorWhite, seed, ColorBlack)
	initial := color
	spline := 0
	start := corners[0]
	for i := 0; i < n; i++ {
		index := (start + i) % n
		if spline+1 < cornerCount && corners[spline+1] == index {
			spline++
			if minor != nil && minor(spline) {
				color = color.Complement()
			} else {
				banned := ColorBlack
				if spline == cornerCount-1 {
					banned = initial
				}
				color = switchColor(color, seed, banned)
			}
		}
		contour.Edges[index].Color = color
	}
}

// unionCorner replaces the color of the edge at corner index c with the
// union of its own color and the color of the edge immediately before
// it, or with white if the two already agree -- matching the teacher's
// "edges at corners should use the XOR of adjacent colors" step, which
// despite its name computes a bitwise OR with a same-color special case.
func unionCorner(contour *Contour, c int) {
	n := len(contour.Edges)
	prev := contour.Edges[(c-1+n)%n].Color
	next := contour.Edges[c].Color
	if prev == next {
		contour.Edges[c].Color = ColorWhite
	} else {
		contour.Edges[c].Color = prev | next
	}
}

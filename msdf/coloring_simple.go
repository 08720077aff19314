package msdf

// EdgeColoringSimple assigns edge colors contour by contour using only
// the order the edges already appear in: corners split a contour into
// splines, and each spline gets the next pseudo-random tri-color in
// sequence. It is the direct generalization of the teacher's
// assignContourColors to all three edge-coloring algorithms' shared
// corner/spline/union structure (coloring.go), and is the right choice
// whenever a contour's corners are not close together in outline space
// relative to how far apart they are in edge order -- the common case
// for most glyph and icon outlines.
func EdgeColoringSimple(shape *Shape, cfg EdgeColoringConfig) {
	seed := newColorSeed(cfg.Seed)
	for _, contour := range shape.Contours {
		colorContourSimple(contour, cfg.AngleThreshold, seed)
	}
}

func colorContourSimple(contour *Contour, angleThreshold float64, seed *colorSeed) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}
	corners := detectCorners(contour, angleThreshold)
	switch len(corners) {
	case 0:
		for i := range contour.Edges {
			contour.Edges[i].Color = ColorWhite
		}
	case 1:
		colorTeardrop(contour, corners[0], seed)
	default:
		colorMultiCorner(contour, corners, seed, nil)
	}
}

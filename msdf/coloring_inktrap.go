package msdf

// EdgeColoringInkTrap is EdgeColoringSimple with one refinement: corners
// that bridge an unusually short spline relative to the rest of the
// contour -- an "ink trap", the thin notch a typeface cuts into a
// junction so ink doesn't fill it in at small sizes -- complement the
// running color instead of drawing a fresh pseudo-random one. A short
// bridge is exactly where a brand new color is least useful: there is
// barely any edge length for it to register on before the next corner
// arrives, while the complement still guarantees the bridge differs
// from both neighbors.
func EdgeColoringInkTrap(shape *Shape, cfg EdgeColoringConfig) {
	seed := newColorSeed(cfg.Seed)
	for _, contour := range shape.Contours {
		colorContourInkTrap(contour, cfg.AngleThreshold, seed)
	}
}

func colorContourInkTrap(contour *Contour, angleThreshold float64, seed *colorSeed) {
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
		minor := classifyMinorCorners(contour, corners)
		colorMultiCorner(contour, corners, seed, func(cornerIndex int) bool { return minor[cornerIndex] })
	}
}

// classifyMinorCorners measures the length of the spline starting at
// each corner (the sum of its edges' endpoint-to-endpoint chords) and flags the corner as minor when that spline is under
// half the contour's mean spline length.
func classifyMinorCorners(contour *Contour, corners []int) map[int]bool {
	n := len(contour.Edges)
	cornerCount := len(corners)
	lengths := make([]float64, cornerCount)
	total := 0.0
	for i := 0; i < cornerCount; i++ {
		start := corners[i]
		end := corners[(i+1)%cornerCount]
		if end <= start {
			end += n
		}
		var length float64
		for j := start; j < end; j++ {
			e := &contour.Edges[j%n]
			length += e.EndPoint().Sub(e.StartPoint()).Length()
		}
		lengths[i] = length
		total += length
	}
	mean := total / float64(cornerCount)
	minor := make(map[int]bool, cornerCount)
	for i, l := range lengths {
		if mean > 0 && l < mean*0.5 {
			minor[i] = true
		}
	}
	return minor
}

package msdf

// EdgeColoringByDistance colors splines using proximity in outline
// space rather than only adjacency in edge order: two splines that sit
// close together geometrically -- such as the two sides of a thin
// stroke, which are far apart in edge-traversal order but only a few
// pixels apart in the rendered output -- are treated as graph neighbors
// and greedily assigned different tri-colors, the same way
// edgeColoringSimple already avoids assigning the same color to two
// order-adjacent splines. This is the right choice for outlines with
// thin or self-proximate features where EdgeColoringSimple's
// order-only view can accidentally let two nearby edges share a color
// and lose the seam between them at decode time.
func EdgeColoringByDistance(shape *Shape, cfg EdgeColoringConfig) {
	seed := newColorSeed(cfg.Seed)
	for _, contour := range shape.Contours {
		colorContourByDistance(contour, cfg.AngleThreshold, seed)
	}
}

type splineRange struct{ start, end int }

func colorContourByDistance(contour *Contour, angleThreshold float64, seed *colorSeed) {
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
		return
	case 1:
		colorTeardrop(contour, corners[0], seed)
		return
	}

	cornerCount := len(corners)
	splines := make([]splineRange, cornerCount)
	for i := range splines {
		splines[i] = splineRange{start: corners[i], end: corners[(i+1)%cornerCount]}
	}
	mids := make([]Point, cornerCount)
	for i, sp := range splines {
		mids[i] = splineMidpoint(contour, sp)
	}

	bound := contour.Bound()
	diagonal := Pt(bound.Width(), bound.Height()).Length()
	closeThreshold := diagonal * 0.25

	neighbors := make([][]int, cornerCount)
	for i := 0; i < cornerCount; i++ {
		neighbors[i] = append(neighbors[i], (i-1+cornerCount)%cornerCount, (i+1)%cornerCount)
		for j := 0; j < cornerCount; j++ {
			if j == i {
				continue
			}
			if mids[i].Sub(mids[j]).Length() < closeThreshold {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	colors := make([]EdgeColor, cornerCount)
	for i := 0; i < cornerCount; i++ {
		var used []EdgeColor
		for _, nb := range neighbors[i] {
			if nb < i {
				used = append(used, colors[nb])
			}
		}
		colors[i] = pickLeastConflicting(used, seed)
	}

	for i, sp := range splines {
		for j := sp.start; j != sp.end; j = (j + 1) % n {
			contour.Edges[j].Color = colors[i]
		}
	}
}

// splineMidpoint samples the representative point of the edge nearest
// the middle of the spline's edge range, used only to estimate
// proximity between splines -- it does not need to be the true
// arc-length midpoint.
func splineMidpoint(contour *Contour, sp splineRange) Point {
	n := len(contour.Edges)
	count := sp.end - sp.start
	if count <= 0 {
		count += n
	}
	mid := (sp.start + count/2) % n
	e := &contour.Edges[mid]
	return e.Point(0.5)
}

// pickLeastConflicting draws a tri-color not present in used if one
// exists, falling back to a uniformly random tri-color when all three
// are already taken by a neighboring spline.
func pickLeastConflicting(used []EdgeColor, seed *colorSeed) EdgeColor {
	var candidates []EdgeColor
	for _, c := range triColors {
		taken := false
		for _, u := range used {
			if u == c {
				taken = true
				break
			}
		}
		if !taken {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return triColors[seed.next(3)]
	}
	return candidates[seed.next(uint64(len(candidates)))]
}

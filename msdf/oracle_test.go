package msdf

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// rasterizeOracle scan-converts a set of closed polygon outlines (in
// pixel coordinates) with an independent, general-purpose rasterizer,
// producing a ground-truth fill mask unrelated to this package's own
// Scanline or combiner code.
func rasterizeOracle(w, h int, contours [][]Point) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	for _, pts := range contours {
		if len(pts) == 0 {
			continue
		}
		r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func contourVertices(c *Contour) []Point {
	if len(c.Edges) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(c.Edges)+1)
	for _, e := range c.Edges {
		pts = append(pts, e.StartPoint())
	}
	pts = append(pts, c.Edges[len(c.Edges)-1].EndPoint())
	return pts
}

// TestScanlineFillAgreesWithRasterizerOracle checks Shape.ScanlineAt
// against golang.org/x/image/vector's independent scan-conversion: for
// every pixel center on a square, the two must agree on fill state.
func TestScanlineFillAgreesWithRasterizerOracle(t *testing.T) {
	const w, h = 32, 32
	shape := NewShape()
	shape.AddContour(square(4, 4, 20))

	oracle := rasterizeOracle(w, h, [][]Point{contourVertices(shape.Contours[0])})

	for y := 0; y < h; y++ {
		row := shape.ScanlineAt(float64(y) + 0.5)
		for x := 0; x < w; x++ {
			want := oracle.Pix[oracle.PixOffset(x, y)] > 127
			got := row.Filled(float64(x) + 0.5)
			if got != want {
				t.Errorf("(%d,%d): Scanline.Filled = %v, rasterizer oracle filled = %v", x, y, got, want)
			}
		}
	}
}

// TestScanlineFillAgreesWithRasterizerOracleOverlap repeats the same
// cross-check for two overlapping squares, where the overlap region is
// doubly covered but still filled under the non-zero rule both the
// rasterizer and Scanline.winding are expected to implement.
func TestScanlineFillAgreesWithRasterizerOracleOverlap(t *testing.T) {
	const w, h = 32, 32
	shape := NewShape()
	shape.AddContour(square(4, 4, 16))
	shape.AddContour(square(12, 4, 16))

	oracle := rasterizeOracle(w, h, [][]Point{
		contourVertices(shape.Contours[0]),
		contourVertices(shape.Contours[1]),
	})

	for y := 0; y < h; y++ {
		row := shape.ScanlineAt(float64(y) + 0.5)
		for x := 0; x < w; x++ {
			want := oracle.Pix[oracle.PixOffset(x, y)] > 127
			got := row.Filled(float64(x) + 0.5)
			if got != want {
				t.Errorf("(%d,%d): Scanline.Filled = %v, rasterizer oracle filled = %v", x, y, got, want)
			}
		}
	}
}

// TestGenerateSDFSignAgreesWithRasterizerOracleConsistently checks that
// the generated SDF's sign, relative to the 0.5 midpoint the distance
// mapping assigns to the zero level set, is a consistent function of
// the rasterizer oracle's fill state: every filled sample lands on one
// side and every unfilled sample lands on the other, across the whole
// grid, not just near the two points a hand-picked example would check.
func TestGenerateSDFSignAgreesWithRasterizerOracleConsistently(t *testing.T) {
	const w, h = 32, 32
	shape := NewShape()
	shape.AddContour(square(4, 4, 20))

	oracle := rasterizeOracle(w, h, [][]Point{contourVertices(shape.Contours[0])})

	cfg := DefaultGeneratorConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Transformation = NewSDFTransformation(IdentityProjection(), NewDistanceMapping(SymmetricRange(4)))
	bmp, err := NewGenerator(cfg).GenerateSDF(shape)
	if err != nil {
		t.Fatalf("GenerateSDF: %v", err)
	}

	var filledCount, filledHigh, unfilledCount, unfilledHigh int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			filled := oracle.Pix[oracle.PixOffset(x, y)] > 127
			high := bmp.At(x, y, 0) > 0.5
			if filled {
				filledCount++
				if high {
					filledHigh++
				}
			} else {
				unfilledCount++
				if high {
					unfilledHigh++
				}
			}
		}
	}

	if filledCount == 0 || unfilledCount == 0 {
		t.Fatal("sample grid produced no filled or no unfilled points, test is degenerate")
	}
	if filledHigh != 0 && filledHigh != filledCount {
		t.Errorf("filled samples split %d/%d across the 0.5 midpoint, want all on one side", filledHigh, filledCount)
	}
	if unfilledHigh != 0 && unfilledHigh != unfilledCount {
		t.Errorf("unfilled samples split %d/%d across the 0.5 midpoint, want all on one side", unfilledHigh, unfilledCount)
	}
	filledSide := filledHigh == filledCount
	unfilledSide := unfilledHigh == unfilledCount
	if filledSide == unfilledSide {
		t.Errorf("filled and unfilled samples landed on the same side of 0.5")
	}
}

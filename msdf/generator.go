package msdf

import "math"

// GeneratorConfig controls how a Generator rasterizes a Shape into a
// Bitmap: the output dimensions, the projection from shape space to
// pixel space plus the distance range mapped into [0, 1], whether
// overlapping or nested contours are resolved with
// OverlappingContourCombiner rather than the cheaper
// SimpleContourCombiner, and whether each pixel's computed sign is
// cross-checked against an actual scanline fill test.
type GeneratorConfig struct {
	Width, Height  int
	Transformation SDFTransformation
	OverlapSupport bool
	SignCorrection bool
}

// DefaultGeneratorConfig returns a 32x32 output, an identity-scaled
// projection, a distance range of 4 pixels centered on the outline, and
// both overlap support and sign correction enabled.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:          32,
		Height:         32,
		Transformation: NewSDFTransformation(IdentityProjection(), NewDistanceMapping(SymmetricRange(4))),
		OverlapSupport: true,
		SignCorrection: true,
	}
}

// Validate reports whether c is usable, returning a *ConfigError
// identifying the first offending field.
func (c GeneratorConfig) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.Transformation.DistanceMapping.Rng.Width() == 0 {
		return &ConfigError{Field: "Transformation.DistanceMapping.Rng", Reason: "must have non-zero width"}
	}
	return nil
}

// FitProjection returns a Projection and a symmetric distance Range
// that together fit bounds, padded by rangeWidth/2 on every side, into
// a width x height bitmap without distortion: the occupied area is
// scaled uniformly to the larger axis and centered on the other.
func FitProjection(bounds Rect, width, height int, rangeWidth float64) (Projection, Range) {
	padded := bounds.Expand(rangeWidth / 2)
	w, h := padded.Width(), padded.Height()

	scale := 1.0
	switch {
	case w > 0 && h > 0:
		scale = math.Min(float64(width)/w, float64(height)/h)
	case w > 0:
		scale = float64(width) / w
	case h > 0:
		scale = float64(height) / h
	}

	occupiedW, occupiedH := w*scale, h*scale
	marginX := (float64(width) - occupiedW) / 2
	marginY := (float64(height) - occupiedH) / 2
	translate := Point{
		X: marginX/scale - padded.MinX,
		Y: marginY/scale - padded.MinY,
	}
	return NewProjection(Point{X: scale, Y: scale}, translate), SymmetricRange(rangeWidth)
}

// Generator rasterizes a Shape into one of the four distance-field
// bitmap variants. It runs single-threaded and synchronously: every
// channel of a pixel must see the same consistent snapshot of the
// shape's edges, the outputs this package produces (glyph cells, icon
// atlases) are small, and a caller that wants more throughput can
// already get it by running several Generators over several shapes
// concurrently -- row-level parallelism inside one Generate call buys
// nothing that approach doesn't give more simply.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator returns a Generator using config.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// DefaultGenerator returns a Generator using DefaultGeneratorConfig.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultGeneratorConfig())
}

// Config returns the generator's current configuration.
func (g *Generator) Config() GeneratorConfig { return g.config }

// SetConfig replaces the generator's configuration.
func (g *Generator) SetConfig(c GeneratorConfig) { g.config = c }

func (g *Generator) validate(shape *Shape) error {
	if err := g.config.Validate(); err != nil {
		return err
	}
	if len(shape.Contours) == 0 {
		return ErrEmptyShape
	}
	return nil
}

// GenerateSDF fills a single-channel bitmap with the true signed
// distance to shape's outline.
func (g *Generator) GenerateSDF(shape *Shape) (*Bitmap, error) {
	if err := g.validate(shape); err != nil {
		return nil, err
	}
	combine := combinerFor(g.config.OverlapSupport,
		func() EdgeSelector[SignedDistance] { return NewTrueDistanceSelector(Point{}) },
		func(a, b SignedDistance) SignedDistance { return a.Closer(b) },
		func(d SignedDistance) float64 { return d.Distance },
		negateSignedDistance)

	bmp := NewBitmap(g.config.Width, g.config.Height, 1)
	g.forEachPixel(shape, func(x, y int, sp Point, row *Scanline) {
		d := combine(shape, sp)
		v := signCorrect(row, sp.X, d.Distance)
		bmp.Set(x, y, 0, float32(g.config.Transformation.MapDistance(v)))
	})
	return bmp, nil
}

// GeneratePSDF fills a single-channel bitmap with the perpendicular
// (pseudo) signed distance, which unifies the field around convex
// corners at the cost of correctness around concave ones.
func (g *Generator) GeneratePSDF(shape *Shape) (*Bitmap, error) {
	if err := g.validate(shape); err != nil {
		return nil, err
	}
	combine := combinerFor(g.config.OverlapSupport,
		func() EdgeSelector[SignedDistance] { return NewPerpendicularDistanceSelector(Point{}) },
		func(a, b SignedDistance) SignedDistance { return a.Closer(b) },
		func(d SignedDistance) float64 { return d.Distance },
		negateSignedDistance)

	bmp := NewBitmap(g.config.Width, g.config.Height, 1)
	g.forEachPixel(shape, func(x, y int, sp Point, row *Scanline) {
		d := combine(shape, sp)
		v := signCorrect(row, sp.X, d.Distance)
		bmp.Set(x, y, 0, float32(g.config.Transformation.MapDistance(v)))
	})
	return bmp, nil
}

// GenerateMSDF fills a three-channel (R, G, B) bitmap with the
// multi-channel signed distance field. shape's edges must already be
// colored (EdgeColoringSimple, EdgeColoringInkTrap, or
// EdgeColoringByDistance) or every channel degenerates to the same true
// distance.
func (g *Generator) GenerateMSDF(shape *Shape) (*Bitmap, error) {
	if err := g.validate(shape); err != nil {
		return nil, err
	}
	mergeMulti := func(a, b MultiDistance) MultiDistance {
		return MultiDistance{R: closerScalar(a.R, b.R), G: closerScalar(a.G, b.G), B: closerScalar(a.B, b.B)}
	}
	combine := combinerFor(g.config.OverlapSupport,
		func() EdgeSelector[MultiDistance] { return NewMultiDistanceSelector(Point{}) },
		mergeMulti,
		MultiDistance.Representative,
		negateMultiDistance)

	bmp := NewBitmap(g.config.Width, g.config.Height, 3)
	g.forEachPixel(shape, func(x, y int, sp Point, row *Scanline) {
		d := combine(shape, sp)
		r := signCorrect(row, sp.X, d.R)
		gr := signCorrect(row, sp.X, d.G)
		b := signCorrect(row, sp.X, d.B)
		bmp.Set(x, y, 0, float32(g.config.Transformation.MapDistance(r)))
		bmp.Set(x, y, 1, float32(g.config.Transformation.MapDistance(gr)))
		bmp.Set(x, y, 2, float32(g.config.Transformation.MapDistance(b)))
	})
	return bmp, nil
}

// GenerateMTSDF fills a four-channel (R, G, B, A) bitmap: R/G/B are the
// multi-channel signed distance exactly as in GenerateMSDF, and A is
// the color-agnostic true distance, letting a renderer fall back to a
// conventional SDF (e.g. for drop shadows) from the same texture.
func (g *Generator) GenerateMTSDF(shape *Shape) (*Bitmap, error) {
	if err := g.validate(shape); err != nil {
		return nil, err
	}
	mergeMT := func(a, b MultiAndTrueDistance) MultiAndTrueDistance {
		return MultiAndTrueDistance{
			R: closerScalar(a.R, b.R),
			G: closerScalar(a.G, b.G),
			B: closerScalar(a.B, b.B),
			A: closerScalar(a.A, b.A),
		}
	}
	combine := combinerFor(g.config.OverlapSupport,
		func() EdgeSelector[MultiAndTrueDistance] { return NewMultiAndTrueDistanceSelector(Point{}) },
		mergeMT,
		MultiAndTrueDistance.Representative,
		negateMultiAndTrueDistance)

	bmp := NewBitmap(g.config.Width, g.config.Height, 4)
	g.forEachPixel(shape, func(x, y int, sp Point, row *Scanline) {
		d := combine(shape, sp)
		r := signCorrect(row, sp.X, d.R)
		gr := signCorrect(row, sp.X, d.G)
		b := signCorrect(row, sp.X, d.B)
		a := signCorrect(row, sp.X, d.A)
		bmp.Set(x, y, 0, float32(g.config.Transformation.MapDistance(r)))
		bmp.Set(x, y, 1, float32(g.config.Transformation.MapDistance(gr)))
		bmp.Set(x, y, 2, float32(g.config.Transformation.MapDistance(b)))
		bmp.Set(x, y, 3, float32(g.config.Transformation.MapDistance(a)))
	})
	return bmp, nil
}

// Kind selects which distance-field variant GenerateBatch produces.
type Kind int

const (
	KindSDF Kind = iota
	KindPSDF
	KindMSDF
	KindMTSDF
)

// GenerateBatch runs the Generate function matching kind over every
// shape in order, stopping at the first error. It is a convenience for
// callers driving one Generator/config pair over many shapes; the
// package's single-threaded execution model is unchanged across calls,
// so batching buys no additional concurrency -- a caller wanting that
// runs several Generators from its own goroutines.
func (g *Generator) GenerateBatch(kind Kind, shapes []*Shape) ([]*Bitmap, error) {
	out := make([]*Bitmap, len(shapes))
	for i, s := range shapes {
		var bmp *Bitmap
		var err error
		switch kind {
		case KindSDF:
			bmp, err = g.GenerateSDF(s)
		case KindPSDF:
			bmp, err = g.GeneratePSDF(s)
		case KindMSDF:
			bmp, err = g.GenerateMSDF(s)
		case KindMTSDF:
			bmp, err = g.GenerateMTSDF(s)
		}
		if err != nil {
			return nil, err
		}
		out[i] = bmp
	}
	return out, nil
}

// forEachPixel walks every output pixel exactly once, in serpentine
// order (left-to-right on even rows, right-to-left on odd rows). Queries
// against a row's Scanline increase in x on even rows only; on odd rows
// x decreases, so Scanline.Winding rescans from the start for each
// pixel. When SignCorrection is disabled, row is nil.
func (g *Generator) forEachPixel(shape *Shape, fn func(x, y int, shapePoint Point, row *Scanline)) {
	width, height := g.config.Width, g.config.Height
	for y := 0; y < height; y++ {
		py := float64(y) + 0.5

		var row *Scanline
		if g.config.SignCorrection {
			rowAnchor := g.config.Transformation.Unproject(Point{X: 0, Y: py})
			row = shape.ScanlineAt(rowAnchor.Y)
		}

		if y%2 == 0 {
			for x := 0; x < width; x++ {
				px := float64(x) + 0.5
				sp := g.config.Transformation.Unproject(Point{X: px, Y: py})
				fn(x, y, sp, row)
			}
		} else {
			for x := width - 1; x >= 0; x-- {
				px := float64(x) + 0.5
				sp := g.config.Transformation.Unproject(Point{X: px, Y: py})
				fn(x, y, sp, row)
			}
		}
	}
}

// signCorrect flips d's sign when it disagrees with the actual fill
// state of the shape at x along row, under the non-zero winding rule
// (negative distance means inside). row is nil when sign correction is
// disabled, in which case d passes through unchanged.
func signCorrect(row *Scanline, x float64, d float64) float64 {
	if row == nil {
		return d
	}
	filled := row.Filled(x)
	if filled && d > 0 {
		return -d
	}
	if !filled && d < 0 {
		return -d
	}
	return d
}

// combinerFor returns a ready-to-call Combine function using either
// SimpleContourCombiner or OverlappingContourCombiner depending on
// overlap, so the four Generate functions share one call site instead
// of branching on the combiner kind themselves. Simple needs merge to
// fold per-contour results; Overlapping needs resolve and negate to
// apply its scanline sign correction instead.
func combinerFor[D any](overlap bool, newSelector SelectorFactory[D], merge func(a, b D) D, resolve func(D) float64, negate func(D) D) func(*Shape, Point) D {
	if overlap {
		c := NewOverlappingContourCombiner(newSelector, resolve, negate)
		return c.Combine
	}
	c := NewSimpleContourCombiner(newSelector, merge)
	return c.Combine
}

// negateSignedDistance flips a true/perpendicular distance's sign,
// leaving its tie-breaking Dot untouched.
func negateSignedDistance(d SignedDistance) SignedDistance {
	return SignedDistance{Distance: -d.Distance, Dot: d.Dot}
}

// negateMultiDistance flips every RGB channel.
func negateMultiDistance(d MultiDistance) MultiDistance {
	return MultiDistance{R: -d.R, G: -d.G, B: -d.B}
}

// negateMultiAndTrueDistance flips every channel including the
// true-distance alpha.
func negateMultiAndTrueDistance(d MultiAndTrueDistance) MultiAndTrueDistance {
	return MultiAndTrueDistance{R: -d.R, G: -d.G, B: -d.B, A: -d.A}
}

package msdf

import (
	"errors"
	"math"
	"testing"
)

func unitSquareShape() *Shape {
	s := NewShape()
	s.AddContour(square(0, 0, 10))
	return s
}

func TestDefaultGeneratorConfig(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultGeneratorConfig() invalid: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("default size = %dx%d, want 32x32", cfg.Width, cfg.Height)
	}
}

func TestGeneratorConfigValidate(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Width = 0
	var ce *ConfigError
	if err := cfg.Validate(); !errors.As(err, &ce) {
		t.Errorf("Validate() with Width=0 = %v, want *ConfigError", err)
	}
}

func TestGenerateEmptyShapeFails(t *testing.T) {
	gen := DefaultGenerator()
	_, err := gen.GenerateSDF(NewShape())
	if !errors.Is(err, ErrEmptyShape) {
		t.Errorf("GenerateSDF(empty) err = %v, want ErrEmptyShape", err)
	}
}

func TestGenerateSDFSize(t *testing.T) {
	gen := DefaultGenerator()
	bmp, err := gen.GenerateSDF(unitSquareShape())
	if err != nil {
		t.Fatalf("GenerateSDF: %v", err)
	}
	if bmp.Width != 32 || bmp.Height != 32 || bmp.Channels != 1 {
		t.Errorf("bitmap = %dx%dx%d, want 32x32x1", bmp.Width, bmp.Height, bmp.Channels)
	}
}

func TestGenerateSDFInsideOutsideSign(t *testing.T) {
	projection, rng := FitProjection(Rect{0, 0, 10, 10}, 32, 32, 4)
	cfg := DefaultGeneratorConfig()
	cfg.Transformation = NewSDFTransformation(projection, NewDistanceMapping(rng))
	gen := NewGenerator(cfg)

	bmp, err := gen.GenerateSDF(unitSquareShape())
	if err != nil {
		t.Fatalf("GenerateSDF: %v", err)
	}

	center := bmp.At(16, 16, 0)
	corner := bmp.At(0, 0, 0)
	if center <= 0.5 {
		t.Errorf("center channel value = %v, want > 0.5 (inside)", center)
	}
	if corner >= 0.5 {
		t.Errorf("corner channel value = %v, want < 0.5 (outside)", corner)
	}
}

func TestGenerateMSDFChannelCount(t *testing.T) {
	shape := unitSquareShape()
	EdgeColoringSimple(shape, DefaultEdgeColoringConfig())

	gen := DefaultGenerator()
	bmp, err := gen.GenerateMSDF(shape)
	if err != nil {
		t.Fatalf("GenerateMSDF: %v", err)
	}
	if bmp.Channels != 3 {
		t.Errorf("channels = %d, want 3", bmp.Channels)
	}
}

func TestGenerateMTSDFChannelCount(t *testing.T) {
	shape := unitSquareShape()
	EdgeColoringSimple(shape, DefaultEdgeColoringConfig())

	gen := DefaultGenerator()
	bmp, err := gen.GenerateMTSDF(shape)
	if err != nil {
		t.Fatalf("GenerateMTSDF: %v", err)
	}
	if bmp.Channels != 4 {
		t.Errorf("channels = %d, want 4", bmp.Channels)
	}
}

func TestGenerateBatch(t *testing.T) {
	shapes := []*Shape{unitSquareShape(), unitSquareShape()}
	gen := DefaultGenerator()
	bitmaps, err := gen.GenerateBatch(KindSDF, shapes)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(bitmaps) != 2 {
		t.Fatalf("GenerateBatch returned %d bitmaps, want 2", len(bitmaps))
	}
}

func TestGenerateBatchStopsOnError(t *testing.T) {
	shapes := []*Shape{unitSquareShape(), NewShape()}
	gen := DefaultGenerator()
	_, err := gen.GenerateBatch(KindSDF, shapes)
	if !errors.Is(err, ErrEmptyShape) {
		t.Errorf("GenerateBatch err = %v, want ErrEmptyShape", err)
	}
}

func TestFitProjectionCentersShape(t *testing.T) {
	bounds := Rect{0, 0, 10, 10}
	projection, _ := FitProjection(bounds, 32, 32, 4)
	center := projection.Project(bounds.Center())
	want := Point{16, 16}
	if math.Abs(center.X-want.X) > 0.5 || math.Abs(center.Y-want.Y) > 0.5 {
		t.Errorf("projected center = %v, want ~%v", center, want)
	}
}

func TestSignCorrectFlipsDisagreement(t *testing.T) {
	row := NewScanline()
	row.AddIntersection(5, 1)
	row.Sort()

	// x=10 is filled (to the right of one +1 crossing); a positive
	// distance there disagrees with "inside" and must flip negative.
	if got := signCorrect(row, 10, 3); got != -3 {
		t.Errorf("signCorrect(filled, +3) = %v, want -3", got)
	}
	// x=0 is unfilled; a negative distance there must flip positive.
	if got := signCorrect(row, 0, -3); got != 3 {
		t.Errorf("signCorrect(unfilled, -3) = %v, want 3", got)
	}
	// Agreement passes through unchanged.
	if got := signCorrect(row, 10, -3); got != -3 {
		t.Errorf("signCorrect(filled, -3) = %v, want -3", got)
	}
	// Disabled sign correction (nil row) passes through unchanged.
	if got := signCorrect(nil, 10, 3); got != 3 {
		t.Errorf("signCorrect(nil, 3) = %v, want 3", got)
	}
}

// Package msdf generates single- and multi-channel signed distance
// fields from vector outlines.
//
// A signed distance field encodes, for every output pixel, how far that
// pixel is from the nearest point on a shape's outline, negative inside
// the shape and positive outside. A plain (single-channel) field rounds
// every sharp corner once scaled up, because linear interpolation
// between two samples cannot represent a direction discontinuity. The
// multi-channel variant fixes this: edges are colored into subsets of
// {R, G, B} so that a corner is always where two channels disagree, and
// decoding the median of the three channels recovers a field that stays
// sharp at any scale.
//
// # Pipeline
//
//  1. Build a Shape out of Contours of linear/quadratic/cubic Edges.
//  2. Color each contour's edges (EdgeColoringSimple, EdgeColoringInkTrap,
//     or EdgeColoringByDistance) unless generating a plain SDF/PSDF.
//  3. Configure a Generator with the output size and an SDFTransformation
//     (GeneratorConfig, FitProjection).
//  4. Call GenerateSDF, GeneratePSDF, GenerateMSDF, or GenerateMTSDF to
//     produce a Bitmap.
//
// # Usage
//
//	shape := msdf.NewShape()
//	shape.AddContour(contour)
//	msdf.EdgeColoringSimple(shape, msdf.DefaultEdgeColoringConfig())
//
//	projection, rng := msdf.FitProjection(shape.Bound(), 64, 64, 4)
//	cfg := msdf.DefaultGeneratorConfig()
//	cfg.Width, cfg.Height = 64, 64
//	cfg.Transformation = msdf.NewSDFTransformation(projection, msdf.NewDistanceMapping(rng))
//
//	bitmap, err := msdf.NewGenerator(cfg).GenerateMSDF(shape)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rgb := bitmap.EncodeUint8()
//
// # Decoding
//
// A shader or CPU decoder recovers the signed distance as
// median(R, G, B) - 0.5, in normalized channel units; multiply by the
// width of the distance range the Generator was configured with to get
// shape-space units back (distances are measured in shape coordinates).
package msdf

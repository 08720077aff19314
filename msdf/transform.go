package msdf

// Projection maps a point in shape (outline) coordinates to a point in
// pixel/texel space and back: Project(p) = (p + Translate) * Scale,
// component-wise.
type Projection struct {
	Scale     Point
	Translate Point
}

// NewProjection returns a projection with the given scale and translate.
func NewProjection(scale, translate Point) Projection {
	return Projection{Scale: scale, Translate: translate}
}

// IdentityProjection returns a 1:1, untranslated projection.
func IdentityProjection() Projection {
	return Projection{Scale: Point{1, 1}}
}

// Project maps a shape-space point to pixel space.
func (p Projection) Project(shapeCoord Point) Point {
	return shapeCoord.Add(p.Translate).ComponentMul(p.Scale)
}

// Unproject maps a pixel-space point back to shape space.
func (p Projection) Unproject(pixelCoord Point) Point {
	return pixelCoord.ComponentDiv(p.Scale).Sub(p.Translate)
}

// ProjectVector scales a vector (ignoring Translate), for mapping
// lengths rather than positions.
func (p Projection) ProjectVector(v Point) Point { return v.ComponentMul(p.Scale) }

// UnprojectVector is the inverse of ProjectVector.
func (p Projection) UnprojectVector(v Point) Point { return v.ComponentDiv(p.Scale) }

// Range is an interval of raw distance values that DistanceMapping
// flattens to [0, 1].
type Range struct {
	Lower, Upper float64
}

// SymmetricRange returns the range [-width/2, width/2], the common case
// of a pixel-space distance range centered on the outline.
func SymmetricRange(width float64) Range {
	return Range{Lower: -width / 2, Upper: width / 2}
}

// Width returns Upper - Lower.
func (r Range) Width() float64 { return r.Upper - r.Lower }

// DistanceMapping flattens a raw signed distance in Rng to a normalized
// channel value: Rng.Lower maps to 0, Rng.Upper maps to 1, and the
// outline itself (distance 0) maps to -Rng.Lower/Rng.Width(), which sits
// at 0.5 for any range symmetric about zero.
type DistanceMapping struct {
	Rng Range
}

// NewDistanceMapping returns a mapping over rng.
func NewDistanceMapping(rng Range) DistanceMapping { return DistanceMapping{Rng: rng} }

// Map converts a raw distance to its normalized channel value.
func (m DistanceMapping) Map(d float64) float64 {
	return (d - m.Rng.Lower) / m.Rng.Width()
}

// Unmap is the inverse of Map, recovering a raw distance from a
// normalized channel value -- used by tests and by any decoder that
// needs the original distance units back.
func (m DistanceMapping) Unmap(v float64) float64 {
	return v*m.Rng.Width() + m.Rng.Lower
}

// SDFTransformation bundles the spatial projection and the distance
// mapping the generator needs to go from an output pixel coordinate to
// the shape-space sample point, and from a raw signed distance to the
// normalized value written into a channel.
type SDFTransformation struct {
	Projection      Projection
	DistanceMapping DistanceMapping
}

// NewSDFTransformation bundles a projection and a distance mapping.
func NewSDFTransformation(projection Projection, mapping DistanceMapping) SDFTransformation {
	return SDFTransformation{Projection: projection, DistanceMapping: mapping}
}

// Unproject maps an output pixel coordinate to its shape-space sample
// point.
func (t SDFTransformation) Unproject(pixel Point) Point {
	return t.Projection.Unproject(pixel)
}

// MapDistance normalizes a raw signed distance into a channel value.
func (t SDFTransformation) MapDistance(d float64) float64 {
	return t.DistanceMapping.Map(d)
}

package msdf

// Bitmap is a row-major raster of Channels float32 samples per pixel. It
// generalizes the fixed three-channel byte buffer a single-purpose MSDF
// renderer would use to any of the four distance-field variants: one
// channel for SDF/PSDF, three for MSDF, four for MTSDF.
type Bitmap struct {
	Width, Height, Channels int
	Data                    []float32
}

// NewBitmap allocates a zeroed bitmap. channels must be 1, 3, or 4.
func NewBitmap(width, height, channels int) *Bitmap {
	return &Bitmap{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     make([]float32, width*height*channels),
	}
}

// index returns the offset of pixel (x, y)'s first channel.
func (b *Bitmap) index(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// At returns channel c of pixel (x, y).
func (b *Bitmap) At(x, y, c int) float32 {
	return b.Data[b.index(x, y)+c]
}

// Set writes channel c of pixel (x, y).
func (b *Bitmap) Set(x, y, c int, v float32) {
	b.Data[b.index(x, y)+c] = v
}

// Pixel returns the Channels-length slice backing pixel (x, y), sharing
// storage with Data -- writes through it are visible in the bitmap.
func (b *Bitmap) Pixel(x, y int) []float32 {
	i := b.index(x, y)
	return b.Data[i : i+b.Channels]
}

// View returns a BitmapView over the full bitmap.
func (b *Bitmap) View() BitmapView {
	return BitmapView{bmp: b, OffsetX: 0, OffsetY: 0, Width: b.Width, Height: b.Height}
}

// SubView returns a BitmapView over the rectangle [x, x+w) x [y, y+h),
// sharing storage with b. It does not copy.
func (b *Bitmap) SubView(x, y, w, h int) BitmapView {
	return BitmapView{bmp: b, OffsetX: x, OffsetY: y, Width: w, Height: h}
}

// EncodeUint8 quantizes every sample to [0, 255], clamping normalized
// values outside [0, 1] rather than wrapping, and returns the packed
// Width*Height*Channels byte buffer a texture upload expects.
func (b *Bitmap) EncodeUint8() []byte {
	out := make([]byte, len(b.Data))
	for i, v := range b.Data {
		out[i] = quantizeByte(v)
	}
	return out
}

func quantizeByte(v float32) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return byte(v*255 + 0.5)
	}
}

// BitmapView is a non-owning, rectangular window onto a Bitmap, used to
// address an atlas slot without copying the backing storage.
type BitmapView struct {
	bmp              *Bitmap
	OffsetX, OffsetY int
	Width, Height    int
}

// Channels returns the number of channels in the underlying bitmap.
func (v BitmapView) Channels() int { return v.bmp.Channels }

// At returns channel c of the view-local pixel (x, y).
func (v BitmapView) At(x, y, c int) float32 {
	return v.bmp.At(v.OffsetX+x, v.OffsetY+y, c)
}

// Set writes channel c of the view-local pixel (x, y).
func (v BitmapView) Set(x, y, c int, val float32) {
	v.bmp.Set(v.OffsetX+x, v.OffsetY+y, c, val)
}

// Pixel returns the channel slice for the view-local pixel (x, y),
// sharing storage with the underlying bitmap.
func (v BitmapView) Pixel(x, y int) []float32 {
	return v.bmp.Pixel(v.OffsetX+x, v.OffsetY+y)
}

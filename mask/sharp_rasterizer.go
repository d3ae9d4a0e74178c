package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*SharpRasterizer)(nil)

// A [DefaultRasterizer] whose masks only contain fully opaque and fully
// transparent pixels, the same ones [ToGrid]() would set or clear with
// the same threshold. Handy to preview imports with regular image tools.
//
// A zero Threshold means [DefaultThreshold].
type SharpRasterizer struct {
	DefaultRasterizer
	Threshold uint8
}

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Rasterize(outline sfnt.Segments, offset fixed.Point26_6) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, offset)
	if err != nil || mask == nil { return mask, err }

	threshold := self.Threshold
	if threshold == 0 { threshold = DefaultThreshold }
	for i, value := range mask.Pix {
		mask.Pix[i] = 0
		if covers(value, threshold) { mask.Pix[i] = 255 }
	}
	return mask, nil
}

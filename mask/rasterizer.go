package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// A Rasterizer draws glyph outlines into alpha masks. Any implementation
// can be plugged into a font importer; [DefaultRasterizer] is based on
// [golang.org/x/image/vector].
//
// Rasterizers can't be used concurrently.
type Rasterizer interface {
	// Draws the outline displaced by the given subpixel offset. Only the
	// fractional part of the offset (0 to 0:63 on each axis) is used.
	//
	// The returned mask bounds are relative to the glyph origin, so
	// anything above the baseline has negative y coordinates.
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)
}

// Rasterizes the given outline, or returns a nil mask if the outline
// has nothing to draw (e.g. a space glyph, which has at most a few
// MoveTo segments).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, offset fixed.Point26_6) (*image.Alpha, error) {
	if !hasInk(outline) { return nil, nil }
	return rasterizer.Rasterize(outline, offset)
}

func hasInk(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

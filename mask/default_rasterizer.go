package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// Rasterizer based on [vector.Rasterizer]. The zero value is ready to use.
type DefaultRasterizer struct {
	canvas vector.Rasterizer
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, offset fixed.Point26_6) (*image.Alpha, error) {
	place := placeOutline(outline.Bounds(), offset)
	self.canvas.Reset(place.size.X, place.size.Y)
	self.canvas.DrawOp = draw.Src
	self.trace(outline, place.shift)

	mask := image.NewAlpha(self.canvas.Bounds())
	self.canvas.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(place.corner)
	return mask, nil
}

func (self *DefaultRasterizer) trace(outline sfnt.Segments, shift fixed.Point26_6) {
	at := func(i int, segment sfnt.Segment) (float32, float32) {
		point := segment.Args[i].Add(shift)
		return float32(point.X)/64, float32(point.Y)/64
	}

	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.canvas.MoveTo(at(0, segment))
		case sfnt.SegmentOpLineTo:
			self.canvas.LineTo(at(0, segment))
		case sfnt.SegmentOpQuadTo:
			cx, cy := at(0, segment)
			tx, ty := at(1, segment)
			self.canvas.QuadTo(cx, cy, tx, ty)
		case sfnt.SegmentOpCubeTo:
			ax, ay := at(0, segment)
			bx, by := at(1, segment)
			tx, ty := at(2, segment)
			self.canvas.CubeTo(ax, ay, bx, by, tx, ty)
		default:
			panic("unexpected segment op")
		}
	}
}

// Where an outline lands on the canvas. The vector rasterizer only draws
// in the positive quadrant, so outlines are shifted there and the mask is
// moved back to the glyph origin afterwards.
type placement struct {
	size   image.Point     // canvas size in pixels
	shift  fixed.Point26_6 // applied to outline points before tracing
	corner image.Point     // top-left of the mask relative to the origin
}

func placeOutline(bounds fixed.Rectangle26_6, offset fixed.Point26_6) placement {
	corner := image.Pt(bounds.Min.X.Floor(), bounds.Min.Y.Floor())
	shift := fixed.Point26_6{
		X: (offset.X & 0x3F) - fixed.I(corner.X),
		Y: (offset.Y & 0x3F) - fixed.I(corner.Y),
	}
	size := image.Pt((bounds.Max.X + shift.X).Ceil(), (bounds.Max.Y + shift.Y).Ceil())
	return placement{ size: size, shift: shift, corner: corner }
}

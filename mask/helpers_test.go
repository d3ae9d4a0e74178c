package mask

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// Builds test outlines with coordinates in pixels.
type outlineBuilder struct {
	segments sfnt.Segments
}

func px(value float64) fixed.Int26_6 { return fixed.Int26_6(value*64) }

func (self *outlineBuilder) add(op sfnt.SegmentOp, coords ...float64) *outlineBuilder {
	segment := sfnt.Segment{ Op: op }
	for i := 0; i + 1 < len(coords); i += 2 {
		segment.Args[i/2] = fixed.Point26_6{ X: px(coords[i]), Y: px(coords[i + 1]) }
	}
	self.segments = append(self.segments, segment)
	return self
}

func (self *outlineBuilder) moveTo(x, y float64) *outlineBuilder {
	return self.add(sfnt.SegmentOpMoveTo, x, y)
}

func (self *outlineBuilder) lineTo(x, y float64) *outlineBuilder {
	return self.add(sfnt.SegmentOpLineTo, x, y)
}

func (self *outlineBuilder) quadTo(cx, cy, x, y float64) *outlineBuilder {
	return self.add(sfnt.SegmentOpQuadTo, cx, cy, x, y)
}

// Closed polygon through the given x, y pairs.
func polygon(coords ...float64) sfnt.Segments {
	if len(coords) < 6 || len(coords) % 2 != 0 {
		panic("polygons need at least three x, y pairs")
	}
	builder := new(outlineBuilder).moveTo(coords[0], coords[1])
	for i := 2; i < len(coords); i += 2 {
		builder.lineTo(coords[i], coords[i + 1])
	}
	return builder.lineTo(coords[0], coords[1]).segments
}

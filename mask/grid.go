package mask

import "image"
import "image/color"

import "github.com/u-235/mythodius/grid"

// The default coverage threshold for [ToGrid](). Pixels covered by half
// or more of the glyph outline are set.
const DefaultThreshold uint8 = 128

// Converts the given area of a glyph mask to a grid. The cell at (0, 0)
// corresponds to the mask pixel at area.Min. Pixels with an alpha value
// greater or equal than the threshold are set, and pixels outside the
// mask bounds are always cleared. A threshold of zero is treated as one,
// so fully transparent pixels are never set.
//
// A nil mask results in a fully cleared grid of the area size.
func ToGrid(mask *image.Alpha, area image.Rectangle, threshold uint8) *grid.Grid {
	target := grid.New(area.Dx(), area.Dy())
	if mask == nil || target.IsEmpty() { return target }

	// only visit the overlap between area and mask
	overlap := area.Intersect(mask.Rect)
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		for x := overlap.Min.X; x < overlap.Max.X; x++ {
			if !covers(mask.AlphaAt(x, y).A, threshold) { continue }
			_, _ = target.Set(x - area.Min.X, y - area.Min.Y, true)
		}
	}
	return target
}

func covers(alpha, threshold uint8) bool {
	return alpha >= max(threshold, 1)
}

// Converts the given grid to a mask with bounds (0, 0, width, height).
// Set cells become fully opaque and cleared cells fully transparent.
func FromGrid(cells *grid.Grid) *image.Alpha {
	width, height := cells.Size()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	iter := cells.Iterator(0, 0, width, height, grid.RowsFromTopLeft)
	for iter.HasNext() {
		x, y := iter.Position()
		if iter.Next() {
			mask.SetAlpha(x, y, color.Alpha{0xFF})
		}
	}
	return mask
}

package mythodius

import "fmt"

import "github.com/u-235/mythodius/grid"

// Shifts the glyph content one pixel to the left. The leftmost column
// is lost and the rightmost column becomes clear. On non-empty glyphs,
// a [ReasonShifted] event is always fired for the full glyph area, even
// if no pixel changed.
func (self *Glyph) ShiftLeft() error {
	w, h := self.pixels.Size()
	return self.shift(grid.XYWH(1, 0, w-1, h), grid.ColumnsFromTopLeft)
}

// Shifts the glyph content one pixel to the right. See [Glyph.ShiftLeft]().
func (self *Glyph) ShiftRight() error {
	w, h := self.pixels.Size()
	return self.shift(grid.XYWH(0, 0, w-1, h), grid.ColumnsFromTopRight)
}

// Shifts the glyph content one pixel up. See [Glyph.ShiftLeft]().
func (self *Glyph) ShiftUp() error {
	w, h := self.pixels.Size()
	return self.shift(grid.XYWH(0, 1, w, h-1), grid.RowsFromTopLeft)
}

// Shifts the glyph content one pixel down. See [Glyph.ShiftLeft]().
func (self *Glyph) ShiftDown() error {
	w, h := self.pixels.Size()
	return self.shift(grid.XYWH(0, 0, w, h-1), grid.RowsFromBottomLeft)
}

// Copies the retained region over the full glyph area, both traversed
// in the same direction, and clears whatever the reader didn't cover.
// The writer always stays one line behind the reader, so cells are
// read before being overwritten.
func (self *Glyph) shift(retained grid.Rect, dir grid.Direction) error {
	if self.pixels.IsEmpty() {
		return nil
	}

	bounds := self.pixels.Bounds()
	src := self.pixels.Iterator(retained.X, retained.Y, retained.Width, retained.Height, dir)
	dst := self.pixels.Iterator(0, 0, bounds.Width, bounds.Height, dir)
	for src.HasNext() {
		dst.ChangeNext(src.Next())
	}
	for dst.HasNext() {
		dst.ChangeNext(false)
	}
	return self.fire(ReasonShifted, bounds)
}

// Removes the column at the given position, making the glyph one pixel
// narrower. Positions outside the glyph return [ErrInvalidArgument].
// Empty glyphs are left untouched. A [ReasonResize] event is fired with
// the glyph area before the removal.
func (self *Glyph) RemoveColumn(pos int) error {
	if self.pixels.IsEmpty() {
		return nil
	}
	w, h := self.pixels.Size()
	if pos < 0 || pos >= w {
		return fmt.Errorf("%w: column %d outside [0, %d)", ErrInvalidArgument, pos, w)
	}
	return self.excise(grid.New(w-1, h), grid.XYWH(0, 0, pos, h), grid.XYWH(pos+1, 0, w-pos-1, h), grid.ColumnsFromTopLeft)
}

// Removes the row at the given position, making the glyph one pixel
// shorter. Positions outside the glyph return [ErrInvalidArgument].
// Empty glyphs are left untouched. A [ReasonResize] event is fired with
// the glyph area before the removal.
func (self *Glyph) RemoveRow(pos int) error {
	if self.pixels.IsEmpty() {
		return nil
	}
	w, h := self.pixels.Size()
	if pos < 0 || pos >= h {
		return fmt.Errorf("%w: row %d outside [0, %d)", ErrInvalidArgument, pos, h)
	}
	return self.excise(grid.New(w, h-1), grid.XYWH(0, 0, w, pos), grid.XYWH(0, pos+1, w, h-pos-1), grid.RowsFromTopLeft)
}

// Fills the target grid with the before and after regions of the current
// grid, in this order, and replaces the glyph grid with the target. The
// direction must sweep along the removed line so both regions concatenate
// cleanly in the target traversal order.
func (self *Glyph) excise(target *grid.Grid, before, after grid.Rect, dir grid.Direction) error {
	bounds := self.pixels.Bounds()
	dst := target.Iterator(0, 0, target.Width(), target.Height(), dir)
	for _, region := range [2]grid.Rect{before, after} {
		src := self.pixels.Iterator(region.X, region.Y, region.Width, region.Height, dir)
		for src.HasNext() {
			dst.ChangeNext(src.Next())
		}
	}
	self.pixels = target
	return self.fire(ReasonResize, bounds)
}

// Mirrors the glyph around its vertical axis, so the left and right
// sides swap. On odd widths the central column stays in place. If any
// pixel changes, a [ReasonCopy] event is fired for the full glyph area.
func (self *Glyph) ReflectVertical() error {
	w, h := self.pixels.Size()
	half := w / 2
	return self.reflect(
		grid.XYWH(0, 0, half, h), grid.ColumnsFromTopLeft,
		grid.XYWH(w-half, 0, half, h), grid.ColumnsFromTopRight,
	)
}

// Mirrors the glyph around its horizontal axis, so the top and bottom
// sides swap. On odd heights the central row stays in place. If any
// pixel changes, a [ReasonCopy] event is fired for the full glyph area.
func (self *Glyph) ReflectHorizontal() error {
	w, h := self.pixels.Size()
	half := h / 2
	return self.reflect(
		grid.XYWH(0, 0, w, half), grid.RowsFromTopLeft,
		grid.XYWH(0, h-half, w, half), grid.RowsFromBottomLeft,
	)
}

// Swaps the cells of two equally sized halves. The directions make the
// two cursors visit mirrored cells at each step.
func (self *Glyph) reflect(near grid.Rect, nearDir grid.Direction, far grid.Rect, farDir grid.Direction) error {
	readNear := self.pixels.Iterator(near.X, near.Y, near.Width, near.Height, nearDir)
	readFar := self.pixels.Iterator(far.X, far.Y, far.Width, far.Height, farDir)
	writeNear := self.pixels.Iterator(near.X, near.Y, near.Width, near.Height, nearDir)
	writeFar := self.pixels.Iterator(far.X, far.Y, far.Width, far.Height, farDir)

	changed := false
	for readNear.HasNext() {
		a, b := readNear.Next(), readFar.Next()
		if a != b {
			changed = true
		}
		writeNear.ChangeNext(b)
		writeFar.ChangeNext(a)
	}
	if !changed {
		return nil
	}
	return self.fire(ReasonCopy, self.pixels.Bounds())
}

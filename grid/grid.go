package grid

import "fmt"
import "strings"

// A rectangular array of boolean pixel states. See the package
// documentation for the coordinate conventions.
//
// The zero value is an empty 0x0 grid ready to use.
type Grid struct {
	width  int
	height int
	cells  []bool // row-major, len(cells) == width*height at all times
}

// Creates a new grid with all its cells cleared. Negative sizes are
// treated as zero.
func New(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Creates a new grid and copies the given cells into it, row-major.
// Extra cells are ignored and missing cells are left cleared.
func NewFromBools(width, height int, cells []bool) *Grid {
	self := New(width, height)
	copy(self.cells, cells)
	return self
}

// Same as [NewFromBools](), but the cells are read from packed bits.
// See [Grid.Bytes]() for the packing rule.
func NewFromBytes(width, height int, packed []byte) *Grid {
	self := New(width, height)
	n := min(len(self.cells), len(packed)*8)
	unpackBits(self.cells[:n], packed)
	return self
}

// Returns the width of the grid.
func (self *Grid) Width() int { return self.width }

// Returns the height of the grid.
func (self *Grid) Height() int { return self.height }

// Utility method equivalent to ([Grid.Width](), [Grid.Height]()).
func (self *Grid) Size() (width, height int) {
	return self.width, self.height
}

// Returns the full grid area as a [Rect] with origin (0, 0).
func (self *Grid) Bounds() Rect {
	return Rect{Width: self.width, Height: self.height}
}

// Returns whether the grid has no cells at all, which happens when
// either its width or its height are zero.
func (self *Grid) IsEmpty() bool {
	return self.width == 0 || self.height == 0
}

// Returns whether the given cell is set. Coordinates outside the
// grid are always considered cleared.
func (self *Grid) Get(x, y int) bool {
	if !self.inBounds(x, y) {
		return false
	}
	return self.cells[y*self.width+x]
}

// Sets the given cell to the given value. Unlike [Grid.Get](), the
// coordinates must be within the grid bounds, or [ErrInvalidCoordinate]
// will be returned. The returned bool indicates whether the cell value
// actually changed.
func (self *Grid) Set(x, y int, value bool) (bool, error) {
	if !self.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrInvalidCoordinate, x, y, self.width, self.height)
	}
	return self.change(x, y, value), nil
}

// Changes the width of the grid. Columns are added or removed on
// the right side, and new columns are cleared. Negative widths are
// ignored.
//
// The returned value indicates whether any cell content was lost in
// the process, which only happens when the removed columns had set
// cells. Growing the grid or dropping clear columns returns false.
func (self *Grid) SetWidth(width int) bool {
	if width < 0 || width == self.width {
		return false
	}

	lost := false
	if width < self.width {
		for y := 0; y < self.height && !lost; y++ {
			row := self.cells[y*self.width : (y+1)*self.width]
			for _, set := range row[width:] {
				if set { lost = true; break }
			}
		}
	}

	cells := make([]bool, width*self.height)
	keep := min(width, self.width)
	for y := 0; y < self.height; y++ {
		copy(cells[y*width:y*width+keep], self.cells[y*self.width:y*self.width+keep])
	}
	self.cells = cells
	self.width = width
	return lost
}

// Changes the height of the grid. Rows are added or removed at the
// bottom, and new rows are cleared. Negative heights are ignored.
//
// The returned value follows the same logic as [Grid.SetWidth]().
func (self *Grid) SetHeight(height int) bool {
	if height < 0 || height == self.height {
		return false
	}

	lost := false
	if height < self.height {
		for _, set := range self.cells[height*self.width:] {
			if set { lost = true; break }
		}
	}

	cells := make([]bool, self.width*height)
	copy(cells, self.cells)
	self.cells = cells
	self.height = height
	return lost
}

// Applies [Grid.SetWidth]() and [Grid.SetHeight](). A negative value
// leaves the corresponding axis untouched.
func (self *Grid) SetSize(width, height int) bool {
	lostW := self.SetWidth(width)
	lostH := self.SetHeight(height)
	return lostW || lostH
}

// Returns a deep copy of the grid.
func (self *Grid) Clone() *Grid {
	return NewFromBools(self.width, self.height, self.cells)
}

// Returns whether both grids have the same size and the same cell
// values. A nil grid is only equal to another nil grid.
func (self *Grid) Equal(other *Grid) bool {
	if self == nil || other == nil {
		return self == other
	}
	if self.width != other.width || self.height != other.height {
		return false
	}
	for i, set := range self.cells {
		if other.cells[i] != set {
			return false
		}
	}
	return true
}

// Returns a copy of the cells, row-major, or nil if the grid is empty.
func (self *Grid) Bools() []bool {
	if self.IsEmpty() {
		return nil
	}
	cells := make([]bool, len(self.cells))
	copy(cells, self.cells)
	return cells
}

// Overwrites all the grid cells with the given values, row-major,
// without changing the grid size. The data length must match the
// cell count exactly, or [ErrInvalidArgument] will be returned and
// the grid won't be modified.
//
// The returned bool indicates whether any cell value changed.
func (self *Grid) SetBools(cells []bool) (bool, error) {
	if len(cells) != len(self.cells) {
		return false, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidArgument, len(cells), self.width, self.height)
	}
	changed := false
	for i, set := range cells {
		if self.cells[i] != set {
			self.cells[i] = set
			changed = true
		}
	}
	return changed, nil
}

// Creates an [Iterator] bound to the region [x, x + width) x [y, y + height)
// of the grid, traversed in the given direction. The region may exceed
// the grid bounds: cells outside the grid read as cleared, and writes
// to them are discarded.
func (self *Grid) Iterator(x, y, width, height int, dir Direction) *Iterator {
	return newIterator(self, x, y, width, height, dir)
}

// Returns a multi-line representation of the grid for debugging, with
// 'X' for set cells and '.' for cleared ones.
func (self *Grid) String() string {
	var builder strings.Builder
	for y := 0; y < self.height; y++ {
		if y > 0 { builder.WriteByte('\n') }
		for x := 0; x < self.width; x++ {
			if self.cells[y*self.width+x] {
				builder.WriteByte('X')
			} else {
				builder.WriteByte('.')
			}
		}
	}
	return builder.String()
}

// ---- helpers ----

func (self *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < self.width && y >= 0 && y < self.height
}

// Sets the cell without bounds checks and returns whether it changed.
func (self *Grid) change(x, y int, value bool) bool {
	index := y*self.width + x
	if self.cells[index] == value {
		return false
	}
	self.cells[index] = value
	return true
}

package grid

// A read/write cursor over a rectangular region of a [Grid], visiting
// every cell of the region exactly once in the order given by its
// [Direction]. Iterators are created with [Grid.Iterator]().
//
// Reading and writing both advance the cursor, so a typical transform
// pairs two iterators:
//   src := g.Iterator(1, 0, w - 1, h, grid.ColumnsFromTopLeft)
//   dst := g.Iterator(0, 0, w, h, grid.ColumnsFromTopLeft)
//   for src.HasNext() { dst.ChangeNext(src.Next()) }
//   for dst.HasNext() { dst.ChangeNext(false) }
//
// The region is not clipped to the grid. Reads outside the grid return
// false and writes outside the grid are discarded, but they still count
// as visited cells, which keeps paired iterators aligned.
//
// Iterators must not be used after the geometry of their grid changes.
type Iterator struct {
	grid *Grid

	startX, startY int // first visited cell
	stepX, stepY   int // +1 or -1, moving away from the start corner
	lineLen        int // cells per row (or column, when columnsFirst)
	columnsFirst   bool

	visited int
	total   int
}

func newIterator(grid *Grid, x, y, width, height int, dir Direction) *Iterator {
	if !dir.Valid() { panic("invalid grid.Direction") } // dev mistake
	width, height = max(width, 0), max(height, 0)

	iter := &Iterator{
		grid:         grid,
		startX:       x,
		startY:       y,
		stepX:        1,
		stepY:        1,
		lineLen:      width,
		columnsFirst: dir.columnsFirst(),
		total:        width * height,
	}
	if dir.fromRight() {
		iter.startX = x + width - 1
		iter.stepX = -1
	}
	if dir.fromBottom() {
		iter.startY = y + height - 1
		iter.stepY = -1
	}
	if iter.columnsFirst {
		iter.lineLen = height
	}
	return iter
}

// Returns whether there are cells left to visit.
func (self *Iterator) HasNext() bool {
	return self.visited < self.total
}

// Returns the number of cells left to visit.
func (self *Iterator) Remaining() int {
	return self.total - self.visited
}

// Returns the coordinates of the cell that the next call to
// [Iterator.Next]() or [Iterator.ChangeNext]() will visit. The
// result is meaningless if [Iterator.HasNext]() is false.
func (self *Iterator) Position() (x, y int) {
	along, across := self.visited%self.lineLenOrOne(), self.visited/self.lineLenOrOne()
	if self.columnsFirst {
		return self.startX + across*self.stepX, self.startY + along*self.stepY
	}
	return self.startX + along*self.stepX, self.startY + across*self.stepY
}

// Returns the value of the current cell and advances the cursor.
// Calling Next when [Iterator.HasNext]() is false will panic.
func (self *Iterator) Next() bool {
	x, y := self.advance()
	return self.grid.Get(x, y)
}

// Writes the given value to the current cell and advances the cursor.
// The returned bool indicates whether the cell value changed, which
// is always false for cells outside the grid. Calling ChangeNext when
// [Iterator.HasNext]() is false will panic.
func (self *Iterator) ChangeNext(value bool) bool {
	x, y := self.advance()
	if !self.grid.inBounds(x, y) {
		return false
	}
	return self.grid.change(x, y, value)
}

func (self *Iterator) advance() (int, int) {
	if self.visited >= self.total {
		panic("grid.Iterator advanced past its last cell")
	}
	x, y := self.Position()
	self.visited += 1
	return x, y
}

func (self *Iterator) lineLenOrOne() int {
	if self.lineLen == 0 { return 1 }
	return self.lineLen
}

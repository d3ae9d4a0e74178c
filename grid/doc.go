// The grid subpackage defines the [Grid] type, a rectangular array of
// boolean pixel states used as the storage of bitmap font glyphs, and
// the [Iterator] cursors used to traverse and rewrite it.
//
// Pixels are stored row-major with the origin at the top-left corner.
// A true value means "set" (ink), false means "clear" (paper). Any
// coordinate outside the grid reads as clear, so code that walks past
// the edges of a glyph never needs to special-case them:
//   g := grid.New(8, 8)
//   g.Get(-1, 2) // false
//
// Most bulk transforms over a grid can be written as two iterators
// advanced in lockstep, one reading with [Iterator.Next]() and one
// writing with [Iterator.ChangeNext](). The traversal order of each
// cursor is fixed by its [Direction], so shifting, mirroring or removing
// lines never requires manual index arithmetic.
//
// Grids are value-like: [Grid.Clone]() always copies the storage, and no
// two grids ever share it. Grids are not safe for concurrent use.
package grid

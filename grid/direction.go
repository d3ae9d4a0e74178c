package grid

// The traversal order of an [Iterator]. Each direction is defined
// by the corner of the region where the traversal starts and the
// axis swept first:
//  - Rows directions visit a whole row, moving horizontally away from
//    the start corner, before stepping to the next row.
//  - Columns directions visit a whole column, moving vertically away
//    from the start corner, before stepping to the next column.
//
// For example, on a 3x2 region RowsFromTopRight visits (2, 0), (1, 0),
// (0, 0), (2, 1), (1, 1), (0, 1), while ColumnsFromBottomLeft visits
// (0, 1), (0, 0), (1, 1), (1, 0), (2, 1), (2, 0).
type Direction uint8

// Bit layout: 0b_CBR (columns first, start at bottom, start at right).
const (
	RowsFromTopLeft Direction = iota
	RowsFromTopRight
	RowsFromBottomLeft
	RowsFromBottomRight
	ColumnsFromTopLeft
	ColumnsFromTopRight
	ColumnsFromBottomLeft
	ColumnsFromBottomRight
)

func (self Direction) fromRight() bool    { return self&0b001 != 0 }
func (self Direction) fromBottom() bool   { return self&0b010 != 0 }
func (self Direction) columnsFirst() bool { return self&0b100 != 0 }

// Returns whether the direction is one of the predefined constants.
func (self Direction) Valid() bool {
	return self <= ColumnsFromBottomRight
}

// Returns the name of the direction (e.g.: "RowsFromTopLeft").
func (self Direction) String() string {
	switch self {
	case RowsFromTopLeft:
		return "RowsFromTopLeft"
	case RowsFromTopRight:
		return "RowsFromTopRight"
	case RowsFromBottomLeft:
		return "RowsFromBottomLeft"
	case RowsFromBottomRight:
		return "RowsFromBottomRight"
	case ColumnsFromTopLeft:
		return "ColumnsFromTopLeft"
	case ColumnsFromTopRight:
		return "ColumnsFromTopRight"
	case ColumnsFromBottomLeft:
		return "ColumnsFromBottomLeft"
	case ColumnsFromBottomRight:
		return "ColumnsFromBottomRight"
	default:
		return "InvalidDirection"
	}
}

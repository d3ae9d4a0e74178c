package grid

import "errors"

// Returned when an argument can't be accepted: malformed or mis-sized
// bulk data, negative indices, out of range line positions, etc.
var ErrInvalidArgument = errors.New("invalid argument")

// Returned by strict setters when the coordinates fall outside the
// current grid bounds.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

package mythodius

import "github.com/u-235/mythodius/grid"

// The kind of change described by a [ChangeEvent].
type Reason uint8

const (
	// The pixel content was replaced or rearranged without changing
	// the glyph size (bulk copies, reflections).
	ReasonCopy Reason = iota + 1

	// The glyph size changed.
	ReasonResize

	// A single pixel changed.
	ReasonPixelChanged

	// The glyph index changed.
	ReasonIndexChanged

	// The glyph content was shifted by one pixel.
	ReasonShifted
)

// Returns the name of the reason (e.g.: "PixelChanged").
func (self Reason) String() string {
	switch self {
	case ReasonCopy:
		return "Copy"
	case ReasonResize:
		return "Resize"
	case ReasonPixelChanged:
		return "PixelChanged"
	case ReasonIndexChanged:
		return "IndexChanged"
	case ReasonShifted:
		return "Shifted"
	default:
		return "Unknown"
	}
}

// Describes a change to a [Glyph]. Events are passed by value, so
// listeners can't modify what other listeners receive.
type ChangeEvent struct {
	Reason Reason

	// The region affected by the change, in glyph coordinates. For
	// resizes this is the full glyph area before or after the change,
	// as documented on each method.
	Rect grid.Rect
}

// Receives change events from a glyph. Returning an error stops the
// notification of later listeners, and the error is returned by the
// glyph method that triggered the event.
type Listener = func(ChangeEvent) error

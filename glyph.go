package mythodius

import "errors"
import "fmt"

import "github.com/u-235/mythodius/grid"
import "github.com/u-235/mythodius/notify"

// Returned for invalid arguments like negative indices, mis-sized pixel
// arrays or out of range line positions. Same as [grid.ErrInvalidArgument].
var ErrInvalidArgument = grid.ErrInvalidArgument

// Returned when trying to set a pixel outside the glyph bounds. Same as
// [grid.ErrInvalidCoordinate].
var ErrInvalidCoordinate = grid.ErrInvalidCoordinate

// Returned by [Glyph.Adopt]() when the glyph already belongs to a
// different collection.
var ErrAlreadyAdopted = errors.New("glyph already belongs to another collection")

// A single character of a bitmap font: a grid of pixels plus the glyph
// index within its font.
//
// A glyph may belong to at most one collection (its parent). While it
// does, the index is owned by the collection and [Glyph.SetIndex]() has
// no effect. Listener registrations are never copied by [Glyph.Clone]()
// or [Glyph.Copy]().
type Glyph struct {
	pixels    *grid.Grid
	index     int
	parent    Handle
	prev      Handle
	next      Handle
	listeners notify.Notifier[ChangeEvent]
}

// Creates a new detached glyph of the given size with all its pixels
// cleared and index 0.
func NewGlyph(width, height int) *Glyph {
	return &Glyph{pixels: grid.New(width, height)}
}

// Creates a new detached glyph and copies the given pixels into it,
// row-major. Extra values are ignored and missing pixels are cleared.
func NewGlyphFromBools(width, height int, pixels []bool) *Glyph {
	return &Glyph{pixels: grid.NewFromBools(width, height, pixels)}
}

// Same as [NewGlyphFromBools](), but reading packed pixels. See
// [grid.Grid.Bytes]() for the packing rule.
func NewGlyphFromBytes(width, height int, packed []byte) *Glyph {
	return &Glyph{pixels: grid.NewFromBytes(width, height, packed)}
}

// Creates a new detached glyph with a copy of the given grid.
func NewGlyphFromGrid(pixels *grid.Grid) *Glyph {
	return &Glyph{pixels: pixels.Clone()}
}

// ---- listeners ----

// Registers a listener for the glyph change events and returns the
// handle needed to remove it. The same function can be registered
// multiple times, and will be called once per registration.
func (self *Glyph) AddListener(listener Listener) notify.Handle {
	return self.listeners.Add(listener)
}

// Removes the listener registration identified by the given handle.
// Returns false if the registration doesn't exist.
func (self *Glyph) RemoveListener(handle notify.Handle) bool {
	return self.listeners.Remove(handle)
}

func (self *Glyph) fire(reason Reason, rect grid.Rect) error {
	return self.listeners.Fire(ChangeEvent{Reason: reason, Rect: rect})
}

// ---- pixels ----

// Returns the glyph width in pixels.
func (self *Glyph) Width() int { return self.pixels.Width() }

// Returns the glyph height in pixels.
func (self *Glyph) Height() int { return self.pixels.Height() }

// Utility method equivalent to ([Glyph.Width](), [Glyph.Height]()).
func (self *Glyph) Size() (width, height int) { return self.pixels.Size() }

// Returns the full glyph area, with origin (0, 0).
func (self *Glyph) Bounds() grid.Rect { return self.pixels.Bounds() }

// Returns whether the glyph has zero width or zero height.
func (self *Glyph) IsEmpty() bool { return self.pixels.IsEmpty() }

// Returns whether the given pixel is set. Coordinates outside the
// glyph are always considered cleared.
func (self *Glyph) Pixel(x, y int) bool { return self.pixels.Get(x, y) }

// Returns a copy of the glyph pixels as a grid. Changes to the returned
// grid don't affect the glyph.
func (self *Glyph) Grid() *grid.Grid { return self.pixels.Clone() }

// Returns a copy of the pixels, row-major, or nil if the glyph is empty.
func (self *Glyph) Array() []bool { return self.pixels.Bools() }

// Returns a copy of the pixels packed in bytes, or nil if the glyph is
// empty. See [grid.Grid.Bytes]() for the packing rule.
func (self *Glyph) PackedArray() []byte { return self.pixels.Bytes() }

// Sets or clears the given pixel. If the coordinates are outside the
// glyph, [ErrInvalidCoordinate] is returned. If the pixel value changes,
// a [ReasonPixelChanged] event is fired for the 1x1 pixel rect.
func (self *Glyph) SetPixel(x, y int, value bool) error {
	changed, err := self.pixels.Set(x, y, value)
	if err != nil || !changed {
		return err
	}
	return self.fire(ReasonPixelChanged, grid.XYWH(x, y, 1, 1))
}

// Overwrites all the pixels without changing the glyph size. The number
// of values must match the number of pixels, or [ErrInvalidArgument] is
// returned and nothing changes. If any pixel changes, a [ReasonCopy]
// event is fired for the full glyph area.
func (self *Glyph) SetArray(pixels []bool) error {
	changed, err := self.pixels.SetBools(pixels)
	if err != nil || !changed {
		return err
	}
	return self.fire(ReasonCopy, self.pixels.Bounds())
}

// Same as [Glyph.SetArray](), but reading packed pixels. The data must
// have exactly [grid.PackedLen](width*height) bytes.
func (self *Glyph) SetPackedArray(packed []byte) error {
	changed, err := self.pixels.SetBytes(packed)
	if err != nil || !changed {
		return err
	}
	return self.fire(ReasonCopy, self.pixels.Bounds())
}

// ---- size ----

// Changes the glyph width. Columns are added or removed on the right
// side. Negative widths are ignored. If the size changes, a [ReasonResize]
// event is fired with the new glyph area.
func (self *Glyph) SetWidth(width int) error {
	return self.resize(width, -1)
}

// Changes the glyph height. Rows are added or removed at the bottom.
// Negative heights are ignored. If the size changes, a [ReasonResize]
// event is fired with the new glyph area.
func (self *Glyph) SetHeight(height int) error {
	return self.resize(-1, height)
}

// Changes both the glyph width and height, with the same rules as
// [Glyph.SetWidth]() and [Glyph.SetHeight](). A single [ReasonResize]
// event is fired if any of them changes.
func (self *Glyph) SetSize(width, height int) error {
	return self.resize(width, height)
}

func (self *Glyph) resize(width, height int) error {
	prevWidth, prevHeight := self.pixels.Size()
	_ = self.pixels.SetSize(width, height)
	newWidth, newHeight := self.pixels.Size()
	if newWidth == prevWidth && newHeight == prevHeight {
		return nil
	}
	return self.fire(ReasonResize, self.pixels.Bounds())
}

// ---- identity ----

// Returns the glyph index within its font.
func (self *Glyph) Index() int { return self.index }

// Sets the glyph index. Negative indices return [ErrInvalidArgument].
// If the glyph belongs to a collection, the index is managed by the
// collection and the call is silently ignored. Otherwise, if the index
// changes, a [ReasonIndexChanged] event is fired for the full glyph area.
func (self *Glyph) SetIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: negative glyph index %d", ErrInvalidArgument, index)
	}
	if self.parent != NoHandle || self.index == index {
		return nil
	}
	self.index = index
	return self.fire(ReasonIndexChanged, self.pixels.Bounds())
}

// Returns the handle of the collection the glyph belongs to, or
// [NoHandle] if the glyph is detached.
func (self *Glyph) Parent() Handle { return self.parent }

// Returns the handle of the previous glyph in the parent collection,
// or [NoHandle].
func (self *Glyph) Prev() Handle { return self.prev }

// Returns the handle of the next glyph in the parent collection,
// or [NoHandle].
func (self *Glyph) Next() Handle { return self.next }

// Attaches the glyph to the given collection and assigns its index.
// This is the collection side of the adoption protocol: applications
// should add glyphs to their collections instead of calling this
// directly. No event is fired.
//
// Adopting a glyph again with the same parent only updates the index.
// A glyph that belongs to a different parent returns [ErrAlreadyAdopted].
func (self *Glyph) Adopt(parent Handle, index int) error {
	if parent == NoHandle {
		return fmt.Errorf("%w: adoption requires a parent handle", ErrInvalidArgument)
	}
	if index < 0 {
		return fmt.Errorf("%w: negative glyph index %d", ErrInvalidArgument, index)
	}
	if self.parent != NoHandle && self.parent != parent {
		return ErrAlreadyAdopted
	}
	self.parent = parent
	self.index = index
	return nil
}

// Sets the sibling handles used by the parent collection to traverse
// its glyphs in order. Like [Glyph.Adopt](), this is meant to be
// called by collections only.
func (self *Glyph) Link(prev, next Handle) {
	self.prev, self.next = prev, next
}

// ---- copies ----

// Returns a detached copy of the glyph with the same pixels and index.
// Listeners, parent and siblings are not copied.
func (self *Glyph) Clone() *Glyph {
	return &Glyph{pixels: self.pixels.Clone(), index: self.index}
}

// Replaces the glyph pixels with a copy of the pixels of the given
// glyph. The index, parent and listeners are kept. A [ReasonResize]
// event is fired if the size changes, and then a [ReasonCopy] event
// if the resulting pixels differ from the previous ones.
func (self *Glyph) Copy(source *Glyph) error {
	if source == nil {
		return fmt.Errorf("%w: nil source glyph", ErrInvalidArgument)
	}
	if source == self {
		return nil
	}

	prev := self.pixels
	self.pixels = source.pixels.Clone()
	prevWidth, prevHeight := prev.Size()
	width, height := self.pixels.Size()
	if width != prevWidth || height != prevHeight {
		err := self.fire(ReasonResize, self.pixels.Bounds())
		if err != nil {
			return err
		}
	}
	if !self.pixels.Equal(prev) && !self.pixels.IsEmpty() {
		return self.fire(ReasonCopy, self.pixels.Bounds())
	}
	return nil
}

// Returns whether both glyphs have the same index and pixels.
func (self *Glyph) Equal(other *Glyph) bool {
	if self == nil || other == nil {
		return self == other
	}
	return self.index == other.index && self.pixels.Equal(other.pixels)
}

// Returns a multi-line representation of the glyph pixels for debugging.
// See [grid.Grid.String]().
func (self *Glyph) String() string {
	return self.pixels.String()
}

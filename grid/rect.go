package grid

import "image"
import "strconv"

// A rectangular region in grid coordinates, defined by its top-left
// corner and its size. Like [image.Rectangle], the cells at X + Width
// and Y + Height are not included in the rect.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Creates a rect from its origin and size.
func XYWH(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return Rect{X: rect.Min.X, Y: rect.Min.Y, Width: rect.Dx(), Height: rect.Dy()}
}

// Converts the rect to an [image.Rectangle] stdlib value.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(self.X, self.Y, self.X+self.Width, self.Y+self.Height)
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Width <= 0 || self.Height <= 0
}

// Returns whether the rect contains the given cell or not.
func (self Rect) Contains(x, y int) bool {
	return x >= self.X && x < self.X+self.Width && y >= self.Y && y < self.Y+self.Height
}

// Utility method equivalent to (Rect.Width, Rect.Height).
func (self Rect) Size() (width, height int) {
	return self.Width, self.Height
}

// Returns a textual representation of the rect (e.g.: "(1, 0) 4x2").
func (self Rect) String() string {
	return "(" + strconv.Itoa(self.X) + ", " + strconv.Itoa(self.Y) + ") " +
		strconv.Itoa(self.Width) + "x" + strconv.Itoa(self.Height)
}

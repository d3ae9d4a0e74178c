package grid

import "fmt"

// Returns the number of bytes needed to pack the given number of
// cells, one bit per cell.
func PackedLen(cells int) int {
	return (cells + 7) >> 3
}

// Returns a copy of the cells packed in bytes, or nil if the grid is
// empty. Cells are taken row-major and stored one per bit, starting
// from the least significant bit of the first byte. Unused bits of the
// last byte are zero.
//
// This packing rule is the compatibility contract for any external
// serialization of glyphs, so it must never change.
func (self *Grid) Bytes() []byte {
	if self.IsEmpty() {
		return nil
	}
	packed := make([]byte, PackedLen(len(self.cells)))
	for i, set := range self.cells {
		if set {
			packed[i>>3] |= 1 << (i & 7)
		}
	}
	return packed
}

// Same as [Grid.SetBools](), but the cells are read from packed bits
// following the rule described in [Grid.Bytes](). The data length must
// be exactly [PackedLen](width*height). Unused bits of the last byte
// are ignored.
func (self *Grid) SetBytes(packed []byte) (bool, error) {
	if len(packed) != PackedLen(len(self.cells)) {
		return false, fmt.Errorf("%w: %d bytes for a %dx%d grid", ErrInvalidArgument, len(packed), self.width, self.height)
	}
	changed := false
	for i := range self.cells {
		set := packed[i>>3]&(1<<(i&7)) != 0
		if self.cells[i] != set {
			self.cells[i] = set
			changed = true
		}
	}
	return changed, nil
}

// Unpacks as many bits as cells are given. The caller must ensure
// that len(packed)*8 >= len(cells).
func unpackBits(cells []bool, packed []byte) {
	for i := range cells {
		cells[i] = packed[i>>3]&(1<<(i&7)) != 0
	}
}

package mythodius

import "errors"
import "testing"

import "github.com/u-235/mythodius/grid"

// Creates a glyph from rows of 'X' and '.' characters.
func glyphFromRows(rows ...string) *Glyph {
	if len(rows) == 0 { return NewGlyph(0, 0) }
	pixels := make([]bool, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			pixels = append(pixels, row[i] == 'X')
		}
	}
	return NewGlyphFromBools(len(rows[0]), len(rows), pixels)
}

func expectRows(t *testing.T, glyph *Glyph, rows ...string) {
	t.Helper()
	expected := glyphFromRows(rows...)
	if !glyph.pixels.Equal(expected.pixels) {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, glyph)
	}
}

// Records all the events fired by the glyph.
type eventLog struct {
	events []ChangeEvent
}

func recordEvents(glyph *Glyph) *eventLog {
	log := &eventLog{}
	glyph.AddListener(func(event ChangeEvent) error {
		log.events = append(log.events, event)
		return nil
	})
	return log
}

func (self *eventLog) expect(t *testing.T, expected ...ChangeEvent) {
	t.Helper()
	if len(self.events) != len(expected) {
		t.Fatalf("expected %d events, got %d (%v)", len(expected), len(self.events), self.events)
	}
	for i, event := range expected {
		if self.events[i] != event {
			t.Fatalf("event %d: expected %v %v, got %v %v", i, event.Reason, event.Rect, self.events[i].Reason, self.events[i].Rect)
		}
	}
	self.events = self.events[:0]
}

func TestSetPixelAndShiftScenario(t *testing.T) {
	glyph := NewGlyph(4, 2)
	log := recordEvents(glyph)

	if err := glyph.SetPixel(0, 0, true); err != nil { t.Fatal(err) }
	if !glyph.Pixel(0, 0) { t.Fatal("expected (0, 0) to be set") }
	log.expect(t, ChangeEvent{ReasonPixelChanged, grid.XYWH(0, 0, 1, 1)})

	if err := glyph.ShiftRight(); err != nil { t.Fatal(err) }
	if !glyph.Pixel(1, 0) { t.Fatal("expected (1, 0) to be set") }
	if glyph.Pixel(0, 0) { t.Fatal("expected (0, 0) to be cleared") }
	log.expect(t, ChangeEvent{ReasonShifted, grid.XYWH(0, 0, 4, 2)})
}

func TestSetPixel(t *testing.T) {
	glyph := NewGlyph(3, 3)
	log := recordEvents(glyph)

	if err := glyph.SetPixel(1, 1, false); err != nil { t.Fatal(err) }
	log.expect(t)

	if err := glyph.SetPixel(2, 1, true); err != nil { t.Fatal(err) }
	if err := glyph.SetPixel(2, 1, true); err != nil { t.Fatal(err) }
	log.expect(t, ChangeEvent{ReasonPixelChanged, grid.XYWH(2, 1, 1, 1)})

	err := glyph.SetPixel(3, 0, true)
	if !errors.Is(err, ErrInvalidCoordinate) { t.Fatalf("expected ErrInvalidCoordinate, got %v", err) }
	log.expect(t)
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name     string
		shift    func(*Glyph) error
		expected []string
	}{
		{"left",  (*Glyph).ShiftLeft,  []string{"..X.", "XX..", ".X.."}},
		{"right", (*Glyph).ShiftRight, []string{".X..", "..XX", ".X.X"}},
		{"up",    (*Glyph).ShiftUp,    []string{".XX.", "X.X.", "...."}},
		{"down",  (*Glyph).ShiftDown,  []string{"....", "X..X", ".XX."}},
	}

	for _, test := range tests {
		glyph := glyphFromRows(
			"X..X",
			".XX.",
			"X.X.",
		)
		log := recordEvents(glyph)
		if err := test.shift(glyph); err != nil { t.Fatal(err) }
		expectRows(t, glyph, test.expected...)
		log.expect(t, ChangeEvent{ReasonShifted, grid.XYWH(0, 0, 4, 3)})
	}
}

func TestShiftLeftRightRoundTrip(t *testing.T) {
	glyph := glyphFromRows(
		"XX.X",
		"X.XX",
	)
	_ = glyph.ShiftLeft()
	_ = glyph.ShiftRight()
	expectRows(t, glyph,
		".X.X",
		"..XX",
	)
}

func TestShiftEdgeCases(t *testing.T) {
	// shifting a clear glyph still reports the shift
	glyph := NewGlyph(2, 2)
	log := recordEvents(glyph)
	if err := glyph.ShiftUp(); err != nil { t.Fatal(err) }
	log.expect(t, ChangeEvent{ReasonShifted, grid.XYWH(0, 0, 2, 2)})

	// single column glyphs are cleared
	glyph = glyphFromRows("X", "X")
	_ = glyph.ShiftLeft()
	expectRows(t, glyph, ".", ".")

	// empty glyphs are ignored
	glyph = NewGlyph(0, 3)
	log = recordEvents(glyph)
	for _, shift := range []func() error{glyph.ShiftLeft, glyph.ShiftRight, glyph.ShiftUp, glyph.ShiftDown} {
		if err := shift(); err != nil { t.Fatal(err) }
	}
	log.expect(t)
}

func TestRemoveColumn(t *testing.T) {
	rows := []string{
		"X.XX.",
		".X..X",
	}
	for pos := 0; pos < 5; pos++ {
		original := glyphFromRows(rows...)
		glyph := original.Clone()
		log := recordEvents(glyph)
		if err := glyph.RemoveColumn(pos); err != nil { t.Fatal(err) }
		if glyph.Width() != 4 || glyph.Height() != 2 {
			t.Fatalf("expected 4x2 glyph, got %dx%d", glyph.Width(), glyph.Height())
		}
		for y := 0; y < 2; y++ {
			for c := 0; c < 4; c++ {
				src := c
				if c >= pos { src = c + 1 }
				if glyph.Pixel(c, y) != original.Pixel(src, y) {
					t.Fatalf("pos %d: pixel (%d, %d) doesn't match original column %d", pos, c, y, src)
				}
			}
		}
		log.expect(t, ChangeEvent{ReasonResize, grid.XYWH(0, 0, 5, 2)})
	}

	glyph := glyphFromRows("XX")
	for _, pos := range []int{-1, 2} {
		err := glyph.RemoveColumn(pos)
		if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
	}
	_ = glyph.RemoveColumn(0)
	_ = glyph.RemoveColumn(0)
	if !glyph.IsEmpty() || glyph.Height() != 1 { t.Fatal("expected empty 0x1 glyph") }

	// no-op on empty glyphs, whatever the position
	log := recordEvents(glyph)
	if err := glyph.RemoveColumn(7); err != nil { t.Fatal(err) }
	log.expect(t)
}

func TestRemoveRow(t *testing.T) {
	glyph := glyphFromRows(
		"X..",
		".X.",
		"..X",
	)
	log := recordEvents(glyph)
	if err := glyph.RemoveRow(1); err != nil { t.Fatal(err) }
	expectRows(t, glyph, "X..", "..X")
	log.expect(t, ChangeEvent{ReasonResize, grid.XYWH(0, 0, 3, 3)})

	if err := glyph.RemoveRow(1); err != nil { t.Fatal(err) }
	expectRows(t, glyph, "X..")

	err := glyph.RemoveRow(1)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
}

func TestReflect(t *testing.T) {
	glyph := glyphFromRows(
		"XX...",
		"..X.X",
	)
	log := recordEvents(glyph)
	if err := glyph.ReflectVertical(); err != nil { t.Fatal(err) }
	expectRows(t, glyph, "...XX", "X.X..")
	log.expect(t, ChangeEvent{ReasonCopy, grid.XYWH(0, 0, 5, 2)})

	if err := glyph.ReflectVertical(); err != nil { t.Fatal(err) }
	expectRows(t, glyph, "XX...", "..X.X")
	log.expect(t, ChangeEvent{ReasonCopy, grid.XYWH(0, 0, 5, 2)})

	if err := glyph.ReflectHorizontal(); err != nil { t.Fatal(err) }
	expectRows(t, glyph, "..X.X", "XX...")
	log.expect(t, ChangeEvent{ReasonCopy, grid.XYWH(0, 0, 5, 2)})

	// symmetric content fires nothing
	symmetric := glyphFromRows(
		"X.X",
		".X.",
		"X.X",
	)
	log = recordEvents(symmetric)
	_ = symmetric.ReflectVertical()
	_ = symmetric.ReflectHorizontal()
	log.expect(t)

	// odd heights keep the central row
	odd := glyphFromRows("X.", "XX", ".X")
	_ = odd.ReflectHorizontal()
	expectRows(t, odd, ".X", "XX", "X.")
}

func TestResizeEvents(t *testing.T) {
	glyph := glyphFromRows("X.", ".X")
	log := recordEvents(glyph)

	if err := glyph.SetWidth(-1); err != nil { t.Fatal(err) }
	if err := glyph.SetWidth(2); err != nil { t.Fatal(err) }
	log.expect(t)

	_ = glyph.SetWidth(3)
	log.expect(t, ChangeEvent{ReasonResize, grid.XYWH(0, 0, 3, 2)})
	_ = glyph.SetHeight(1)
	log.expect(t, ChangeEvent{ReasonResize, grid.XYWH(0, 0, 3, 1)})
	expectRows(t, glyph, "X..")

	_ = glyph.SetSize(2, 2)
	log.expect(t, ChangeEvent{ReasonResize, grid.XYWH(0, 0, 2, 2)})
	expectRows(t, glyph, "X.", "..")
	_ = glyph.SetSize(-1, 2)
	log.expect(t)
}

func TestSetArray(t *testing.T) {
	glyph := NewGlyph(3, 1)
	log := recordEvents(glyph)

	if err := glyph.SetArray([]bool{true, false, true}); err != nil { t.Fatal(err) }
	log.expect(t, ChangeEvent{ReasonCopy, grid.XYWH(0, 0, 3, 1)})
	if err := glyph.SetArray([]bool{true, false, true}); err != nil { t.Fatal(err) }
	log.expect(t)

	err := glyph.SetArray([]bool{false})
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
	expectRows(t, glyph, "X.X")

	if err := glyph.SetPackedArray([]byte{0b010}); err != nil { t.Fatal(err) }
	expectRows(t, glyph, ".X.")
	log.expect(t, ChangeEvent{ReasonCopy, grid.XYWH(0, 0, 3, 1)})

	err = glyph.SetPackedArray([]byte{0, 0})
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
	log.expect(t)

	packed := glyph.PackedArray()
	if len(packed) != 1 || packed[0] != 0b010 { t.Fatalf("unexpected packed array %v", packed) }
	array := glyph.Array()
	if len(array) != 3 || array[0] || !array[1] || array[2] { t.Fatalf("unexpected array %v", array) }
}

func TestIndex(t *testing.T) {
	glyph := NewGlyph(2, 3)
	log := recordEvents(glyph)

	err := glyph.SetIndex(-1)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }

	if err := glyph.SetIndex(0); err != nil { t.Fatal(err) }
	log.expect(t)
	if err := glyph.SetIndex(65); err != nil { t.Fatal(err) }
	if glyph.Index() != 65 { t.Fatalf("expected index 65, got %d", glyph.Index()) }
	log.expect(t, ChangeEvent{ReasonIndexChanged, grid.XYWH(0, 0, 2, 3)})

	// once adopted, the index belongs to the parent
	if err := glyph.Adopt(Handle(9), 10); err != nil { t.Fatal(err) }
	log.expect(t)
	for _, index := range []int{0, 10, 11, 1000} {
		if err := glyph.SetIndex(index); err != nil { t.Fatal(err) }
	}
	if glyph.Index() != 10 { t.Fatalf("expected index 10, got %d", glyph.Index()) }
	log.expect(t)

	err = glyph.SetIndex(-5)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
}

func TestAdopt(t *testing.T) {
	glyph := NewGlyph(1, 1)
	if glyph.Parent() != NoHandle { t.Fatal("new glyphs must be detached") }

	err := glyph.Adopt(NoHandle, 1)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
	err = glyph.Adopt(Handle(1), -1)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }

	if err := glyph.Adopt(Handle(1), 3); err != nil { t.Fatal(err) }
	if err := glyph.Adopt(Handle(1), 4); err != nil { t.Fatal(err) }
	if glyph.Parent() != Handle(1) || glyph.Index() != 4 { t.Fatal("unexpected adoption state") }

	err = glyph.Adopt(Handle(2), 0)
	if !errors.Is(err, ErrAlreadyAdopted) { t.Fatalf("expected ErrAlreadyAdopted, got %v", err) }

	glyph.Link(Handle(30), Handle(32))
	if glyph.Prev() != Handle(30) || glyph.Next() != Handle(32) { t.Fatal("unexpected siblings") }
}

func TestCloneCopyEqual(t *testing.T) {
	glyph := glyphFromRows("X.", ".X")
	_ = glyph.SetIndex(3)
	_ = glyph.Adopt(Handle(5), 3)

	clone := glyph.Clone()
	if !clone.Equal(glyph) { t.Fatal("clone must equal original") }
	if clone.Parent() != NoHandle { t.Fatal("clones must be detached") }
	_ = clone.SetPixel(1, 0, true)
	if glyph.Pixel(1, 0) { t.Fatal("clone mutation leaked into the original") }
	if clone.Equal(glyph) { t.Fatal("expected glyphs to differ") }

	target := NewGlyph(1, 1)
	log := recordEvents(target)
	if err := target.Copy(clone); err != nil { t.Fatal(err) }
	expectRows(t, target, "XX", ".X")
	log.expect(t,
		ChangeEvent{ReasonResize, grid.XYWH(0, 0, 2, 2)},
		ChangeEvent{ReasonCopy, grid.XYWH(0, 0, 2, 2)},
	)
	_ = clone.SetPixel(0, 0, false)
	if !target.Pixel(0, 0) { t.Fatal("copies must not alias their source") }

	if err := target.Copy(target); err != nil { t.Fatal(err) }
	log.expect(t)
	err := target.Copy(nil)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
}

func TestGridSnapshot(t *testing.T) {
	glyph := glyphFromRows("X.")
	snapshot := glyph.Grid()
	_, _ = snapshot.Set(1, 0, true)
	if glyph.Pixel(1, 0) { t.Fatal("snapshots must not alias the glyph") }

	restored := NewGlyphFromGrid(snapshot)
	_, _ = snapshot.Set(0, 0, false)
	expectRows(t, restored, "XX")

	packed := NewGlyphFromBytes(3, 1, []byte{0b101})
	expectRows(t, packed, "X.X")
}

func TestListenerErrors(t *testing.T) {
	glyph := NewGlyph(2, 2)
	errRefused := errors.New("refused")
	handle := glyph.AddListener(func(ChangeEvent) error { return errRefused })

	err := glyph.SetPixel(0, 0, true)
	if err != errRefused { t.Fatalf("expected listener error, got %v", err) }
	if !glyph.Pixel(0, 0) { t.Fatal("the edit happens before the notification") }

	if !glyph.RemoveListener(handle) { t.Fatal("expected listener removal") }
	if err := glyph.SetPixel(1, 1, true); err != nil { t.Fatal(err) }
}

func TestDuplicateListeners(t *testing.T) {
	glyph := NewGlyph(2, 2)
	calls := 0
	listener := func(ChangeEvent) error { calls += 1; return nil }
	first := glyph.AddListener(listener)
	glyph.AddListener(listener)

	_ = glyph.SetPixel(0, 0, true)
	if calls != 2 { t.Fatalf("expected 2 calls, got %d", calls) }
	glyph.RemoveListener(first)
	_ = glyph.SetPixel(0, 0, false)
	if calls != 3 { t.Fatalf("expected 3 calls, got %d", calls) }
}

func TestReasonString(t *testing.T) {
	names := map[Reason]string{
		ReasonCopy: "Copy", ReasonResize: "Resize", ReasonPixelChanged: "PixelChanged",
		ReasonIndexChanged: "IndexChanged", ReasonShifted: "Shifted", Reason(0): "Unknown",
	}
	for reason, name := range names {
		if reason.String() != name { t.Fatalf("expected %s, got %s", name, reason.String()) }
	}
}

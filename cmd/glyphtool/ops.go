package main

import "fmt"
import "strconv"
import "strings"

import "github.com/u-235/mythodius"

// A single edit applied to every processed glyph.
type operation struct {
	name  string
	apply func(*mythodius.Glyph) error
}

// Parses a comma separated list of operations, like "left,col:0,vflip".
// Whitespace around names is ignored. An empty list is valid.
func parseOps(list string) ([]operation, error) {
	var ops []operation
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" { continue }
		op, err := parseOp(field)
		if err != nil { return nil, err }
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(field string) (operation, error) {
	name, arg, hasArg := strings.Cut(field, ":")
	if !hasArg {
		apply, found := simpleOps[name]
		if !found { return operation{}, fmt.Errorf("unknown operation %q", field) }
		return operation{name: field, apply: apply}, nil
	}

	makeApply, found := argOps[name]
	if !found { return operation{}, fmt.Errorf("unknown operation %q", field) }
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return operation{}, fmt.Errorf("operation %q expects a non-negative integer", field)
	}
	return operation{name: field, apply: makeApply(n)}, nil
}

var simpleOps = map[string]func(*mythodius.Glyph) error {
	"left":  (*mythodius.Glyph).ShiftLeft,
	"right": (*mythodius.Glyph).ShiftRight,
	"up":    (*mythodius.Glyph).ShiftUp,
	"down":  (*mythodius.Glyph).ShiftDown,
	"vflip": (*mythodius.Glyph).ReflectVertical,
	"hflip": (*mythodius.Glyph).ReflectHorizontal,
	"clear": clearGlyph,
	"trim":  trimGlyph,
}

var argOps = map[string]func(int) func(*mythodius.Glyph) error {
	"col":    func(n int) func(*mythodius.Glyph) error {
		return func(glyph *mythodius.Glyph) error { return glyph.RemoveColumn(n) }
	},
	"row":    func(n int) func(*mythodius.Glyph) error {
		return func(glyph *mythodius.Glyph) error { return glyph.RemoveRow(n) }
	},
	"width":  func(n int) func(*mythodius.Glyph) error {
		return func(glyph *mythodius.Glyph) error { return glyph.SetWidth(n) }
	},
	"height": func(n int) func(*mythodius.Glyph) error {
		return func(glyph *mythodius.Glyph) error { return glyph.SetHeight(n) }
	},
}

func clearGlyph(glyph *mythodius.Glyph) error {
	return glyph.SetArray(make([]bool, glyph.Width()*glyph.Height()))
}

// Removes the empty columns on both sides of the glyph. Fully empty
// glyphs are left untouched, as they usually are spaces.
func trimGlyph(glyph *mythodius.Glyph) error {
	for glyph.Width() > 0 && columnIsEmpty(glyph, glyph.Width() - 1) {
		if allEmpty(glyph) { return nil }
		err := glyph.RemoveColumn(glyph.Width() - 1)
		if err != nil { return err }
	}
	for glyph.Width() > 0 && columnIsEmpty(glyph, 0) {
		err := glyph.RemoveColumn(0)
		if err != nil { return err }
	}
	return nil
}

func columnIsEmpty(glyph *mythodius.Glyph, x int) bool {
	for y := 0; y < glyph.Height(); y++ {
		if glyph.Pixel(x, y) { return false }
	}
	return true
}

func allEmpty(glyph *mythodius.Glyph) bool {
	for _, value := range glyph.Array() {
		if value { return false }
	}
	return true
}

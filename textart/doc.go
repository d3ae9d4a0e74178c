// The textart subpackage reads and writes glyph grids in a plain text
// format that can be edited by hand.
//
// Each line of a document describes one row of a glyph: the rune, two
// spaces, and the row cells between square brackets, with 'X' for set
// cells and ' ' or '.' for cleared ones:
//
//	A  [ XX ]
//	A  [X  X]
//	A  [XXXX]
//	A  [X  X]
//
// Consecutive lines with the same rune belong to the same glyph. Rows
// shorter than the widest row of their glyph are padded with cleared
// cells. Blank lines end the current glyph, so the same rune can be
// repeated in separate glyphs.
package textart

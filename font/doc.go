// The font subpackage contains helper methods to parse vector fonts and
// obtain information from them (id, name, family, etc.), alongside an
// [Importer] type that converts their glyphs into pixel grids.
//
// Imported glyphs are thresholded, not anti-aliased: each pixel of the
// resulting grid is either set or cleared. Small sizes of fonts designed
// for screens usually give the best results.
package font

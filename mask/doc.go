// The mask subpackage connects bitmap glyph grids with glyph masks, the
// [*image.Alpha] images produced when rasterizing the outlines of vector
// fonts.
//
// In this context, a "[Rasterizer]" refers to a "glyph mask rasterizer":
// it takes a glyph outline (a set of lines and curves, as extracted from
// a font file) and draws it into a raster image. Masks carry coverage
// values, but bitmap glyphs can only be set or cleared, so [ToGrid]()
// applies a threshold instead of any kind of anti-aliasing.
//
// The package also provides [FromGrid](), which turns a grid back into
// a fully opaque/transparent mask that can be used with the standard
// image/draw package or any other mask based pipeline.
package mask

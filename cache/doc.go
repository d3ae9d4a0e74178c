// The cache subpackage defines the [GridCacheHandler] interface used
// when importing glyphs from vector fonts and provides a default cache
// implementation.
//
// Rasterizing and thresholding a glyph outline is much more expensive
// than copying a small grid, so tools that import the same runes again
// and again (e.g. previewing a font at a few sizes) benefit from keeping
// the results around.
//
// Bitmap glyphs are small. A 16x16 glyph takes a bit more than 300 bytes
// in the cache, so even a full 8 bit codepage at a couple sizes fits in
// less than 256KiB. The [DefaultCache.PeakSize]() function can help you
// figure out the capacity that your own use-case actually needs.
package cache

// mythodius is a package for editing the glyphs of bitmap fonts.
//
// The central type is [Glyph]: a rectangular grid of pixels that can only
// be set or cleared (no colors, no anti-aliasing), plus the index of the
// glyph within its font. Every edit goes through a Glyph method, and every
// edit that actually changes something fires exactly one [ChangeEvent]
// describing what happened and which rectangle was affected:
//   glyph := mythodius.NewGlyph(4, 2)
//   glyph.AddListener(func(event mythodius.ChangeEvent) error {
//      fmt.Println(event.Reason, event.Rect) // PixelChanged (0, 0) 1x1
//      return nil
//   })
//   err := glyph.SetPixel(0, 0, true)
//   if err != nil { ... }
//
// Pixel storage lives in the [github.com/u-235/mythodius/grid] subpackage,
// which can also be used on its own. Other subpackages import glyphs from
// outline fonts (font), convert them to and from image masks (mask), cache
// imported glyphs (cache) and read or write a plain text representation
// of them (textart).
//
// Glyphs are not safe for concurrent use, and listeners run synchronously
// within the edit that triggered them.
package mythodius

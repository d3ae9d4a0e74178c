package font

import "errors"
import "fmt"
import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import xfont "golang.org/x/image/font"
import "github.com/sirupsen/logrus"

import "github.com/u-235/mythodius"
import "github.com/u-235/mythodius/cache"
import "github.com/u-235/mythodius/grid"
import "github.com/u-235/mythodius/mask"

// Returned by [Importer.Import]() when the font has no glyph for the
// requested rune.
var ErrMissingGlyph = errors.New("font has no glyph for rune")

// An Importer converts the glyphs of a vector font into pixel grids
// at a specific size.
//
// All the glyphs imported with the same configuration share the same
// height, with the baseline at [Importer.Baseline]() pixels from the top.
// Their width is the glyph advance, so proportional fonts result in
// glyphs of different widths.
//
// Importers can't be used concurrently.
type Importer struct {
	source *Source
	buffer sfnt.Buffer
	size fixed.Int26_6
	threshold uint8
	rasterizer mask.Rasterizer
	cacheHandler cache.GridCacheHandler

	ascent  int
	descent int
}

// Creates a new importer for the given font source and size in pixels,
// using a [mask.DefaultRasterizer] and [mask.DefaultThreshold]. Nil
// sources and sizes below one pixel will panic.
func NewImporter(source *Source, sizePx int) *Importer {
	if source == nil { panic("nil font source") }
	importer := &Importer {
		source: source,
		threshold: mask.DefaultThreshold,
		rasterizer: &mask.DefaultRasterizer{},
	}
	importer.SetSize(sizePx)
	return importer
}

// Returns the font source used by the importer.
func (self *Importer) Source() *Source { return self.source }

// Returns the import size in pixels.
func (self *Importer) Size() int { return self.size.Round() }

// Sets the import size in pixels. Sizes below one pixel will panic.
func (self *Importer) SetSize(sizePx int) {
	if sizePx < 1 { panic("import size must be at least one pixel") }
	self.size = fixed.I(sizePx)
	self.ascent, self.descent = 0, 0
	if self.cacheHandler != nil {
		self.cacheHandler.NotifySizeChange(self.size)
	}
}

// Returns the coverage threshold used to decide which pixels are set.
func (self *Importer) Threshold() uint8 { return self.threshold }

// Sets the coverage threshold. See [mask.ToGrid]().
func (self *Importer) SetThreshold(threshold uint8) {
	self.threshold = threshold
	if self.cacheHandler != nil {
		self.cacheHandler.NotifyThresholdChange(threshold)
	}
}

// Sets the rasterizer used for glyph outlines. If the importer has a
// cache handler, the cache is detached, as cached grids may have been
// produced by a different rasterizer.
func (self *Importer) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
	self.cacheHandler = nil
}

// Sets the cache handler, or removes it if nil.
func (self *Importer) SetCacheHandler(handler cache.GridCacheHandler) {
	self.cacheHandler = handler
	if handler == nil { return }
	handler.NotifyFontChange(self.source.font)
	handler.NotifySizeChange(self.size)
	handler.NotifyThresholdChange(self.threshold)
}

// Returns the height shared by all imported glyphs.
func (self *Importer) Height() (int, error) {
	err := self.loadMetrics()
	return self.ascent + self.descent, err
}

// Returns the distance between the top of the imported glyphs and
// their baseline.
func (self *Importer) Baseline() (int, error) {
	err := self.loadMetrics()
	return self.ascent, err
}

func (self *Importer) loadMetrics() error {
	if self.ascent != 0 || self.descent != 0 { return nil }
	metrics, err := self.source.font.Metrics(&self.buffer, self.size, xfont.HintingNone)
	if err != nil { return err }
	self.ascent  = metrics.Ascent.Ceil()
	self.descent = metrics.Descent.Ceil()
	return nil
}

// Imports the glyph for the given rune. The result always has the
// importer's height. Runes without a glyph in the font return
// [ErrMissingGlyph].
func (self *Importer) Import(codePoint rune) (*grid.Grid, error) {
	err := self.loadMetrics()
	if err != nil { return nil, err }

	index, err := self.source.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return nil, err }
	if index == 0 {
		logrus.Debugf("font: no glyph for %U", codePoint)
		return nil, fmt.Errorf("%w %U", ErrMissingGlyph, codePoint)
	}

	if self.cacheHandler != nil {
		cells, found := self.cacheHandler.GetGrid(codePoint)
		if found {
			logrus.Tracef("font: cache hit for %U", codePoint)
			return cells, nil
		}
	}

	advance, err := self.source.font.GlyphAdvance(&self.buffer, index, self.size, xfont.HintingNone)
	if err != nil { return nil, err }
	segments, err := self.source.font.LoadGlyph(&self.buffer, index, self.size, nil)
	if err != nil { return nil, err }
	glyphMask, err := mask.Rasterize(segments, self.rasterizer, fixed.Point26_6{})
	if err != nil { return nil, err }

	width := advance.Round()
	if width <= 0 && glyphMask != nil {
		width = glyphMask.Rect.Max.X // zero-advance marks still get their pixels
	}
	area := image.Rect(0, -self.ascent, max(width, 0), self.descent)
	cells := mask.ToGrid(glyphMask, area, self.threshold)
	logrus.Tracef("font: imported %U (glyph %d) as %dx%d", codePoint, index, cells.Width(), cells.Height())

	if self.cacheHandler != nil {
		self.cacheHandler.PassGrid(codePoint, cells)
	}
	return cells, nil
}

// Same as [Importer.Import](), but wrapping the result in a detached
// glyph whose index is the rune code point.
func (self *Importer) ImportGlyph(codePoint rune) (*mythodius.Glyph, error) {
	cells, err := self.Import(codePoint)
	if err != nil { return nil, err }
	glyph := mythodius.NewGlyphFromGrid(cells)
	err = glyph.SetIndex(int(codePoint))
	return glyph, err
}

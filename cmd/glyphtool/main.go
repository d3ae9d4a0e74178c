// glyphtool imports glyphs from vector fonts or textart documents, applies
// a list of edits to each of them and writes the results as textart:
//
//	glyphtool -font Go-Mono.ttf -size 12 -runes 0123456789 -ops trim,down
//	glyphtool -txt digits.txt -ops vflip,col:0 -o flipped.txt
//
// Available operations: left, right, up, down (shifts), vflip, hflip
// (reflections), col:N and row:N (line removal), width:N and height:N
// (resizing), clear and trim.
package main

import "errors"
import "flag"
import "fmt"
import "io"
import "os"
import "strings"

import "github.com/sirupsen/logrus"

import "github.com/u-235/mythodius"
import "github.com/u-235/mythodius/cache"
import "github.com/u-235/mythodius/font"
import "github.com/u-235/mythodius/grid"
import "github.com/u-235/mythodius/textart"

const defaultRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type config struct {
	fontPath   string
	textPath   string
	size       int
	threshold  uint
	runes      string
	ops        string
	outPath    string
	cacheBytes int
	verbose    bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("glyphtool", flag.ContinueOnError)
	flags.StringVar(&cfg.fontPath, "font", "", "vector font (.ttf or .otf) to import glyphs from")
	flags.StringVar(&cfg.textPath, "txt", "", "textart document to read glyphs from")
	flags.IntVar(&cfg.size, "size", 16, "import size in pixels")
	flags.UintVar(&cfg.threshold, "threshold", 128, "coverage threshold (1-255) for set pixels")
	flags.StringVar(&cfg.runes, "runes", "", "runes to process (all for -txt, alphanumerics for -font)")
	flags.StringVar(&cfg.ops, "ops", "", "comma separated operations to apply to each glyph")
	flags.StringVar(&cfg.outPath, "o", "", "output file (stdout if empty)")
	flags.IntVar(&cfg.cacheBytes, "cache", 256*1024, "glyph cache size in bytes")
	flags.BoolVar(&cfg.verbose, "v", false, "log every glyph change")
	err := flags.Parse(args)
	if err != nil { return cfg, err }

	if (cfg.fontPath == "") == (cfg.textPath == "") {
		return cfg, errors.New("exactly one of -font or -txt is required")
	}
	if cfg.size < 1 { return cfg, fmt.Errorf("invalid size %d", cfg.size) }
	if cfg.threshold < 1 || cfg.threshold > 255 {
		return cfg, fmt.Errorf("invalid threshold %d", cfg.threshold)
	}
	if cfg.cacheBytes < 0 { return cfg, fmt.Errorf("invalid cache size %d", cfg.cacheBytes) }
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) { os.Exit(0) }
	if err != nil {
		fmt.Fprintln(os.Stderr, "glyphtool:", err)
		os.Exit(2)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.verbose { logrus.SetLevel(logrus.DebugLevel) }

	out := io.Writer(os.Stdout)
	if cfg.outPath != "" {
		file, err := os.Create(cfg.outPath)
		if err != nil { logrus.Fatal(err) }
		defer file.Close()
		out = file
	}

	err = run(cfg, out)
	if err != nil { logrus.Fatal(err) }
}

func run(cfg config, out io.Writer) error {
	ops, err := parseOps(cfg.ops)
	if err != nil { return err }

	var entries []textart.Entry
	if cfg.textPath != "" {
		entries, err = loadText(cfg)
	} else {
		entries, err = loadFont(cfg)
	}
	if err != nil { return err }

	for i, entry := range entries {
		glyph := mythodius.NewGlyphFromGrid(entry.Grid)
		err = glyph.SetIndex(int(entry.Rune))
		if err != nil { return err }
		entries[i].Grid, err = edit(glyph, entry.Rune, ops)
		if err != nil { return err }
	}
	logrus.Infof("processed %d glyphs with %d operations", len(entries), len(ops))
	return textart.EncodeAll(out, entries)
}

// Applies all the operations to the glyph and returns the resulting pixels.
func edit(glyph *mythodius.Glyph, codePoint rune, ops []operation) (*grid.Grid, error) {
	handle := glyph.AddListener(func(event mythodius.ChangeEvent) error {
		logrus.WithFields(logrus.Fields{
			"rune": string(codePoint),
			"reason": event.Reason,
			"rect": event.Rect,
		}).Debug("glyph changed")
		return nil
	})
	defer glyph.RemoveListener(handle)

	for _, op := range ops {
		err := op.apply(glyph)
		if err != nil {
			return nil, fmt.Errorf("%s on %q: %w", op.name, codePoint, err)
		}
	}
	return glyph.Grid(), nil
}

func loadText(cfg config) ([]textart.Entry, error) {
	file, err := os.Open(cfg.textPath)
	if err != nil { return nil, err }
	defer file.Close()
	entries, err := textart.Decode(file)
	if err != nil { return nil, fmt.Errorf("%s: %w", cfg.textPath, err) }
	if cfg.runes == "" { return entries, nil }

	filtered := entries[:0]
	for _, entry := range entries {
		if strings.ContainsRune(cfg.runes, entry.Rune) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func loadFont(cfg config) ([]textart.Entry, error) {
	source, err := font.LoadFile(cfg.fontPath)
	if err != nil { return nil, err }
	logrus.Debugf("loaded font %q from %s", source.Name(), cfg.fontPath)

	importer := font.NewImporter(source, cfg.size)
	importer.SetThreshold(uint8(cfg.threshold))
	if cfg.cacheBytes > 0 {
		importer.SetCacheHandler(cache.NewDefaultCache(cfg.cacheBytes).NewHandler())
	}

	runes := cfg.runes
	if runes == "" { runes = defaultRunes }
	var entries []textart.Entry
	for _, codePoint := range runes {
		cells, err := importer.Import(codePoint)
		if errors.Is(err, font.ErrMissingGlyph) {
			logrus.Warnf("skipping %q: %s", codePoint, err)
			continue
		}
		if err != nil { return nil, err }
		entries = append(entries, textart.Entry{Rune: codePoint, Grid: cells})
	}
	return entries, nil
}

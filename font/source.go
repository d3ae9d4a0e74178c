package font

import "os"
import "io/fs"
import "fmt"
import "errors"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Returned when loading fonts from paths without a .ttf or .otf extension.
var ErrUnsupportedFormat = errors.New("unsupported font format")

// A parsed vector font along with the names stored in it.
//
// Queries reuse an internal sfnt buffer, so sources can't be used
// concurrently.
type Source struct {
	font   *sfnt.Font
	name   string
	family string
	buffer sfnt.Buffer
}

// Parses the given TrueType or OpenType data. The bytes must not be
// modified while the source is in use. Fonts without naming information
// are accepted and get empty names.
func Load(data []byte) (*Source, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil { return nil, err }

	source := &Source{ font: parsed }
	source.name, err = source.Property(sfnt.NameIDFull)
	if err != nil { return nil, err }
	source.family, err = source.Property(sfnt.NameIDFamily)
	if err != nil { return nil, err }
	return source, nil
}

// Reads and parses the font file at the given path. Only .ttf and .otf
// files are accepted, in any case; other paths return [ErrUnsupportedFormat].
func LoadFile(path string) (*Source, error) {
	if !isFontFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil { return nil, err }
	return loadNamed(data, path)
}

// Same as [LoadFile](), but reading from the given filesystem.
func LoadFS(filesys fs.FS, path string) (*Source, error) {
	if !isFontFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := fs.ReadFile(filesys, path)
	if err != nil { return nil, err }
	return loadNamed(data, path)
}

func loadNamed(data []byte, path string) (*Source, error) {
	source, err := Load(data)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return source, nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	default:
		return false
	}
}

// Returns the underlying sfnt font.
func (self *Source) Font() *sfnt.Font { return self.font }

// Returns the full font name, or an empty string if the font doesn't
// include it.
func (self *Source) Name() string { return self.name }

// Returns the font family name, or an empty string if the font doesn't
// include it.
func (self *Source) Family() string { return self.family }

// Returns the requested entry of the font naming table. Missing entries
// return an empty string and no error.
func (self *Source) Property(id sfnt.NameID) (string, error) {
	value, err := self.font.Name(&self.buffer, id)
	if errors.Is(err, sfnt.ErrNotFound) { return "", nil }
	return value, err
}

// Returns the runes of the given text that the font can't represent,
// each one only once and in order of appearance.
func (self *Source) Missing(text string) ([]rune, error) {
	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}

		index, err := self.font.GlyphIndex(&self.buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

// Returns the runes in the inclusive range [from, to] that the font
// can represent, in ascending order. Reversed ranges are empty.
func (self *Source) Coverage(from, to rune) ([]rune, error) {
	var covered []rune
	for codePoint := from; codePoint <= to && codePoint >= from; codePoint++ {
		index, err := self.font.GlyphIndex(&self.buffer, codePoint)
		if err != nil { return covered, err }
		if index != 0 { covered = append(covered, codePoint) }
	}
	return covered, nil
}

package textart

import "bufio"
import "errors"
import "fmt"
import "io"
import "strings"
import "unicode/utf8"

import "github.com/u-235/mythodius/grid"

// Returned, wrapped with the line number, for malformed documents.
var ErrSyntax = errors.New("textart syntax error")

// A glyph grid and the rune it represents.
type Entry struct {
	Rune rune
	Grid *grid.Grid
}

// Reads all the glyphs in the given document, in order of appearance.
// If a rune appears in separate runs of lines, it results in separate
// entries. A blank line always ends the current glyph.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var rows []string
	lastRune := rune(-1)
	flush := func() {
		if len(rows) == 0 { return }
		entries = append(entries, Entry{Rune: lastRune, Grid: rowsToGrid(rows)})
		rows = rows[:0]
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum += 1
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			lastRune = -1
			continue
		}

		codePoint, row, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrSyntax, lineNum, err)
		}
		if codePoint != lastRune { flush() }
		rows = append(rows, row)
		lastRune = codePoint
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return entries, nil
}

// Same as [Decode](), but indexing the glyphs by rune. When a rune
// appears more than once, the last glyph wins.
func DecodeMap(r io.Reader) (map[rune]*grid.Grid, error) {
	entries, err := Decode(r)
	if err != nil { return nil, err }
	glyphs := make(map[rune]*grid.Grid, len(entries))
	for _, entry := range entries {
		glyphs[entry.Rune] = entry.Grid
	}
	return glyphs, nil
}

func parseLine(line string) (rune, string, error) {
	codePoint, size := utf8.DecodeRuneInString(line)
	if codePoint == utf8.RuneError && size <= 1 {
		return 0, "", errors.New("invalid UTF-8 rune")
	}
	rest := line[size:]
	if !strings.HasPrefix(rest, "  [") {
		return 0, "", errors.New("expected \"  [\" after the rune")
	}
	rest = rest[3:]
	end := strings.IndexByte(rest, ']')
	if end == -1 {
		return 0, "", errors.New("missing closing ']'")
	}
	if strings.TrimSpace(rest[end+1:]) != "" {
		return 0, "", errors.New("unexpected content after ']'")
	}
	row := rest[:end]
	for i := 0; i < len(row); i++ {
		switch row[i] {
		case 'X', ' ', '.':
		default:
			return 0, "", fmt.Errorf("unexpected cell character %q", row[i])
		}
	}
	return codePoint, row, nil
}

func rowsToGrid(rows []string) *grid.Grid {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	cells := grid.New(width, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == 'X' { _, _ = cells.Set(x, y, true) }
		}
	}
	return cells
}

// Writes the given glyph grid. Glyphs with zero height produce no output,
// so they can't be read back. Writing two glyphs with the same rune one
// after the other merges them into a single glyph when decoding, unless
// they are separated by a blank line (see [EncodeAll]()).
func Encode(w io.Writer, codePoint rune, cells *grid.Grid) error {
	width, height := cells.Size()
	if height == 0 { return nil }

	var builder strings.Builder
	for y := 0; y < height; y++ {
		builder.WriteRune(codePoint)
		builder.WriteString("  [")
		for x := 0; x < width; x++ {
			if cells.Get(x, y) {
				builder.WriteByte('X')
			} else {
				builder.WriteByte(' ')
			}
		}
		builder.WriteString("]\n")
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

// Writes all the given entries, in order, with a blank line between
// glyphs.
func EncodeAll(w io.Writer, entries []Entry) error {
	for i, entry := range entries {
		if i > 0 {
			_, err := io.WriteString(w, "\n")
			if err != nil { return err }
		}
		err := Encode(w, entry.Rune, entry.Grid)
		if err != nil { return err }
	}
	return nil
}

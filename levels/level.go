// Package levels reads level maps: a YAML header, a line holding only
// "---", then a fixed width grid of glyphs listed top row first.
package levels

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoDelimiter  = errors.New("levels: missing --- between header and grid")
	ErrBadHeader    = errors.New("levels: malformed header")
	ErrGridMismatch = errors.New("levels: grid does not match header size")
)

// Grid glyphs.
const (
	GlyphStart     = 'S'
	GlyphExit      = 'E'
	GlyphPatroller = 'o'
	GlyphFlyer     = 'b'
	GlyphGround    = '='
	GlyphHalf      = '-'
	GlyphCrate     = 'x'
	GlyphCoin      = '*'
	GlyphLava      = '£'
	GlyphSpikes    = '^'
	GlyphLeft      = '←'
	GlyphRight     = '→'
	GlyphUp        = '↑'
	GlyphDown      = '↓'
)

// GateDef places a gate. X and Y are tile coordinates, Y counted from the
// bottom row.
type GateDef struct {
	ID     string `yaml:"id"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Closed *bool  `yaml:"closed"`
}

// StartsClosed defaults to true when the header leaves it out.
func (g GateDef) StartsClosed() bool { return g.Closed == nil || *g.Closed }

type TargetDef struct {
	Gate       string `yaml:"gate"`
	OpenWhenOn *bool  `yaml:"open_when_on"`
}

// OpensWhenOn defaults to true: switch on opens the gate.
func (t TargetDef) OpensWhenOn() bool { return t.OpenWhenOn == nil || *t.OpenWhenOn }

type SwitchDef struct {
	ID      string      `yaml:"id"`
	X       int         `yaml:"x"`
	Y       int         `yaml:"y"`
	On      bool        `yaml:"on"`
	Targets []TargetDef `yaml:"targets"`
}

type Header struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Next is the map entered on completion; empty follows the configured
	// sequence.
	Next     string      `yaml:"next"`
	Gates    []GateDef   `yaml:"gates"`
	Switches []SwitchDef `yaml:"switches"`
}

// Map is a parsed level file. Rows keeps file order, top row first, every
// row padded to Width.
type Map struct {
	Name string
	Header
	Rows []string
}

func Parse(data []byte) (*Map, error) {
	header, grid, ok := splitHeader(data)
	if !ok {
		return nil, ErrNoDelimiter
	}

	var m Map
	if err := yaml.Unmarshal(header, &m.Header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrBadHeader, m.Width, m.Height)
	}

	// rows are split by hand so their length is bounded by Width alone
	if len(grid) > 0 {
		for _, raw := range bytes.Split(bytes.TrimSuffix(grid, []byte("\n")), []byte("\n")) {
			line := strings.TrimRight(string(raw), "\r")
			n := utf8.RuneCountInString(line)
			if n > m.Width {
				return nil, fmt.Errorf("%w: row %d is %d wide, header says %d", ErrGridMismatch, len(m.Rows), n, m.Width)
			}
			m.Rows = append(m.Rows, line+strings.Repeat(" ", m.Width-n))
		}
	}
	if len(m.Rows) > 0 && isBlank(m.Rows[len(m.Rows)-1]) {
		m.Rows = m.Rows[:len(m.Rows)-1]
	}
	if len(m.Rows) < m.Height {
		return nil, fmt.Errorf("%w: %d rows, header says %d", ErrGridMismatch, len(m.Rows), m.Height)
	}
	return &m, nil
}

// splitHeader cuts data at the first line that is exactly "---".
func splitHeader(data []byte) (header, grid []byte, ok bool) {
	rest := data
	offset := 0
	for len(rest) > 0 {
		line, tail, _ := bytes.Cut(rest, []byte("\n"))
		if string(bytes.TrimRight(line, "\r")) == "---" {
			return data[:offset], tail, true
		}
		offset += len(line) + 1
		rest = tail
	}
	return nil, nil, false
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

func (m *Map) RowCount() int { return len(m.Rows) }

// Grid returns the glyphs bottom row first, so Grid()[row][col] sits at the
// world tile (col, row).
func (m *Map) Grid() [][]rune {
	grid := make([][]rune, len(m.Rows))
	for i, line := range m.Rows {
		grid[len(m.Rows)-1-i] = []rune(line)
	}
	return grid
}

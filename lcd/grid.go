package lcd

import "strings"

// Grid is a Display backed by memory. Characters written past the right edge
// or below the last row are dropped, which matches what a caller sees on a
// module whose DDRAM is wider than its glass.
type Grid struct {
	cols, rows int
	cells      []byte
	col, row   int
	blink      bool
	cursor     bool
	glyphs     [8][8]byte
	dirty      bool
}

// NewGrid returns a blank cols x rows grid with the cursor at the top left.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([]byte, cols*rows)}
	g.Clear()
	return g
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
	g.col, g.row = 0, 0
	g.dirty = true
}

func (g *Grid) SetCursor(col, row int) {
	g.col, g.row = col, row
	g.dirty = true
}

func (g *Grid) WriteChar(c byte) {
	if g.col >= 0 && g.col < g.cols && g.row >= 0 && g.row < g.rows {
		g.cells[g.row*g.cols+g.col] = c
	}
	g.col++
	g.dirty = true
}

func (g *Grid) Print(s string) {
	for i := 0; i < len(s); i++ {
		g.WriteChar(s[i])
	}
}

func (g *Grid) Blink(on bool) {
	g.blink = on
	g.dirty = true
}

func (g *Grid) Cursor(on bool) {
	g.cursor = on
	g.dirty = true
}

func (g *Grid) CreateChar(slot uint8, bitmap [8]byte) {
	g.glyphs[slot&0x7] = bitmap
}

// Size returns the grid dimensions.
func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// At returns the character at col, row.
func (g *Grid) At(col, row int) byte { return g.cells[row*g.cols+col] }

// Line returns one row of the grid.
func (g *Grid) Line(row int) string {
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// Lines returns every row, top to bottom.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range lines {
		lines[r] = g.Line(r)
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// CursorAt returns where the next write lands.
func (g *Grid) CursorAt() (col, row int) { return g.col, g.row }

// Blinking reports whether the blinking block cursor is on.
func (g *Grid) Blinking() bool { return g.blink }

// Underline reports whether the underline cursor is on.
func (g *Grid) Underline() bool { return g.cursor }

// Glyph returns the bitmap last uploaded to slot.
func (g *Grid) Glyph(slot uint8) [8]byte { return g.glyphs[slot&0x7] }

// Dirty reports whether anything changed since the last call, and resets
// the flag.
func (g *Grid) Dirty() bool {
	d := g.dirty
	g.dirty = false
	return d
}

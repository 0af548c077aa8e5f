package render

import (
	"bytes"

	"github.com/gdamore/tcell/v2"
)

// Buffer is a row-major grid of cells covering the terminal
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear resets every cell to blank using exponential copy
func (b *Buffer) Clear() {
	b.fill(blankCell)
}

func (b *Buffer) fill(c Cell) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = c
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Set writes a cell. Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg}
}

// Get reads a cell; out-of-bounds reads return blank
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// SetString writes s starting at (x, y), stopping before column limit.
// Returns the column after the last written rune.
func (b *Buffer) SetString(x, y int, s string, fg tcell.Color, limit int) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		b.Set(x, y, r, fg)
		x++
	}
	return x
}

// Snapshot serializes glyphs as UTF-8 text, one line per row with trailing
// blanks trimmed. Colors are not included.
func (b *Buffer) Snapshot() []byte {
	var out bytes.Buffer
	out.Grow(b.width*b.height + b.height)
	line := make([]rune, 0, b.width)
	for y := 0; y < b.height; y++ {
		line = line[:0]
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x].Rune
			if r == 0 {
				r = ' '
			}
			line = append(line, r)
		}
		end := len(line)
		for end > 0 && line[end-1] == ' ' {
			end--
		}
		out.WriteString(string(line[:end]))
		if y < b.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.Bytes()
}

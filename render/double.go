package render

import "github.com/gdamore/tcell/v2"

// Surface receives changed cells. tcell.Screen satisfies it.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// DoubleBuffer holds the buffer being painted this tick and the one last
// emitted. Present diffs them and swaps roles by flipping an index.
type DoubleBuffer struct {
	bufs [2]*Buffer
	cur  int
}

// NewDoubleBuffer allocates both buffers. The previous buffer starts
// invalid so the first Present paints every cell.
func NewDoubleBuffer(width, height int) *DoubleBuffer {
	d := &DoubleBuffer{
		bufs: [2]*Buffer{NewBuffer(width, height), NewBuffer(width, height)},
	}
	d.Invalidate()
	return d
}

// Current is the buffer to paint this tick
func (d *DoubleBuffer) Current() *Buffer {
	return d.bufs[d.cur]
}

// Previous is the buffer last emitted to the surface
func (d *DoubleBuffer) Previous() *Buffer {
	return d.bufs[1-d.cur]
}

// Bounds returns the shared dimensions
func (d *DoubleBuffer) Bounds() (int, int) {
	return d.bufs[0].Bounds()
}

// Invalidate forces the next Present to repaint every cell
func (d *DoubleBuffer) Invalidate() {
	d.Previous().fill(invalidCell)
}

// Present writes cells that differ from the previous frame, shows the
// surface, then swaps roles. Returns the number of cells written.
func (d *DoubleBuffer) Present(s Surface) int {
	cur, prev := d.Current(), d.Previous()
	written := 0
	for i, c := range cur.cells {
		if c == prev.cells[i] {
			continue
		}
		x, y := i%cur.width, i/cur.width
		s.SetContent(x, y, c.Rune, nil, StyleFor(c.Fg))
		written++
	}
	s.Show()
	d.cur = 1 - d.cur
	return written
}

package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-invaders/constants"
)

// EnemyType identifies a formation slot
type EnemyType int

const (
	TopRow1 EnemyType = iota
	TopRow2
	TopRow3
	TopRow4
	TopRow5
	BottomRow
)

// TopRowTypes lists the top row slots left to right
var TopRowTypes = [constants.TopRowCount]EnemyType{TopRow1, TopRow2, TopRow3, TopRow4, TopRow5}

// Enemy is one formation member. Dead enemies stay in the list.
type Enemy struct {
	X, Y    int
	Type    EnemyType
	Glyph   string
	Color   tcell.Color
	IsAlive bool
}

// NewEnemy creates a live enemy with the glyph for its slot
func NewEnemy(x, y int, t EnemyType) *Enemy {
	e := &Enemy{X: x, Y: y, Type: t, IsAlive: true}
	switch t {
	case TopRow1, TopRow3, TopRow5:
		e.Glyph = constants.EnemyGlyphCross
		e.Color = tcell.ColorRed
	case TopRow2, TopRow4:
		e.Glyph = constants.EnemyGlyphEyes
		e.Color = tcell.ColorRed
	default:
		e.Glyph = constants.EnemyGlyphBottom
		e.Color = tcell.ColorOlive
	}
	return e
}

// Width is the glyph length in cells
func (e *Enemy) Width() int {
	return len(e.Glyph)
}

// Move translates by (dx, dy)
func (e *Enemy) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Occupies reports whether (x, y) is one of the enemy's cells
func (e *Enemy) Occupies(x, y int) bool {
	return y == e.Y && x >= e.X && x < e.X+e.Width()
}

// MuzzleX is the column enemy shots spawn from
func (e *Enemy) MuzzleX() int {
	return e.X + e.Width()/2
}

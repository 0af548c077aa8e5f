package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal position
type Cell struct {
	Rune rune
	Fg   tcell.Color
}

// blankCell is the cleared state
var blankCell = Cell{Rune: ' ', Fg: RgbBlank}

// invalidCell never equals a painted cell, forcing a repaint on the next diff
var invalidCell = Cell{Rune: 0, Fg: tcell.ColorDefault}

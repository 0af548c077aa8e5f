package render

import "github.com/gdamore/tcell/v2"

// Palette shared by the painter and the screenshot rasterizer
var (
	RgbBackground = tcell.ColorBlack
	RgbBlank      = tcell.ColorBlack

	RgbBorder    = tcell.ColorWhite
	RgbStatusBar = tcell.ColorWhite
	RgbTitle     = tcell.ColorAqua
	RgbNotice    = tcell.ColorSilver
	RgbAgent     = tcell.ColorFuchsia

	RgbVictory  = tcell.ColorLime
	RgbGameOver = tcell.ColorRed
)

// StyleFor builds the terminal style for a foreground color
func StyleFor(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
}

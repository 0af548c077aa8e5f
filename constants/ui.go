package constants

// Play area placement within the terminal
const (
	AreaLeft = 1
	AreaTop  = 3

	// AreaRightMargin and AreaBottomMargin are subtracted from terminal width/height
	AreaRightMargin  = 2
	AreaBottomMargin = 2
)

// Text rows
const (
	TitleRow  = 0
	NoticeRow = 1

	// StatusOffsetX/Y locate the status readout inside the border
	StatusOffsetX = 2
	StatusOffsetY = 1
)

// Minimum terminal dimensions for the fixed formation and status line
const (
	MinWidth  = 44
	MinHeight = 16
)

// Box-drawing border glyphs
const (
	BorderTopLeft     = '┌'
	BorderTopRight    = '┐'
	BorderBottomLeft  = '└'
	BorderBottomRight = '┘'
	BorderHorizontal  = '─'
	BorderVertical    = '│'
)

const GameTitle = "Space.AI.GO()"

package components

// Area is the bordered play field. Left/Top/Right/Bottom are the border
// coordinates; entities live strictly inside them.
type Area struct {
	Left, Top, Right, Bottom int
}

// NewArea derives the play area from terminal dimensions
func NewArea(width, height, left, top, rightMargin, bottomMargin int) Area {
	return Area{
		Left:   left,
		Top:    top,
		Right:  width - rightMargin,
		Bottom: height - bottomMargin,
	}
}

// MinX is the leftmost interior column
func (a Area) MinX() int { return a.Left + 1 }

// MaxX is the rightmost interior column
func (a Area) MaxX() int { return a.Right - 1 }

// InsideRows reports whether y lies strictly between the top and bottom borders
func (a Area) InsideRows(y int) bool {
	return y > a.Top && y < a.Bottom
}

// CenterX is the horizontal midpoint used for the player spawn
func (a Area) CenterX() int {
	return (a.Left + a.Right) / 2
}

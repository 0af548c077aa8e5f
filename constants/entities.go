package constants

// Glyphs
const (
	PlayerGlyph      = 'A'
	PlayerBulletRune = '^'
	EnemyBulletRune  = 'v'

	EnemyGlyphCross  = "><"
	EnemyGlyphEyes   = "oo"
	EnemyGlyphBottom = "/O\\"
)

// Formation layout, offsets relative to the play area
const (
	TopRowCount   = 5
	TopRowOffsetX = 5
	TopRowOffsetY = 2
	TopRowSpacing = 6

	BottomRowCount   = 3
	BottomRowOffsetX = 8
	BottomRowOffsetY = 4
	BottomRowSpacing = 8

	// EnemyCount is the full formation size
	EnemyCount = TopRowCount + BottomRowCount
)

// Player layout
const (
	// PlayerOffsetBottom is the player's distance above the bottom border
	PlayerOffsetBottom = 2
)

package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-invaders/constants"
)

// Player is the single ship at the bottom of the play area
type Player struct {
	X, Y           int
	CurrentBullets int
	MaxBullets     int
	Glyph          rune
	Color          tcell.Color
}

// NewPlayer creates a player at (x, y) with the given in-flight shot cap
func NewPlayer(x, y, maxBullets int) *Player {
	if maxBullets < 1 {
		maxBullets = constants.DefaultMaxBullets
	}
	return &Player{
		X:          x,
		Y:          y,
		MaxBullets: maxBullets,
		Glyph:      constants.PlayerGlyph,
		Color:      tcell.ColorAqua,
	}
}

// MoveLeft shifts one cell left, clamped to the area interior
func (p *Player) MoveLeft(area Area) {
	if p.X > area.MinX() {
		p.X--
	}
}

// MoveRight shifts one cell right, clamped to the area interior
func (p *Player) MoveRight(area Area) {
	if p.X < area.MaxX() {
		p.X++
	}
}

// CanShoot is true while in-flight shots are under the cap
func (p *Player) CanShoot() bool {
	return p.CurrentBullets < p.MaxBullets
}

// Shoot records a new in-flight shot. No-op at the cap.
func (p *Player) Shoot() {
	if p.CanShoot() {
		p.CurrentBullets++
	}
}

// BulletDestroyed frees one in-flight slot
func (p *Player) BulletDestroyed() {
	if p.CurrentBullets > 0 {
		p.CurrentBullets--
	}
}

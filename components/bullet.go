package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-invaders/constants"
)

// Bullet travels one row per tick: up when fired by the player, down otherwise
type Bullet struct {
	X, Y           int
	IsPlayerBullet bool
	IsActive       bool
}

// NewBullet creates an active bullet
func NewBullet(x, y int, fromPlayer bool) *Bullet {
	return &Bullet{X: x, Y: y, IsPlayerBullet: fromPlayer, IsActive: true}
}

// Advance moves the bullet one cell along its direction
func (b *Bullet) Advance() {
	if b.IsPlayerBullet {
		b.Y--
	} else {
		b.Y++
	}
}

// Glyph returns the direction-specific rune
func (b *Bullet) Glyph() rune {
	if b.IsPlayerBullet {
		return constants.PlayerBulletRune
	}
	return constants.EnemyBulletRune
}

// Color is shared by both bullet kinds
func (b *Bullet) Color() tcell.Color {
	return tcell.ColorWhite
}

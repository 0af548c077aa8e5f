package components

// HitsEnemy reports a player bullet overlapping a live enemy's row span
func HitsEnemy(b *Bullet, e *Enemy) bool {
	if !b.IsActive || !b.IsPlayerBullet || !e.IsAlive {
		return false
	}
	return e.Occupies(b.X, b.Y)
}

// HitsPlayer reports an enemy bullet on the player's cell
func HitsPlayer(b *Bullet, p *Player) bool {
	if !b.IsActive || b.IsPlayerBullet {
		return false
	}
	return b.X == p.X && b.Y == p.Y
}

// FirstHit returns the index of the first enemy in list order hit by b, or -1.
// List order is the tie-break when enemies share a cell.
func FirstHit(b *Bullet, enemies []*Enemy) int {
	for i, e := range enemies {
		if HitsEnemy(b, e) {
			return i
		}
	}
	return -1
}

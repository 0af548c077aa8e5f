package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/space-invaders/components"
	"github.com/lixenwraith/space-invaders/config"
)

// FormationMove is the outcome of one formation update
type FormationMove int

const (
	FormationIdle FormationMove = iota
	FormationStep
	FormationDescend
)

// Formation moves all live enemies as one rigid body. MovingRight is the
// state discriminator; a descent always flips it.
type Formation struct {
	MovingRight bool
	LastMove    time.Time
	LastShoot   time.Time

	MoveInterval  time.Duration
	ShootInterval time.Duration
}

// NewFormation creates a right-moving formation with speed-tier timers
func NewFormation(speed config.Speed, now time.Time) *Formation {
	f := &Formation{
		MoveInterval:  speed.FormationInterval(),
		ShootInterval: speed.ShootInterval(),
	}
	f.Reset(now)
	return f
}

// Reset restores the initial direction and restarts both timers at now
func (f *Formation) Reset(now time.Time) {
	f.MovingRight = true
	f.LastMove = now
	f.LastShoot = now
}

// EdgeReached reports whether the leading live enemy touches the boundary
// in the current direction
func (f *Formation) EdgeReached(enemies []*components.Enemy, area components.Area) bool {
	for _, e := range enemies {
		if !e.IsAlive {
			continue
		}
		if f.MovingRight && e.X+e.Width()-1 >= area.MaxX() {
			return true
		}
		if !f.MovingRight && e.X <= area.MinX() {
			return true
		}
	}
	return false
}

// Step performs one movement: descend-and-flip at an edge, otherwise one
// cell sideways
func (f *Formation) Step(enemies []*components.Enemy, area components.Area) FormationMove {
	if f.EdgeReached(enemies, area) {
		for _, e := range enemies {
			if e.IsAlive {
				e.Move(0, 1)
			}
		}
		f.MovingRight = !f.MovingRight
		return FormationDescend
	}

	dx := -1
	if f.MovingRight {
		dx = 1
	}
	moved := false
	for _, e := range enemies {
		if e.IsAlive {
			e.Move(dx, 0)
			moved = true
		}
	}
	if !moved {
		return FormationIdle
	}
	return FormationStep
}

// Update steps the formation when the move timer has elapsed
func (f *Formation) Update(now time.Time, enemies []*components.Enemy, area components.Area) FormationMove {
	if now.Sub(f.LastMove) < f.MoveInterval {
		return FormationIdle
	}
	f.LastMove = now
	return f.Step(enemies, area)
}

// Fire picks one live enemy uniformly and returns its bullet, or nil
func (f *Formation) Fire(enemies []*components.Enemy, rng *rand.Rand) *components.Bullet {
	alive := make([]*components.Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e.IsAlive {
			alive = append(alive, e)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	shooter := alive[rng.Intn(len(alive))]
	return components.NewBullet(shooter.MuzzleX(), shooter.Y+1, false)
}

// TryShoot fires at most one bullet when the shoot timer has elapsed
func (f *Formation) TryShoot(now time.Time, enemies []*components.Enemy, rng *rand.Rand) *components.Bullet {
	if now.Sub(f.LastShoot) < f.ShootInterval {
		return nil
	}
	f.LastShoot = now
	return f.Fire(enemies, rng)
}

package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/space-invaders/components"
	"github.com/lixenwraith/space-invaders/config"
)

// testArea is the play field of a 60x20 terminal: interior columns 2..57
var testArea = components.Area{Left: 1, Top: 3, Right: 58, Bottom: 18}

func formationAt(xs ...int) []*components.Enemy {
	enemies := make([]*components.Enemy, 0, len(xs))
	for _, x := range xs {
		enemies = append(enemies, components.NewEnemy(x, 6, components.TopRow1))
	}
	return enemies
}

func TestFormationStepSideways(t *testing.T) {
	f := NewFormation(config.SpeedSlow, time.Unix(0, 0))
	enemies := formationAt(10, 20, 30)

	if got := f.Step(enemies, testArea); got != FormationStep {
		t.Fatalf("Expected sideways step, got %d", got)
	}
	for i, want := range []int{11, 21, 31} {
		if enemies[i].X != want || enemies[i].Y != 6 {
			t.Errorf("Enemy %d at (%d,%d), want (%d,6)", i, enemies[i].X, enemies[i].Y, want)
		}
	}
}

func TestFormationDescendAndFlip(t *testing.T) {
	tests := []struct {
		name      string
		right     bool
		xs        []int
		wantRight bool
	}{
		// Right edge: glyph's last cell on MaxX (56+2-1 = 57)
		{"right edge", true, []int{40, 56}, false},
		// Left edge: first cell on MinX
		{"left edge", false, []int{2, 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormation(config.SpeedSlow, time.Unix(0, 0))
			f.MovingRight = tt.right
			enemies := formationAt(tt.xs...)

			if got := f.Step(enemies, testArea); got != FormationDescend {
				t.Fatalf("Expected descent, got %d", got)
			}
			for i, e := range enemies {
				if e.X != tt.xs[i] || e.Y != 7 {
					t.Errorf("Enemy %d at (%d,%d), want (%d,7)", i, e.X, e.Y, tt.xs[i])
				}
			}
			if f.MovingRight != tt.wantRight {
				t.Errorf("Direction not flipped")
			}

			// Flipped direction persists: next step moves away from the edge
			if got := f.Step(enemies, testArea); got != FormationStep {
				t.Fatalf("Expected sideways step after descent, got %d", got)
			}
			dx := 1
			if !tt.wantRight {
				dx = -1
			}
			if enemies[0].X != tt.xs[0]+dx {
				t.Errorf("Expected x %d after flip, got %d", tt.xs[0]+dx, enemies[0].X)
			}
		})
	}
}

func TestFormationDeadEnemiesIgnored(t *testing.T) {
	f := NewFormation(config.SpeedSlow, time.Unix(0, 0))
	enemies := formationAt(20, 56)
	enemies[1].IsAlive = false

	if f.EdgeReached(enemies, testArea) {
		t.Fatal("Dead enemy must not trigger the edge")
	}
	f.Step(enemies, testArea)
	if enemies[1].X != 56 {
		t.Errorf("Dead enemy moved to %d", enemies[1].X)
	}
	if enemies[0].X != 21 {
		t.Errorf("Live enemy at %d, want 21", enemies[0].X)
	}
}

func TestFormationStaysInsideOverManyMoves(t *testing.T) {
	f := NewFormation(config.SpeedSlow, time.Unix(0, 0))
	enemies := formationAt(6, 12, 18, 24, 30)

	prevX := make([]int, len(enemies))
	for step := 0; step < 500; step++ {
		for i, e := range enemies {
			prevX[i] = e.X
		}
		move := f.Step(enemies, testArea)
		for i, e := range enemies {
			if e.X < testArea.MinX() || e.X+e.Width()-1 > testArea.MaxX() {
				t.Fatalf("Step %d: enemy %d outside area at x=%d", step, i, e.X)
			}
			d := e.X - prevX[i]
			if move == FormationDescend && d != 0 {
				t.Fatalf("Step %d: horizontal move during descent", step)
			}
			if move == FormationStep && d != 1 && d != -1 {
				t.Fatalf("Step %d: moved %d columns", step, d)
			}
		}
	}
}

func TestFormationUpdateTimer(t *testing.T) {
	t0 := time.Unix(100, 0)
	f := NewFormation(config.SpeedSlow, t0)
	enemies := formationAt(10)

	if got := f.Update(t0.Add(499*time.Millisecond), enemies, testArea); got != FormationIdle {
		t.Fatalf("Moved before interval: %d", got)
	}
	if got := f.Update(t0.Add(500*time.Millisecond), enemies, testArea); got != FormationStep {
		t.Fatalf("Expected step at interval, got %d", got)
	}
	if got := f.Update(t0.Add(600*time.Millisecond), enemies, testArea); got != FormationIdle {
		t.Fatalf("Timer not restarted: %d", got)
	}
}

func TestFormationTryShoot(t *testing.T) {
	t0 := time.Unix(100, 0)
	f := NewFormation(config.SpeedMedium, t0)
	rng := rand.New(rand.NewSource(1))
	enemies := []*components.Enemy{components.NewEnemy(10, 6, components.BottomRow)}

	if b := f.TryShoot(t0.Add(time.Second), enemies, rng); b != nil {
		t.Fatal("Shot before interval")
	}

	b := f.TryShoot(t0.Add(1600*time.Millisecond), enemies, rng)
	if b == nil {
		t.Fatal("Expected shot at interval")
	}
	if b.X != 11 || b.Y != 7 || b.IsPlayerBullet || !b.IsActive {
		t.Errorf("Unexpected bullet %+v", b)
	}

	if b := f.TryShoot(t0.Add(1700*time.Millisecond), enemies, rng); b != nil {
		t.Error("More than one shot in an interval")
	}
}

func TestFormationFireUniform(t *testing.T) {
	f := NewFormation(config.SpeedSlow, time.Unix(0, 0))
	rng := rand.New(rand.NewSource(42))
	enemies := formationAt(6, 12, 18, 24, 30)
	enemies[2].IsAlive = false

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		b := f.Fire(enemies, rng)
		if b == nil {
			t.Fatal("Expected a shooter")
		}
		counts[b.X]++
	}

	if counts[19] != 0 {
		t.Error("Dead enemy fired")
	}
	for _, x := range []int{7, 13, 25, 31} {
		if counts[x] < 150 {
			t.Errorf("Shooter at %d picked %d/1000 times", x, counts[x])
		}
	}

	for _, e := range enemies {
		e.IsAlive = false
	}
	if b := f.Fire(enemies, rng); b != nil {
		t.Error("Fire with no live enemies should return nil")
	}
}

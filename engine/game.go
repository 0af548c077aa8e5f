package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/space-invaders/components"
	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/constants"
	"github.com/lixenwraith/space-invaders/input"
)

// Phase is the round state
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// LossReason explains a lost round
type LossReason int

const (
	LossNone LossReason = iota
	LossHit
	LossInvaded
)

// Options configures a new game
type Options struct {
	Width, Height int
	Speed         config.Speed
	Mode          config.Mode
	MaxBullets    int

	// Rand drives enemy shooter selection; seeded from the clock when nil
	Rand *rand.Rand
	// Clock defaults to the monotonic provider
	Clock TimeProvider
}

// Game owns every entity and the formation state for one session
type Game struct {
	width, height int
	area          components.Area
	speed         config.Speed
	mode          config.Mode
	maxBullets    int

	player    *components.Player
	enemies   []*components.Enemy
	bullets   []*components.Bullet
	formation *Formation

	score     int
	startTime time.Time
	endTime   time.Time
	phase     Phase
	loss      LossReason

	notice      string
	noticeUntil time.Time
	agentStatus string

	events []Event
	rng    *rand.Rand
	clock  TimeProvider
}

// NewGame lays out the formation and player for the terminal size
func NewGame(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock.Now().UnixNano()))
	}
	if !opts.Speed.Valid() {
		opts.Speed = config.DefaultSpeed
	}
	if opts.MaxBullets < 1 {
		opts.MaxBullets = constants.DefaultMaxBullets
	}

	g := &Game{
		width:      opts.Width,
		height:     opts.Height,
		speed:      opts.Speed,
		mode:       opts.Mode,
		maxBullets: opts.MaxBullets,
		area: components.NewArea(opts.Width, opts.Height,
			constants.AreaLeft, constants.AreaTop,
			constants.AreaRightMargin, constants.AreaBottomMargin),
		rng:   opts.Rand,
		clock: opts.Clock,
	}
	g.formation = NewFormation(opts.Speed, g.clock.Now())
	g.Restart()
	return g
}

// Restart reinitializes entities, score and timers
func (g *Game) Restart() {
	now := g.clock.Now()

	g.player = components.NewPlayer(g.area.CenterX(), g.area.Bottom-constants.PlayerOffsetBottom, g.maxBullets)
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]

	x := g.area.Left + constants.TopRowOffsetX
	for i, t := range components.TopRowTypes {
		g.enemies = append(g.enemies, components.NewEnemy(x+i*constants.TopRowSpacing, g.area.Top+constants.TopRowOffsetY, t))
	}
	x = g.area.Left + constants.BottomRowOffsetX
	for i := 0; i < constants.BottomRowCount; i++ {
		g.enemies = append(g.enemies, components.NewEnemy(x+i*constants.BottomRowSpacing, g.area.Top+constants.BottomRowOffsetY, components.BottomRow))
	}

	g.formation.Reset(now)
	g.score = 0
	g.startTime = now
	g.endTime = time.Time{}
	g.phase = PhasePlaying
	g.loss = LossNone
	g.events = g.events[:0]
}

// Step advances the simulation by one tick with the given action.
// Total over all states; does nothing once the round has ended.
func (g *Game) Step(action input.Action) {
	if g.phase != PhasePlaying {
		return
	}
	now := g.clock.Now()

	g.apply(action)

	if g.updateBullets(now) {
		return
	}

	if g.formation.Update(now, g.enemies, g.area) == FormationDescend && g.invaded() {
		g.end(now, PhaseLost, LossInvaded)
		g.emit(EventInvaded)
		return
	}

	if b := g.formation.TryShoot(now, g.enemies, g.rng); b != nil {
		g.bullets = append(g.bullets, b)
		g.emit(EventEnemyShot)
	}

	if g.AliveCount() == 0 {
		g.end(now, PhaseWon, LossNone)
		g.emit(EventVictory)
	}
}

func (g *Game) apply(action input.Action) {
	switch action {
	case input.ActionMoveLeft:
		g.player.MoveLeft(g.area)
	case input.ActionMoveRight:
		g.player.MoveRight(g.area)
	case input.ActionShoot:
		if g.player.CanShoot() {
			g.bullets = append(g.bullets, components.NewBullet(g.player.X, g.player.Y-1, true))
			g.player.Shoot()
			g.emit(EventPlayerShot)
		}
	}
}

// updateBullets advances and resolves every bullet. Returns true when the
// player was hit.
func (g *Game) updateBullets(now time.Time) bool {
	hit := false
	for _, b := range g.bullets {
		if !b.IsActive {
			continue
		}
		b.Advance()

		if !g.area.InsideRows(b.Y) {
			g.retire(b)
			continue
		}

		if b.IsPlayerBullet {
			if i := components.FirstHit(b, g.enemies); i >= 0 {
				g.enemies[i].IsAlive = false
				g.retire(b)
				g.score += constants.EnemyKillScore
				g.emit(EventEnemyDestroyed)
			}
			continue
		}

		if components.HitsPlayer(b, g.player) {
			b.IsActive = false
			hit = true
			break
		}
	}
	g.compact()

	if hit {
		g.end(now, PhaseLost, LossHit)
		g.emit(EventPlayerHit)
	}
	return hit
}

// retire deactivates b and frees the player's slot if it owned it
func (g *Game) retire(b *components.Bullet) {
	b.IsActive = false
	if b.IsPlayerBullet {
		g.player.BulletDestroyed()
	}
}

func (g *Game) compact() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.IsActive {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(g.bullets); i++ {
		g.bullets[i] = nil
	}
	g.bullets = kept
}

func (g *Game) invaded() bool {
	for _, e := range g.enemies {
		if e.IsAlive && e.Y >= g.player.Y {
			return true
		}
	}
	return false
}

func (g *Game) end(now time.Time, phase Phase, reason LossReason) {
	g.phase = phase
	g.loss = reason
	g.endTime = now
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns and clears events raised since the last drain
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// SetNotice shows msg on the notice row for NoticeDuration
func (g *Game) SetNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.clock.Now().Add(constants.NoticeDuration)
}

// SetAgentStatus sets the persistent agent line shown when no notice is active
func (g *Game) SetAgentStatus(s string) {
	g.agentStatus = s
}

// Elapsed is the round time, frozen once the round ends
func (g *Game) Elapsed() time.Duration {
	if !g.endTime.IsZero() {
		return g.endTime.Sub(g.startTime)
	}
	return g.clock.Now().Sub(g.startTime)
}

// AliveCount is the number of live enemies
func (g *Game) AliveCount() int {
	n := 0
	for _, e := range g.enemies {
		if e.IsAlive {
			n++
		}
	}
	return n
}

// PlayerBulletsInFlight counts active player bullets
func (g *Game) PlayerBulletsInFlight() int {
	n := 0
	for _, b := range g.bullets {
		if b.IsActive && b.IsPlayerBullet {
			n++
		}
	}
	return n
}

func (g *Game) Player() *components.Player { return g.player }
func (g *Game) Enemies() []*components.Enemy { return g.enemies }
func (g *Game) Bullets() []*components.Bullet { return g.bullets }
func (g *Game) Formation() *Formation { return g.formation }
func (g *Game) Area() components.Area { return g.area }
func (g *Game) Score() int { return g.score }
func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Loss() LossReason { return g.loss }
func (g *Game) Speed() config.Speed { return g.speed }
func (g *Game) Mode() config.Mode { return g.mode }
func (g *Game) Size() (int, int) { return g.width, g.height }

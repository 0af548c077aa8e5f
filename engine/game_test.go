package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/space-invaders/components"
	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/constants"
	"github.com/lixenwraith/space-invaders/input"
	"github.com/lixenwraith/space-invaders/render"
)

const (
	testWidth  = 60
	testHeight = 20
)

func newTestGame(t *testing.T) (*Game, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	g := NewGame(Options{
		Width:  testWidth,
		Height: testHeight,
		Speed:  config.SpeedSlow,
		Mode:   config.ModeManual,
		Rand:   rand.New(rand.NewSource(7)),
		Clock:  clock,
	})
	return g, clock
}

// keepOnly kills every enemy except index i
func keepOnly(g *Game, i int) *components.Enemy {
	for j, e := range g.enemies {
		e.IsAlive = j == i
	}
	return g.enemies[i]
}

func TestNewGameLayout(t *testing.T) {
	g, _ := newTestGame(t)

	p := g.Player()
	if p.X != 29 || p.Y != 16 {
		t.Errorf("Player at (%d,%d), want (29,16)", p.X, p.Y)
	}
	if p.CurrentBullets != 0 || p.MaxBullets != constants.DefaultMaxBullets {
		t.Errorf("Unexpected bullet counters %d/%d", p.CurrentBullets, p.MaxBullets)
	}

	wantPos := [][2]int{{6, 5}, {12, 5}, {18, 5}, {24, 5}, {30, 5}, {9, 7}, {17, 7}, {25, 7}}
	if len(g.Enemies()) != constants.EnemyCount {
		t.Fatalf("Expected %d enemies, got %d", constants.EnemyCount, len(g.Enemies()))
	}
	for i, e := range g.Enemies() {
		if e.X != wantPos[i][0] || e.Y != wantPos[i][1] || !e.IsAlive {
			t.Errorf("Enemy %d at (%d,%d) alive=%v, want %v", i, e.X, e.Y, e.IsAlive, wantPos[i])
		}
	}
	if g.Phase() != PhasePlaying || g.Score() != 0 || !g.Formation().MovingRight {
		t.Error("Unexpected initial state")
	}
}

func TestFourthShotRejected(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 4; i++ {
		g.Step(input.ActionShoot)
	}
	if got := g.Player().CurrentBullets; got != 3 {
		t.Fatalf("Expected 3 bullets in flight, got %d", got)
	}
	if got := g.PlayerBulletsInFlight(); got != 3 {
		t.Fatalf("Expected 3 active player bullets, got %d", got)
	}

	// Column 29 is clear of the formation; all shots leave through the top
	for i := 0; i < 20; i++ {
		g.Step(input.ActionWait)
	}
	if got := g.Player().CurrentBullets; got != 0 {
		t.Errorf("Expected slots freed, got %d", got)
	}
	if len(g.Bullets()) != 0 {
		t.Errorf("Expected no bullets, got %d", len(g.Bullets()))
	}

	g.Step(input.ActionShoot)
	if g.Player().CurrentBullets != 1 {
		t.Error("Shot rejected after slots freed")
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	g, clock := newTestGame(t)
	p := g.Player()
	g.bullets = append(g.bullets, components.NewBullet(p.X, 10, false))

	ticks := p.Y - 10
	for i := 0; i < ticks-1; i++ {
		g.Step(input.ActionWait)
		if g.Phase() != PhasePlaying {
			t.Fatalf("Round ended early at tick %d", i+1)
		}
	}
	g.Step(input.ActionWait)
	if g.Phase() != PhaseLost || g.Loss() != LossHit {
		t.Fatalf("Expected loss by hit, got phase=%d loss=%d", g.Phase(), g.Loss())
	}

	events := g.DrainEvents()
	if len(events) == 0 || events[len(events)-1] != EventPlayerHit {
		t.Errorf("Expected EventPlayerHit, got %v", events)
	}

	// Elapsed freezes and Step is inert after the round ends
	elapsed := g.Elapsed()
	clock.Advance(10 * time.Second)
	g.Step(input.ActionMoveLeft)
	if g.Elapsed() != elapsed {
		t.Error("Elapsed advanced after round end")
	}
	if g.Player().X != p.X {
		t.Error("Player moved after round end")
	}
}

func TestKillAndVictory(t *testing.T) {
	g, _ := newTestGame(t)
	target := keepOnly(g, 4)

	g.bullets = append(g.bullets, components.NewBullet(target.X+1, target.Y+1, true))
	g.player.Shoot()

	g.Step(input.ActionWait)

	if target.IsAlive {
		t.Fatal("Target survived")
	}
	if g.Score() != constants.EnemyKillScore {
		t.Errorf("Score = %d, want %d", g.Score(), constants.EnemyKillScore)
	}
	if g.Player().CurrentBullets != 0 {
		t.Errorf("Bullet slot not freed: %d", g.Player().CurrentBullets)
	}
	if g.Phase() != PhaseWon {
		t.Fatalf("Expected victory, got phase %d", g.Phase())
	}

	events := g.DrainEvents()
	want := []Event{EventEnemyDestroyed, EventVictory}
	if len(events) != len(want) {
		t.Fatalf("Events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d = %d, want %d", i, events[i], want[i])
		}
	}
	if g.DrainEvents() != nil {
		t.Error("Events not cleared by drain")
	}
}

func TestOverlappingEnemiesFirstInListWins(t *testing.T) {
	g, _ := newTestGame(t)
	a, b := g.enemies[0], g.enemies[1]
	b.X, b.Y = a.X, a.Y

	g.bullets = append(g.bullets, components.NewBullet(a.X, a.Y+1, true))
	g.player.Shoot()
	g.Step(input.ActionWait)

	if a.IsAlive || !b.IsAlive {
		t.Errorf("Expected first enemy killed only: a=%v b=%v", a.IsAlive, b.IsAlive)
	}
	if g.Score() != constants.EnemyKillScore {
		t.Errorf("A bullet must kill at most one enemy, score %d", g.Score())
	}
}

func TestInvasionLoss(t *testing.T) {
	g, clock := newTestGame(t)
	e := keepOnly(g, 0)
	e.X = testArea.MaxX() - e.Width() + 1
	e.Y = g.Player().Y - 1

	clock.Advance(config.SpeedSlow.FormationInterval())
	g.Step(input.ActionWait)

	if g.Phase() != PhaseLost || g.Loss() != LossInvaded {
		t.Fatalf("Expected invasion loss, got phase=%d loss=%d", g.Phase(), g.Loss())
	}
	if !strings.Contains(strings.Join(g.EndScreenLines(), "\n"), "reached your ship") {
		t.Error("End screen does not explain invasion")
	}
}

func TestStepMovementClamped(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 100; i++ {
		g.Step(input.ActionMoveLeft)
	}
	if g.Player().X != testArea.MinX() {
		t.Errorf("Player at %d, want %d", g.Player().X, testArea.MinX())
	}
	for i := 0; i < 100; i++ {
		g.Step(input.ActionMoveRight)
	}
	if g.Player().X != testArea.MaxX() {
		t.Errorf("Player at %d, want %d", g.Player().X, testArea.MaxX())
	}
}

func TestBulletAccountingRandomPlay(t *testing.T) {
	g, clock := newTestGame(t)
	rng := rand.New(rand.NewSource(99))
	actions := []input.Action{input.ActionNone, input.ActionMoveLeft, input.ActionMoveRight, input.ActionShoot, input.ActionWait}
	rounds := 0

	for tick := 0; tick < 5000; tick++ {
		clock.Advance(config.SpeedSlow.TickInterval())
		g.Step(actions[rng.Intn(len(actions))])

		p := g.Player()
		if p.CurrentBullets != g.PlayerBulletsInFlight() {
			t.Fatalf("Tick %d: counter %d, in flight %d", tick, p.CurrentBullets, g.PlayerBulletsInFlight())
		}
		if p.CurrentBullets < 0 || p.CurrentBullets > p.MaxBullets {
			t.Fatalf("Tick %d: counter %d out of range", tick, p.CurrentBullets)
		}
		for _, b := range g.Bullets() {
			if !b.IsActive || !g.Area().InsideRows(b.Y) {
				t.Fatalf("Tick %d: stale bullet %+v", tick, b)
			}
		}
		for _, e := range g.Enemies() {
			if e.IsAlive && (e.X < testArea.MinX() || e.X+e.Width()-1 > testArea.MaxX()) {
				t.Fatalf("Tick %d: enemy outside area at %d", tick, e.X)
			}
		}

		if g.Phase() != PhasePlaying {
			rounds++
			g.Restart()
		}
	}
	if rounds == 0 {
		t.Log("No round finished during random play")
	}
}

func TestRestartRoundTrip(t *testing.T) {
	g, clock := newTestGame(t)
	fresh := snapshotState(g)

	for i := 0; i < 3; i++ {
		g.Step(input.ActionShoot)
		g.Step(input.ActionMoveRight)
	}
	keepOnly(g, 2)
	g.score = 70
	clock.Advance(5 * time.Second)
	g.Step(input.ActionWait)
	g.end(clock.Now(), PhaseLost, LossHit)

	g.Restart()

	if got := snapshotState(g); got != fresh {
		t.Errorf("Restart did not restore initial layout\n got: %s\nwant: %s", got, fresh)
	}
	if g.Phase() != PhasePlaying || g.Loss() != LossNone || g.Score() != 0 {
		t.Error("Round state not reset")
	}
	if g.Elapsed() != 0 {
		t.Errorf("Elapsed = %s after restart", g.Elapsed())
	}
	if len(g.Bullets()) != 0 || g.Player().CurrentBullets != 0 {
		t.Error("Bullets not cleared")
	}
	if !g.Formation().MovingRight {
		t.Error("Formation direction not reset")
	}
}

func snapshotState(g *Game) string {
	var sb strings.Builder
	p := g.Player()
	fmt.Fprintf(&sb, "player(%d,%d)", p.X, p.Y)
	for _, e := range g.Enemies() {
		fmt.Fprintf(&sb, " %s(%d,%d,%v)", e.Glyph, e.X, e.Y, e.IsAlive)
	}
	return sb.String()
}

func TestPaintPlayField(t *testing.T) {
	g, _ := newTestGame(t)
	buf := render.NewBuffer(testWidth, testHeight)
	g.Paint(buf)

	checks := []struct {
		x, y int
		want rune
	}{
		{1, 3, constants.BorderTopLeft},
		{58, 18, constants.BorderBottomRight},
		{29, 16, constants.PlayerGlyph},
		{6, 5, '>'},
		{7, 5, '<'},
		{12, 5, 'o'},
		{10, 7, 'O'},
	}
	for _, c := range checks {
		if got := buf.Get(c.x, c.y).Rune; got != c.want {
			t.Errorf("Cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	lines := strings.Split(string(buf.Snapshot()), "\n")
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), constants.GameTitle) {
		t.Errorf("Title row = %q", lines[0])
	}
	if !strings.Contains(lines[4], "Score: 0000") {
		t.Errorf("Status row = %q", lines[4])
	}
}

func TestStatusLine(t *testing.T) {
	g, clock := newTestGame(t)
	g.score = 40
	g.Step(input.ActionShoot)
	clock.Advance(12 * time.Second)

	want := "Score: 0040   Time: 12s   Bullets: 1/3   Speed: Slow   Mode: Manual"
	if got := g.StatusLine(); got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}

func TestPaintNoticeAndAgentStatus(t *testing.T) {
	g, clock := newTestGame(t)
	buf := render.NewBuffer(testWidth, testHeight)

	g.SetAgentStatus("AI: Shoot (0.90)")
	g.SetNotice("Screenshot saved")
	g.Paint(buf)
	if row := noticeRow(buf); !strings.Contains(row, "Screenshot saved") {
		t.Errorf("Notice row = %q", row)
	}

	clock.Advance(constants.NoticeDuration)
	g.Paint(buf)
	if row := noticeRow(buf); !strings.Contains(row, "AI: Shoot") {
		t.Errorf("Expected agent status after notice expiry, got %q", row)
	}
}

func noticeRow(buf *render.Buffer) string {
	return strings.Split(string(buf.Snapshot()), "\n")[constants.NoticeRow]
}

func TestPaintEndScreen(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
		loss  LossReason
		want  []string
	}{
		{"victory", PhaseWon, LossNone, []string{"*** VICTORY! ***", "Final Score: 30"}},
		{"hit", PhaseLost, LossHit, []string{"*** GAME OVER ***", "hit by an enemy bullet"}},
		{"invaded", PhaseLost, LossInvaded, []string{"*** GAME OVER ***", "reached your ship"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clock := newTestGame(t)
			g.score = 30
			g.end(clock.Now(), tt.phase, tt.loss)

			buf := render.NewBuffer(testWidth, testHeight)
			g.Paint(buf)
			frame := string(buf.Snapshot())

			for _, w := range tt.want {
				if !strings.Contains(frame, w) {
					t.Errorf("End screen missing %q", w)
				}
			}
			if !strings.Contains(frame, "Press R to Restart") {
				t.Error("End screen missing restart prompt")
			}
			if strings.ContainsRune(frame, constants.BorderTopLeft) {
				t.Error("Play field painted under end screen")
			}
		})
	}
}

package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-invaders/constants"
	"github.com/lixenwraith/space-invaders/input"
	"github.com/lixenwraith/space-invaders/render"
	"github.com/lixenwraith/space-invaders/screenshot"
	"github.com/lixenwraith/space-invaders/status"
)

// Capturer saves the current frame on request
type Capturer interface {
	Capture(buf *render.Buffer, stats screenshot.Stats) (string, error)
}

// LoopConfig wires the loop's collaborators. Keyboard is nil when the
// player is driven by an agent; Shots and Sink are optional. Clock defaults
// to the game's clock.
type LoopConfig struct {
	Screen   tcell.Screen
	Game     *Game
	Source   input.Source
	Keyboard *input.Keyboard
	Shots    Capturer
	Sink     EventSink
	Clock    TimeProvider
	Metrics  *status.Registry
}

// Loop is the single-threaded fixed-tick driver. Only Run's goroutine
// touches game state; the terminal poller only forwards events.
type Loop struct {
	screen   tcell.Screen
	game     *Game
	frames   *render.DoubleBuffer
	source   input.Source
	keyboard *input.Keyboard
	shots    Capturer
	sink     EventSink
	clock    TimeProvider
	metrics  *status.Registry

	shotRequested bool
	quit          bool
	ticks         uint64
}

// NewLoop creates a loop sized to the game
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Clock == nil {
		cfg.Clock = cfg.Game.clock
	}
	w, h := cfg.Game.Size()
	return &Loop{
		screen:   cfg.Screen,
		game:     cfg.Game,
		frames:   render.NewDoubleBuffer(w, h),
		source:   cfg.Source,
		keyboard: cfg.Keyboard,
		shots:    cfg.Shots,
		sink:     cfg.Sink,
		clock:    cfg.Clock,
		metrics:  cfg.Metrics,
	}
}

// Run ticks at the game's speed until a quit key or ctx cancellation.
// The source is closed on return.
func (l *Loop) Run(ctx context.Context) error {
	defer l.source.Close()

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(l.screen, events, done)

	ticker := time.NewTicker(l.game.Speed().TickInterval())
	defer ticker.Stop()

	log.Printf("loop start: speed=%s mode=%s", l.game.Speed(), l.game.Mode())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

	drain:
		for {
			select {
			case ev := <-events:
				l.HandleEvent(ev)
			default:
				break drain
			}
		}

		if l.quit {
			log.Printf("loop exit after %d ticks", l.ticks)
			return nil
		}
		l.Tick()
	}
}

// pollEvents forwards terminal events until the screen is finalized or the
// loop exits
func pollEvents(s tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event to loop state
func (l *Loop) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		l.screen.Sync()
		l.frames.Invalidate()
	case *tcell.EventKey:
		l.handleKey(input.Classify(ev.Key(), ev.Rune()))
	}
}

func (l *Loop) handleKey(k input.Key) {
	if l.game.Phase() != PhasePlaying {
		if l.clock.Now().Sub(l.game.endTime) < constants.EndScreenGrace {
			return
		}
		if k == input.KeyRestart {
			l.restart()
			return
		}
		l.quit = true
		return
	}

	switch k {
	case input.KeyQuit:
		l.quit = true
	case input.KeyScreenshot:
		l.shotRequested = true
	default:
		if l.keyboard != nil {
			l.keyboard.Press(k.Action(), l.clock.Now())
		}
	}
}

func (l *Loop) restart() {
	l.game.Restart()
	if r, ok := l.source.(input.Resetter); ok {
		r.Reset()
	}
	if l.keyboard != nil {
		l.keyboard.Reset()
	}
	l.frames.Invalidate()
	log.Printf("round restarted")
}

// Tick runs one simulation step and presents one frame
func (l *Loop) Tick() {
	l.ticks++
	l.metrics.Inc(status.Ticks)

	if l.game.Phase() == PhasePlaying {
		action := l.source.Poll(l.clock.Now(), l.frames.Previous())
		l.game.Step(action)
		if rep, ok := l.source.(input.Reporter); ok {
			if line, ok := rep.Report(); ok {
				l.game.SetAgentStatus(line)
			}
		}
	}

	buf := l.frames.Current()
	l.game.Paint(buf)

	if l.shotRequested {
		l.shotRequested = false
		l.capture(buf)
	}

	l.frames.Present(l.screen)
	l.dispatch()
}

// capture saves the painted frame, then repaints so the notice shows on
// this same tick
func (l *Loop) capture(buf *render.Buffer) {
	if l.shots == nil {
		return
	}
	p := l.game.Player()
	stats := screenshot.Stats{
		Score:      l.game.Score(),
		Seconds:    int(l.game.Elapsed().Seconds()),
		Bullets:    p.CurrentBullets,
		MaxBullets: p.MaxBullets,
	}
	path, err := l.shots.Capture(buf, stats)
	if err != nil {
		log.Printf("screenshot failed: %v", err)
		l.game.SetNotice("Screenshot failed")
	} else {
		l.metrics.Inc(status.Screenshots)
		log.Printf("screenshot saved: %s", path)
		l.game.SetNotice("Screenshot saved: " + path)
	}
	l.game.Paint(buf)
}

func (l *Loop) dispatch() {
	for _, ev := range l.game.DrainEvents() {
		switch ev {
		case EventVictory:
			l.metrics.Inc(status.RoundsWon)
			log.Printf("round won: score=%d time=%s", l.game.Score(), l.game.Elapsed())
		case EventPlayerHit, EventInvaded:
			l.metrics.Inc(status.RoundsLost)
			log.Printf("round lost: score=%d time=%s reason=%d", l.game.Score(), l.game.Elapsed(), l.game.Loss())
		}
		if l.sink != nil {
			l.sink.HandleEvent(ev)
		}
	}
}

// Quit reports whether a quit was requested
func (l *Loop) Quit() bool {
	return l.quit
}

// Frames exposes the double buffer for inspection
func (l *Loop) Frames() *render.DoubleBuffer {
	return l.frames
}

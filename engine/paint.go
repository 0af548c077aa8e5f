package engine

import (
	"fmt"

	"github.com/lixenwraith/space-invaders/constants"
	"github.com/lixenwraith/space-invaders/render"
)

// Paint draws the full frame into buf. The end screen replaces the play
// field once the round is over.
func (g *Game) Paint(buf *render.Buffer) {
	buf.Clear()

	if g.phase != PhasePlaying {
		g.paintEndScreen(buf)
		return
	}

	g.paintHeader(buf)
	g.paintBorder(buf)
	g.paintStatus(buf)

	p := g.player
	buf.Set(p.X, p.Y, p.Glyph, p.Color)

	for _, e := range g.enemies {
		if !e.IsAlive {
			continue
		}
		for i, r := range e.Glyph {
			buf.Set(e.X+i, e.Y, r, e.Color)
		}
	}

	for _, b := range g.bullets {
		if b.IsActive {
			buf.Set(b.X, b.Y, b.Glyph(), b.Color())
		}
	}
}

func (g *Game) paintHeader(buf *render.Buffer) {
	buf.SetString(g.area.Left, constants.TitleRow, constants.GameTitle, render.RgbTitle, g.width)

	switch {
	case g.notice != "" && g.clock.Now().Before(g.noticeUntil):
		buf.SetString(g.area.Left, constants.NoticeRow, g.notice, render.RgbNotice, g.width)
	case g.agentStatus != "":
		buf.SetString(g.area.Left, constants.NoticeRow, g.agentStatus, render.RgbAgent, g.width)
	}
}

func (g *Game) paintBorder(buf *render.Buffer) {
	a := g.area
	fg := render.RgbBorder

	buf.Set(a.Left, a.Top, constants.BorderTopLeft, fg)
	buf.Set(a.Right, a.Top, constants.BorderTopRight, fg)
	buf.Set(a.Left, a.Bottom, constants.BorderBottomLeft, fg)
	buf.Set(a.Right, a.Bottom, constants.BorderBottomRight, fg)

	for x := a.Left + 1; x < a.Right; x++ {
		buf.Set(x, a.Top, constants.BorderHorizontal, fg)
		buf.Set(x, a.Bottom, constants.BorderHorizontal, fg)
	}
	for y := a.Top + 1; y < a.Bottom; y++ {
		buf.Set(a.Left, y, constants.BorderVertical, fg)
		buf.Set(a.Right, y, constants.BorderVertical, fg)
	}
}

// StatusLine is the one-line readout inside the top border
func (g *Game) StatusLine() string {
	return fmt.Sprintf("Score: %04d   Time: %02ds   Bullets: %d/%d   Speed: %s   Mode: %s",
		g.score, int(g.Elapsed().Seconds()), g.player.CurrentBullets, g.player.MaxBullets, g.speed, g.mode)
}

func (g *Game) paintStatus(buf *render.Buffer) {
	buf.SetString(g.area.Left+constants.StatusOffsetX, g.area.Top+constants.StatusOffsetY,
		g.StatusLine(), render.RgbStatusBar, g.area.Right)
}

// EndScreenLines returns the modal text for a finished round
func (g *Game) EndScreenLines() []string {
	seconds := int(g.Elapsed().Seconds())
	if g.phase == PhaseWon {
		return []string{
			"*** VICTORY! ***",
			"All enemies destroyed!",
			fmt.Sprintf("Final Score: %d", g.score),
			fmt.Sprintf("Time: %d seconds", seconds),
			"",
			"Press R to Restart or any other key to exit...",
		}
	}

	cause := "You were hit by an enemy bullet!"
	if g.loss == LossInvaded {
		cause = "The invaders reached your ship!"
	}
	return []string{
		"*** GAME OVER ***",
		cause,
		fmt.Sprintf("Final Score: %d", g.score),
		fmt.Sprintf("Time Survived: %d seconds", seconds),
		"",
		"Press R to Restart or any other key to exit...",
	}
}

func (g *Game) paintEndScreen(buf *render.Buffer) {
	fg := render.RgbGameOver
	if g.phase == PhaseWon {
		fg = render.RgbVictory
	}

	lines := g.EndScreenLines()
	startY := (g.height - len(lines)) / 2
	for i, line := range lines {
		x := (g.width - len(line)) / 2
		if x < 0 {
			x = 0
		}
		buf.SetString(x, startY+i, line, fg, g.width)
	}
}

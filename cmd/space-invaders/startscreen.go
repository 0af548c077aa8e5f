package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/constants"
	"github.com/lixenwraith/space-invaders/render"
)

var (
	speedPrompt = []string{
		"Select game speed:",
		"",
		"1) Slow",
		"2) Medium",
		"3) Fast",
		"",
		"Press 1-3 (Enter = Slow)",
	}
	modePrompt = []string{
		"Select control mode:",
		"",
		"M) Manual (arrow keys, space to fire)",
		"A) AI agent",
		"",
		"Press M or A",
	}
)

// selectSettings asks for whichever of speed and mode is still unset.
// Returns false if the player quits or the screen closes.
func selectSettings(screen tcell.Screen, speed config.Speed, mode config.Mode) (config.Speed, config.Mode, bool) {
	for speed == config.SpeedUnset || mode == config.ModeUnset {
		prompt := modePrompt
		if speed == config.SpeedUnset {
			prompt = speedPrompt
		}
		drawCentered(screen, constants.GameTitle, prompt, render.RgbTitle)

		ev := screen.PollEvent()
		if ev == nil {
			return speed, mode, false
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			continue
		}

		if isQuitKey(key) {
			return speed, mode, false
		}

		if speed == config.SpeedUnset {
			if key.Key() == tcell.KeyEnter {
				speed = config.DefaultSpeed
			} else if s, ok := config.SpeedFromRune(key.Rune()); ok && key.Key() == tcell.KeyRune {
				speed = s
			}
			continue
		}

		if m, ok := config.ModeFromRune(key.Rune()); ok && key.Key() == tcell.KeyRune {
			mode = m
		}
	}
	return speed, mode, true
}

// showMessage draws a blocking notice and waits for any key
func showMessage(screen tcell.Screen, title string, lines ...string) {
	lines = append(lines, "", "Press any key to exit")
	for {
		drawCentered(screen, title, lines, render.RgbGameOver)
		ev := screen.PollEvent()
		switch ev.(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// drawCentered paints a title and body block centered on the screen
func drawCentered(screen tcell.Screen, title string, lines []string, fg tcell.Color) {
	w, h := screen.Size()
	frames := render.NewDoubleBuffer(w, h)
	buf := frames.Current()
	buf.Clear()

	startY := (h - len(lines)) / 2
	if startY < 2 {
		startY = 2
	}
	buf.SetString(center(w, title), startY-2, title, render.RgbTitle, w)
	for i, line := range lines {
		buf.SetString(center(w, line), startY+i, line, fg, w)
	}
	frames.Present(screen)
}

func center(width int, s string) int {
	x := (width - len(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

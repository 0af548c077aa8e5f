// Package input defines the action vocabulary consumed by the game loop
// and the sources that produce it.
package input

import (
	"strings"
	"time"
)

// Action is one discrete command for a tick
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionShoot
	ActionWait
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionShoot:     "Shoot",
	ActionWait:      "Wait",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// IsMovement reports whether a moves the player
func (a Action) IsMovement() bool {
	return a == ActionMoveLeft || a == ActionMoveRight
}

// ParseAction maps an action name to the vocabulary, ignoring case,
// spaces, underscores and hyphens. Unknown names yield Wait and false.
func ParseAction(s string) (Action, bool) {
	norm := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	switch norm {
	case "moveleft", "left":
		return ActionMoveLeft, true
	case "moveright", "right":
		return ActionMoveRight, true
	case "shoot", "fire":
		return ActionShoot, true
	case "wait":
		return ActionWait, true
	case "none":
		return ActionNone, true
	}
	return ActionWait, false
}

// Frame is the visual state handed to a source
type Frame interface {
	Snapshot() []byte
}

// Source produces at most one action per tick. Poll must not block.
type Source interface {
	Poll(now time.Time, frame Frame) Action
	Close()
}

// Resetter is implemented by sources holding per-round state
type Resetter interface {
	Reset()
}

// Reporter is implemented by sources with a status line to display
type Reporter interface {
	Report() (string, bool)
}

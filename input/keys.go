package input

import "github.com/gdamore/tcell/v2"

// Key is a classified key press
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyScreenshot
	KeyQuit
	KeyRestart
)

// Classify maps a terminal key event to a game key
func Classify(k tcell.Key, r rune) Key {
	switch k {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch r {
		case ' ':
			return KeyFire
		case 's', 'S':
			return KeyScreenshot
		case 'q', 'Q':
			return KeyQuit
		case 'r', 'R':
			return KeyRestart
		}
	}
	return KeyNone
}

// Action returns the gameplay action for the key, or ActionNone
func (k Key) Action() Action {
	switch k {
	case KeyLeft:
		return ActionMoveLeft
	case KeyRight:
		return ActionMoveRight
	case KeyFire:
		return ActionShoot
	}
	return ActionNone
}

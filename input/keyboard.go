package input

import "time"

// keyQueueSize bounds presses buffered between ticks
const keyQueueSize = 4

// Keyboard buffers human presses and releases one per tick. Movement
// presses closer together than the repeat interval are dropped.
type Keyboard struct {
	repeat   time.Duration
	lastMove time.Time
	queue    []Action
}

// NewKeyboard creates a keyboard source with the given movement repeat gap
func NewKeyboard(repeat time.Duration) *Keyboard {
	return &Keyboard{
		repeat: repeat,
		queue:  make([]Action, 0, keyQueueSize),
	}
}

// Press records a gameplay action. Returns false if it was dropped.
func (k *Keyboard) Press(a Action, now time.Time) bool {
	if a == ActionNone {
		return false
	}
	if a.IsMovement() {
		if !k.lastMove.IsZero() && now.Sub(k.lastMove) < k.repeat {
			return false
		}
	}
	if len(k.queue) >= keyQueueSize {
		return false
	}
	if a.IsMovement() {
		k.lastMove = now
	}
	k.queue = append(k.queue, a)
	return true
}

// Poll returns the oldest buffered action
func (k *Keyboard) Poll(_ time.Time, _ Frame) Action {
	if len(k.queue) == 0 {
		return ActionNone
	}
	a := k.queue[0]
	copy(k.queue, k.queue[1:])
	k.queue = k.queue[:len(k.queue)-1]
	return a
}

// Reset drops buffered presses
func (k *Keyboard) Reset() {
	k.queue = k.queue[:0]
	k.lastMove = time.Time{}
}

func (k *Keyboard) Close() {}

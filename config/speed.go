package config

import (
	"fmt"
	"time"
)

// Speed is the selected game speed tier
type Speed int

const (
	SpeedUnset Speed = iota
	SpeedSlow
	SpeedMedium
	SpeedFast
)

// DefaultSpeed is used when the start screen is confirmed with Enter
const DefaultSpeed = SpeedSlow

type speedTiming struct {
	tick      time.Duration
	formation time.Duration
	shoot     time.Duration
	keyRepeat time.Duration
}

var speedTimings = map[Speed]speedTiming{
	SpeedSlow:   {100 * time.Millisecond, 500 * time.Millisecond, 2000 * time.Millisecond, 80 * time.Millisecond},
	SpeedMedium: {75 * time.Millisecond, 400 * time.Millisecond, 1600 * time.Millisecond, 60 * time.Millisecond},
	SpeedFast:   {50 * time.Millisecond, 300 * time.Millisecond, 1200 * time.Millisecond, 40 * time.Millisecond},
}

func (s Speed) timing() speedTiming {
	if t, ok := speedTimings[s]; ok {
		return t
	}
	return speedTimings[DefaultSpeed]
}

// TickInterval is the sleep between loop iterations
func (s Speed) TickInterval() time.Duration { return s.timing().tick }

// FormationInterval is the gap between formation moves
func (s Speed) FormationInterval() time.Duration { return s.timing().formation }

// ShootInterval is the gap between enemy shots
func (s Speed) ShootInterval() time.Duration { return s.timing().shoot }

// KeyRepeat is the minimum gap between accepted movement key presses
func (s Speed) KeyRepeat() time.Duration { return s.timing().keyRepeat }

// Valid reports whether s is one of the three tiers
func (s Speed) Valid() bool {
	_, ok := speedTimings[s]
	return ok
}

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "Slow"
	case SpeedMedium:
		return "Medium"
	case SpeedFast:
		return "Fast"
	default:
		return "Unset"
	}
}

// SpeedFromRune maps a start screen selector to a tier
func SpeedFromRune(r rune) (Speed, bool) {
	switch r {
	case '1':
		return SpeedSlow, true
	case '2':
		return SpeedMedium, true
	case '3':
		return SpeedFast, true
	}
	return SpeedUnset, false
}

// ParseSpeed accepts a tier number or name
func ParseSpeed(s string) (Speed, error) {
	switch s {
	case "", "0":
		return SpeedUnset, nil
	case "1", "slow":
		return SpeedSlow, nil
	case "2", "medium":
		return SpeedMedium, nil
	case "3", "fast":
		return SpeedFast, nil
	}
	return SpeedUnset, fmt.Errorf("unknown speed %q", s)
}

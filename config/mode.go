package config

import (
	"fmt"
	"strings"
)

// Mode selects the action source for a session
type Mode int

const (
	ModeUnset Mode = iota
	ModeManual
	ModeAgent
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "Manual"
	case ModeAgent:
		return "AI"
	default:
		return "Unset"
	}
}

// ModeFromRune maps a start screen selector to a mode
func ModeFromRune(r rune) (Mode, bool) {
	switch r {
	case 'm', 'M':
		return ModeManual, true
	case 'a', 'A':
		return ModeAgent, true
	}
	return ModeUnset, false
}

// ParseMode accepts "manual" or "agent"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ModeUnset, nil
	case "manual", "m", "human":
		return ModeManual, nil
	case "agent", "a", "ai":
		return ModeAgent, nil
	}
	return ModeUnset, fmt.Errorf("unknown mode %q", s)
}

// Package agent drives the player from an external decision service.
//
// A Decider maps two consecutive frames and the last applied action to one
// action. Source wraps a Decider as an input.Source with its own request
// cadence so the tick loop never waits on the network.
package agent

import (
	"context"
	"fmt"

	"github.com/lixenwraith/space-invaders/input"
)

// Confidence levels for substituted decisions
const (
	FailureConfidence   = 0.1
	HeuristicConfidence = 0.3
	DefaultConfidence   = 0.5
)

// Decision is one resolved action with the service's rationale
type Decision struct {
	Action     input.Action
	Reasoning  string
	Confidence float64
}

func (d Decision) String() string {
	return fmt.Sprintf("%s (%.2f) %s", d.Action, d.Confidence, d.Reasoning)
}

// Request carries the previous and current text frames
type Request struct {
	Previous   []byte
	Current    []byte
	LastAction input.Action
}

// Decider is the external decision collaborator
type Decider interface {
	Decide(ctx context.Context, req Request) (Decision, error)
}

// Fallback is the safe decision substituted when the collaborator fails
func Fallback(err error) Decision {
	return Decision{
		Action:     input.ActionWait,
		Reasoning:  fmt.Sprintf("Error occurred: %v", err),
		Confidence: FailureConfidence,
	}
}

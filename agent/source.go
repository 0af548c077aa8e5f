package agent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/space-invaders/input"
	"github.com/lixenwraith/space-invaders/status"
)

// Source polls a Decider on its own wall-clock cadence. At most one request
// is outstanding; its result is applied exactly once, on the first Poll
// after it arrives, however late that is.
type Source struct {
	decider  Decider
	interval time.Duration
	timeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	// results is 1-buffered and only one request is ever in flight, so the
	// request goroutine never blocks on send
	results chan Decision

	inFlight    bool
	lastRequest time.Time
	lastAction  input.Action
	prevFrame   []byte

	last    Decision
	hasLast bool

	metrics *status.Registry
}

// NewSource creates a source requesting at most once per interval, each
// request bounded by timeout
func NewSource(d Decider, interval, timeout time.Duration) *Source {
	ctx, cancel := context.WithCancel(context.Background())
	return &Source{
		decider:    d,
		interval:   interval,
		timeout:    timeout,
		ctx:        ctx,
		cancel:     cancel,
		results:    make(chan Decision, 1),
		lastAction: input.ActionNone,
	}
}

// SetMetrics records request counts and latency into reg
func (s *Source) SetMetrics(reg *status.Registry) {
	s.metrics = reg
}

// Poll applies a newly arrived decision, or returns ActionNone, and starts
// the next request when due. Never blocks.
func (s *Source) Poll(now time.Time, frame input.Frame) input.Action {
	action := input.ActionNone

	select {
	case d := <-s.results:
		s.inFlight = false
		s.last = d
		s.hasLast = true
		s.lastAction = d.Action
		action = d.Action
		log.Printf("agent decision: %s", d)
	default:
	}

	if s.due(now) && frame != nil {
		cur := frame.Snapshot()
		prev := s.prevFrame
		if prev == nil {
			prev = cur
		}
		s.prevFrame = cur
		s.inFlight = true
		s.lastRequest = now
		go s.request(Request{Previous: prev, Current: cur, LastAction: s.lastAction})
	}

	return action
}

func (s *Source) due(now time.Time) bool {
	if s.inFlight || s.ctx.Err() != nil {
		return false
	}
	return s.lastRequest.IsZero() || now.Sub(s.lastRequest) >= s.interval
}

func (s *Source) request(req Request) {
	var d Decision
	defer func() {
		if r := recover(); r != nil {
			d = Fallback(fmt.Errorf("decider panic: %v", r))
		}
		s.results <- d
	}()

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	s.metrics.Inc(status.AgentRequests)
	start := time.Now()

	var err error
	d, err = s.decider.Decide(ctx, req)
	s.metrics.Observe(status.AgentLatencyMs, status.AgentPeakMs, float64(time.Since(start).Milliseconds()))
	if err != nil {
		s.metrics.Inc(status.AgentFailures)
		log.Printf("agent request failed: %v", err)
		d = Fallback(err)
	}
}

// LastDecision returns the most recently applied decision
func (s *Source) LastDecision() (Decision, bool) {
	return s.last, s.hasLast
}

// Report formats the last decision for the notice row
func (s *Source) Report() (string, bool) {
	if !s.hasLast {
		if s.inFlight {
			return "AI: thinking...", true
		}
		return "", false
	}
	return "AI: " + s.last.String(), true
}

// Reset forgets frame history for a new round. An outstanding request
// still delivers.
func (s *Source) Reset() {
	s.prevFrame = nil
	s.lastAction = input.ActionNone
}

// Close abandons any outstanding request without waiting for it
func (s *Source) Close() {
	s.cancel()
}

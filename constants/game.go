package constants

import "time"

// Scoring
const (
	// EnemyKillScore is awarded for each enemy destroyed by a player bullet
	EnemyKillScore = 10
)

// Player Constants
const (
	// DefaultMaxBullets caps concurrent in-flight player bullets
	DefaultMaxBullets = 3
)

// Agent Constants
const (
	// AgentPollInterval is the minimum wall-clock gap between decision requests
	AgentPollInterval = 500 * time.Millisecond

	// AgentRequestTimeout bounds a single decision request
	AgentRequestTimeout = 10 * time.Second
)

// UI Timing Constants
const (
	// NoticeDuration is how long a transient notice stays on the notice row
	NoticeDuration = 2 * time.Second
)

// Loop Constants
const (
	// EndScreenGrace ignores keys for a moment after a round ends so a held
	// fire key does not dismiss the result
	EndScreenGrace = 500 * time.Millisecond

	// EventQueueSize buffers terminal events between ticks
	EventQueueSize = 64
)

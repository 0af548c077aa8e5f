package engine

// Event is a notable simulation occurrence, drained by the loop after each tick
type Event int

const (
	EventPlayerShot Event = iota
	EventEnemyShot
	EventEnemyDestroyed
	EventPlayerHit
	EventInvaded
	EventVictory
)

// EventSink consumes drained events (audio, logging)
type EventSink interface {
	HandleEvent(Event)
}

package main

import (
	"github.com/lixenwraith/space-invaders/audio"
	"github.com/lixenwraith/space-invaders/engine"
)

// soundSink plays the effect for each drained game event
type soundSink struct {
	sounds *audio.SoundManager
}

func (s soundSink) HandleEvent(ev engine.Event) {
	switch ev {
	case engine.EventPlayerShot:
		s.sounds.PlayShoot()
	case engine.EventEnemyShot:
		s.sounds.PlayEnemyShot()
	case engine.EventEnemyDestroyed:
		s.sounds.PlayExplosion()
	case engine.EventPlayerHit, engine.EventInvaded:
		s.sounds.PlayHit()
	case engine.EventVictory:
		s.sounds.PlayVictory()
	}
}

// Package audio synthesizes the game's sound effects on a shared mixer.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// arpeggio notes for the victory jingle (C5 E5 G5 C6)
var victoryNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Without a device the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether a device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayShoot plays a short high sine
func (sm *SoundManager) PlayShoot() {
	if !sm.Initialized() {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -3}
	sm.add(beep.Take(sampleRate.N(40*time.Millisecond), quiet))
}

// PlayExplosion plays the enemy destroyed burst
func (sm *SoundManager) PlayExplosion() {
	sm.add(ExplosionStream())
}

// PlayHit plays the low buzz for the player being hit or invaded
func (sm *SoundManager) PlayHit() {
	sm.add(beep.Take(sampleRate.N(400*time.Millisecond), NewBuzzGenerator(sampleRate, 110)))
}

// PlayVictory plays a rising arpeggio
func (sm *SoundManager) PlayVictory() {
	sm.add(VictoryStream())
}

// PlayEnemyShot plays a faint low blip
func (sm *SoundManager) PlayEnemyShot() {
	sm.add(beep.Take(sampleRate.N(60*time.Millisecond), NewBlipGenerator(sampleRate, 220, 30)))
}

// ExplosionStream is a 250ms explosion
func ExplosionStream() beep.Streamer {
	return beep.Take(sampleRate.N(250*time.Millisecond), NewExplosionGenerator(sampleRate))
}

// VictoryStream sequences the victory notes, 120ms each
func VictoryStream() beep.Streamer {
	parts := make([]beep.Streamer, 0, len(victoryNotes))
	for _, f := range victoryNotes {
		parts = append(parts, beep.Take(sampleRate.N(120*time.Millisecond), NewBlipGenerator(sampleRate, f, 6)))
	}
	return beep.Seq(parts...)
}

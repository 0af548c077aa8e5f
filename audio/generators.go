package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator generates a short pitched blip with exponential decay
type BlipGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

// NewBlipGenerator creates a blip at freq Hz; decay is the envelope rate per second
func NewBlipGenerator(sr beep.SampleRate, freq, decay float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates a noise burst over a low rumble
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewExplosionGenerator creates an explosion generator
func NewExplosionGenerator(sr beep.SampleRate) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast decay
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz with harmonics
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

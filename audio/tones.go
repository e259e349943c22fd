package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type toneShape int

const (
	shapeSine toneShape = iota
	shapeSweepUp
	shapeSweepDown
	shapeNoise
)

type cueSpec struct {
	freq     float64
	endFreq  float64 // sweep target, sweeps only
	duration time.Duration
	shape    toneShape
	volume   float64
}

// cues maps the sound keys behaviors emit to synthesized tones.
var cues = map[string]cueSpec{
	"pickup":          {freq: 660, endFreq: 1320, duration: 90 * time.Millisecond, shape: shapeSweepUp, volume: 0.25},
	"chest_open":      {freq: 330, endFreq: 660, duration: 200 * time.Millisecond, shape: shapeSweepUp, volume: 0.25},
	"dialogue":        {freq: 520, duration: 50 * time.Millisecond, shape: shapeSine, volume: 0.2},
	"door_open":       {freq: 240, endFreq: 180, duration: 150 * time.Millisecond, shape: shapeSweepDown, volume: 0.25},
	"door_close":      {freq: 180, endFreq: 120, duration: 150 * time.Millisecond, shape: shapeSweepDown, volume: 0.25},
	"door_unlock":     {freq: 440, endFreq: 880, duration: 120 * time.Millisecond, shape: shapeSweepUp, volume: 0.25},
	"door_locked":     {freq: 140, duration: 180 * time.Millisecond, shape: shapeSine, volume: 0.3},
	"enemy_attack":    {freq: 110, duration: 160 * time.Millisecond, shape: shapeNoise, volume: 0.3},
	"zone_transition": {freq: 300, endFreq: 900, duration: 350 * time.Millisecond, shape: shapeSweepUp, volume: 0.25},
}

// toneGenerator streams one synthesized cue with an exponential decay
// envelope so short tones do not click at the cut point.
type toneGenerator struct {
	sr   float64
	cue  cueSpec
	pos  int
	n    int
	seed int64
}

func newToneGenerator(sr beep.SampleRate, cue cueSpec) *toneGenerator {
	if cue.volume == 0 {
		cue.volume = 0.25
	}
	return &toneGenerator{
		sr:   float64(sr),
		cue:  cue,
		n:    sr.N(cue.duration),
		seed: time.Now().UnixNano(),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / g.sr
		progress := float64(g.pos) / float64(g.n)
		if progress > 1 {
			progress = 1
		}
		envelope := math.Exp(-progress * 4)

		var sample float64
		switch g.cue.shape {
		case shapeSweepUp, shapeSweepDown:
			freq := g.cue.freq + (g.cue.endFreq-g.cue.freq)*progress
			sample = math.Sin(2 * math.Pi * freq * t)
		case shapeNoise:
			g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
			noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
			rumble := math.Sin(2 * math.Pi * g.cue.freq * t)
			sample = 0.6*noise + 0.4*rumble
		default:
			sample = math.Sin(2 * math.Pi * g.cue.freq * t)
		}

		sample *= envelope * g.cue.volume
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToneGenerator_BoundedOutput(t *testing.T) {
	for name, cue := range cues {
		t.Run(name, func(t *testing.T) {
			g := newToneGenerator(sampleRate, cue)
			buf := make([][2]float64, 512)
			for i := 0; i < 20; i++ {
				n, ok := g.Stream(buf)
				require.True(t, ok)
				require.Equal(t, len(buf), n)
				for _, s := range buf {
					require.LessOrEqual(t, math.Abs(s[0]), 1.0)
					require.Equal(t, s[0], s[1], "cues are mono, mirrored to both channels")
				}
			}
		})
	}
}

func TestToneGenerator_DecayEnvelope(t *testing.T) {
	cue := cueSpec{freq: 440, duration: 100 * time.Millisecond, shape: shapeSine, volume: 0.5}
	g := newToneGenerator(sampleRate, cue)

	n := sampleRate.N(cue.duration)
	buf := make([][2]float64, n)
	g.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range buf[from:to] {
			if a := math.Abs(s[0]); a > m {
				m = a
			}
		}
		return m
	}
	require.Greater(t, peak(0, n/4), peak(3*n/4, n), "tail quieter than attack")
}

func TestToneGenerator_DefaultVolume(t *testing.T) {
	g := newToneGenerator(sampleRate, cueSpec{freq: 880, duration: 50 * time.Millisecond})
	require.Equal(t, 0.25, g.cue.volume)
}

func TestManager_SilentWithoutInitialize(t *testing.T) {
	m := NewManager()
	// Must not panic or touch the speaker
	m.PlaySound("pickup")
	m.PlaySound("no_such_cue")
	m.Cleanup()
}

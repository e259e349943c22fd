// Package audio plays short synthesized cues through the system
// speaker. Sounds are generated, not sampled, so the runner has no
// asset files to ship. When no audio device is available the manager
// stays in silent mode and every call becomes a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager routes named sound cues to the speaker. It satisfies the
// simulation's Audio capability.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. A failed init leaves the manager in
// silent mode rather than returning a fatal error; headless hosts run
// without sound.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences all active streamers.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// ToggleMute flips mute and reports whether sound is now enabled.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	return !m.muted
}

// PlaySound queues the cue registered under key. Unknown keys play a
// generic blip so a misnamed cue is audible during development instead
// of silently dropped.
func (m *Manager) PlaySound(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	cue, ok := cues[key]
	if !ok {
		cue = cueSpec{freq: 880, duration: 60 * time.Millisecond, shape: shapeSine}
	}
	m.mixer.Add(beep.Take(sampleRate.N(cue.duration), newToneGenerator(sampleRate, cue)))
}

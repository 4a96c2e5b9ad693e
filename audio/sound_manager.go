// Package audio plays short feedback sounds for unlocks, denials and hover
// Playback is optional: every method is a no-op until Initialize succeeds
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/constellation/parameter"
)

// Clock supplies time for hover tick rate limiting
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SoundManager mixes feedback sounds onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	clock       Clock
	initialized bool
	muted       bool
	hover       *rate.Limiter // One tick per MinHoverTickGap
	played      int           // Streams queued since creation
}

// NewSoundManager creates a new sound manager, nil clock means the system clock
func NewSoundManager(clock Clock) *SoundManager {
	if clock == nil {
		clock = systemClock{}
	}
	return &SoundManager{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
		clock: clock,
		hover: rate.NewLimiter(rate.Every(parameter.MinHoverTickGap), 1),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
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

// SetMuted silences new sounds without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns the number of streams queued to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayUnlock plays the unlock chime pitched by tier
func (sm *SoundManager) PlayUnlock(tier int) {
	sm.play(func() beep.Streamer { return CreateUnlockChime(sm.rate, tier) })
}

// PlayDenied plays the rejection buzz
func (sm *SoundManager) PlayDenied() {
	sm.play(func() beep.Streamer { return CreateDeniedBuzz(sm.rate) })
}

// PlayHover plays the hover tick, rate limited while sweeping across nodes
func (sm *SoundManager) PlayHover() {
	if !sm.allowHover() {
		return
	}
	sm.play(func() beep.Streamer {
		s, err := CreateHoverTick(sm.rate)
		if err != nil {
			return nil
		}
		return s
	})
}

// allowHover enforces the minimum gap between hover ticks
func (sm *SoundManager) allowHover() bool {
	return sm.hover.AllowN(sm.clock.Now(), 1)
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := build()
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

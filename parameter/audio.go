package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Unlock chime: rising arpeggio
const (
	UnlockChimeNoteDuration = 90 * time.Millisecond
	UnlockChimeRoot         = 523.25 // C5
	UnlockChimeVolume       = 0.25
)

// Denied buzz
const (
	DeniedBuzzDuration = 150 * time.Millisecond
	DeniedBuzzFreq     = 120.0
)

// Hover tick
const (
	HoverTickDuration = 25 * time.Millisecond
	HoverTickFreq     = 1760.0
	HoverTickVolume   = 0.08

	// MinHoverTickGap prevents tick spam while sweeping across nodes
	MinHoverTickGap = 60 * time.Millisecond
)

// Envelope shaping shared by all effects
const (
	EffectAttack  = 5 * time.Millisecond
	EffectRelease = 40 * time.Millisecond

	// DeniedBuzzVolume and MasterVolume are linear gains
	DeniedBuzzVolume = 0.2
	MasterVolume     = 0.8
)

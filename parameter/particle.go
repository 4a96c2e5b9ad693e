package parameter

import "time"

// Particle Pool
const (
	// ParticleCapacity is the hard cap of live particles, oldest evicted on overflow
	ParticleCapacity = 150

	// AmbientTarget is how many ambient particles the field keeps alive
	AmbientTarget = 24
)

// Per-kind behavior
const (
	// AmbientLife is lifetime in seconds of drifting background motes
	AmbientLifeMin = 4.0
	AmbientLifeMax = 9.0
	// AmbientSpeed is the max drift speed (world units per second)
	AmbientSpeed = 12.0
	// AmbientWobble is the amplitude of sideways drift (world units per second)
	AmbientWobble = 6.0

	HoverBurstCount = 6
	HoverLife       = 0.5
	HoverSpeed      = 60.0
	// HoverFriction is velocity retained per second
	HoverFriction = 0.05

	UnlockBurstCount = 24
	UnlockLife       = 1.1
	UnlockSpeedMin   = 80.0
	UnlockSpeedMax   = 180.0
	UnlockFriction   = 0.15

	ConnectionCount = 8
	ConnectionLife  = 0.9

	// ParticleSizeMin and ParticleSizeMax bound the rolled particle size
	ParticleSizeMin = 0.5
	ParticleSizeMax = 1.5
)

// Node Transitions
const (
	// TransitionDuration is the cubic ease-out window
	TransitionDuration = 300 * time.Millisecond

	// TransitionEpsilon snaps values to target once this close
	TransitionEpsilon = 1e-3

	RestScale   = 1.0
	RestOpacity = 1.0
	RestGlow    = 0.0

	HoverScale = 1.35
	HoverGlow  = 1.0

	SelectedScale = 1.2
	SelectedGlow  = 0.6

	// UnlockPulseScale is the pulse peak after a successful unlock request
	UnlockPulseScale = 1.6
	// DeniedPulseScale is the brief pulse peak on clicking an ineligible node
	DeniedPulseScale = 1.2
)

package fx

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Kind selects per-particle behavior
type Kind uint8

const (
	KindAmbient Kind = iota
	KindHover
	KindUnlock
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindHover:
		return "hover"
	case KindUnlock:
		return "unlock"
	case KindConnection:
		return "connection"
	default:
		return "ambient"
	}
}

// Particle is a short-lived visual mote in world space
type Particle struct {
	Kind    Kind
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Age     float64 // Seconds
	Life    float64 // Seconds
	Size    float64
	Palette int     // Constellation hue index, -1 for neutral
	Phase   float64 // Wobble phase for ambient drift
}

// Expired reports whether the particle outlived its lifetime
func (p *Particle) Expired() bool {
	return p.Age >= p.Life
}

// Progress returns age normalized to [0,1]
func (p *Particle) Progress() float64 {
	if p.Life <= 0 {
		return 1
	}
	return vmath.Clamp(p.Age/p.Life, 0, 1)
}

// Alpha returns render opacity; ambient motes fade in and out, others fade out
func (p *Particle) Alpha() float64 {
	t := p.Progress()
	if p.Kind == KindAmbient {
		return math.Sin(t * math.Pi)
	}
	return 1 - t
}

// step integrates one tick of dt seconds with the kind's drift and friction
func (p *Particle) step(dt float64) {
	switch p.Kind {
	case KindAmbient:
		p.Phase += dt
		side := p.Vel.Normalize().Perpendicular()
		p.Pos = p.Pos.Add(side.Scale(math.Sin(p.Phase*2) * parameter.AmbientWobble * dt))
	case KindHover:
		p.Vel = p.Vel.Scale(math.Pow(parameter.HoverFriction, dt))
	case KindUnlock:
		p.Vel = p.Vel.Scale(math.Pow(parameter.UnlockFriction, dt))
		p.Size *= 1 - 0.6*dt
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Age += dt
}

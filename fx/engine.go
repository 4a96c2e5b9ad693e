package fx

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Engine owns the particle pool, the ambient field and per-node transitions
// Not safe for concurrent use, driven from the frame tick
type Engine struct {
	pool        *Pool
	rng         *vmath.FastRand // Visual only, never shared with generation
	transitions map[string]*Transition
	bounds      vmath.Rect
	ambient     int

	scratch []Particle
}

// NewEngine creates an engine whose visual randomness derives from seed
func NewEngine(seed uint64) *Engine {
	return &Engine{
		pool:        NewPool(),
		rng:         vmath.NewFastRand(vmath.Mix(seed, 0xF1)),
		transitions: make(map[string]*Transition),
		bounds:      vmath.EmptyRect(),
		ambient:     parameter.AmbientTarget,
	}
}

// SetBounds sets the world region where ambient particles live
func (e *Engine) SetBounds(r vmath.Rect) {
	e.bounds = r
}

// SetAmbientTarget overrides the ambient particle count, 0 disables the field
func (e *Engine) SetAmbientTarget(n int) {
	e.ambient = max(n, 0)
}

// Pool exposes the particle arena
func (e *Engine) Pool() *Pool { return e.pool }

// Particles returns a reused snapshot of live particles, valid until the next call
func (e *Engine) Particles() []Particle {
	e.scratch = e.pool.Snapshot(e.scratch)
	return e.scratch
}

// Transition returns the transition of id, created lazily at rest
func (e *Engine) Transition(id string) *Transition {
	t, ok := e.transitions[id]
	if !ok {
		t = NewTransition()
		e.transitions[id] = t
	}
	return t
}

// Values returns the current animated values of id, Rest when never animated
func (e *Engine) Values(id string) Values {
	if t, ok := e.transitions[id]; ok {
		return t.Current()
	}
	return Rest
}

// AwayFromRest fills dst with the values of every node not at rest, dst may be nil
func (e *Engine) AwayFromRest(dst map[string]Values) map[string]Values {
	if dst == nil {
		dst = make(map[string]Values, len(e.transitions))
	}
	clear(dst)
	for id, t := range e.transitions {
		if v := t.Current(); !near(v, Rest) {
			dst[id] = v
		}
	}
	return dst
}

// SetTarget eases id toward v
func (e *Engine) SetTarget(id string, v Values) {
	e.Transition(id).SetTarget(v)
}

// Pulse scales id up to peak then eases it to settle
func (e *Engine) Pulse(id string, peak float64, settle Values) {
	e.Transition(id).Pulse(peak, settle)
}

// Burst spawns count particles of kind radiating from pos
func (e *Engine) Burst(kind Kind, pos vmath.Vec2, count, palette int) {
	for i := 0; i < count; i++ {
		angle := float64(i)/float64(max(count, 1))*2*math.Pi + e.rng.FloatRange(-0.3, 0.3)
		var speed, life float64
		switch kind {
		case KindUnlock:
			speed = e.rng.FloatRange(parameter.UnlockSpeedMin, parameter.UnlockSpeedMax)
			life = parameter.UnlockLife
		case KindConnection:
			speed = parameter.HoverSpeed
			life = parameter.ConnectionLife
		default:
			speed = parameter.HoverSpeed * e.rng.FloatRange(0.6, 1)
			life = parameter.HoverLife
		}
		e.pool.Spawn(Particle{
			Kind:    kind,
			Pos:     pos,
			Vel:     vmath.Polar(speed, angle),
			Life:    life * e.rng.FloatRange(0.8, 1.2),
			Size:    e.rng.FloatRange(parameter.ParticleSizeMin, parameter.ParticleSizeMax),
			Palette: palette,
		})
	}
}

// Stream spawns connection particles travelling from one endpoint to the other
func (e *Engine) Stream(from, to vmath.Vec2, palette int) {
	span := to.Sub(from)
	vel := span.Div(parameter.ConnectionLife)
	for i := 0; i < parameter.ConnectionCount; i++ {
		// Staggered along the first half so every particle dies at the far endpoint
		lead := float64(i) / float64(parameter.ConnectionCount)
		e.pool.Spawn(Particle{
			Kind:    KindConnection,
			Pos:     from.Add(span.Scale(0.5 * lead)),
			Vel:     vel,
			Life:    parameter.ConnectionLife * (1 - 0.5*lead),
			Size:    e.rng.FloatRange(parameter.ParticleSizeMin, parameter.ParticleSizeMax),
			Palette: palette,
			Phase:   lead,
		})
	}
}

// Tick advances particles, keeps the ambient field populated and eases transitions
func (e *Engine) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	e.pool.Tick(dt)
	e.fillAmbient()
	for _, t := range e.transitions {
		t.Tick(dt)
	}
}

// Animating reports whether any transition is still moving
func (e *Engine) Animating() bool {
	for _, t := range e.transitions {
		if t.Active() {
			return true
		}
	}
	return false
}

// Reset drops particles and transitions
func (e *Engine) Reset() {
	e.pool.Clear()
	clear(e.transitions)
}

func (e *Engine) fillAmbient() {
	if e.bounds.Empty() || e.ambient == 0 {
		return
	}
	for n := e.pool.Count(KindAmbient); n < e.ambient; n++ {
		pos := vmath.V(
			e.rng.FloatRange(e.bounds.Min.X, e.bounds.Max.X),
			e.rng.FloatRange(e.bounds.Min.Y, e.bounds.Max.Y),
		)
		e.pool.Spawn(Particle{
			Kind:    KindAmbient,
			Pos:     pos,
			Vel:     vmath.Polar(e.rng.FloatRange(0.3, 1)*parameter.AmbientSpeed, e.rng.FloatRange(0, 2*math.Pi)),
			Life:    e.rng.FloatRange(parameter.AmbientLifeMin, parameter.AmbientLifeMax),
			Size:    e.rng.FloatRange(parameter.ParticleSizeMin, parameter.ParticleSizeMax),
			Palette: -1,
			Phase:   e.rng.FloatRange(0, 2*math.Pi),
		})
	}
}

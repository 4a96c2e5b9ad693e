package fx

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Values are the animated visual properties of a node
type Values struct {
	Scale   float64
	Glow    float64
	Opacity float64
}

// Rest is the resting appearance
var Rest = Values{Scale: parameter.RestScale, Glow: parameter.RestGlow, Opacity: parameter.RestOpacity}

// Hovered is the enlarged appearance under the pointer
var Hovered = Values{Scale: parameter.HoverScale, Glow: parameter.HoverGlow, Opacity: parameter.RestOpacity}

// Selected is the appearance of the current selection
var Selected = Values{Scale: parameter.SelectedScale, Glow: parameter.SelectedGlow, Opacity: parameter.RestOpacity}

func lerpValues(a, b Values, t float64) Values {
	return Values{
		Scale:   vmath.Lerp(a.Scale, b.Scale, t),
		Glow:    vmath.Lerp(a.Glow, b.Glow, t),
		Opacity: vmath.Lerp(a.Opacity, b.Opacity, t),
	}
}

func near(a, b Values) bool {
	return math.Abs(a.Scale-b.Scale) < parameter.TransitionEpsilon &&
		math.Abs(a.Glow-b.Glow) < parameter.TransitionEpsilon &&
		math.Abs(a.Opacity-b.Opacity) < parameter.TransitionEpsilon
}

// Transition eases a node's Values toward a target with cubic ease-out
// Retargeting restarts the window from the current value
type Transition struct {
	from    Values
	current Values
	target  Values
	elapsed float64 // Seconds into the current window
	settle  *Values // Queued target once a pulse peaks
	active  bool
}

// NewTransition starts at rest with no motion
func NewTransition() *Transition {
	return &Transition{from: Rest, current: Rest, target: Rest}
}

// Current returns the animated value
func (t *Transition) Current() Values { return t.current }

// Target returns the value being eased toward
func (t *Transition) Target() Values { return t.target }

// Active reports whether the transition is still moving
func (t *Transition) Active() bool { return t.active }

// SetTarget retargets from the current value and drops any queued settle
func (t *Transition) SetTarget(v Values) {
	t.settle = nil
	t.retarget(v)
}

func (t *Transition) retarget(v Values) {
	if v == t.target && !t.active {
		return
	}
	t.from = t.current
	t.target = v
	t.elapsed = 0
	t.active = !near(t.current, v)
	if !t.active {
		t.current = v
	}
}

// Pulse eases scale up to peak then back toward settle
func (t *Transition) Pulse(peak float64, settle Values) {
	up := settle
	up.Scale = peak
	up.Glow = math.Max(settle.Glow, parameter.HoverGlow)
	t.retarget(up)
	t.settle = &settle
	if !t.active {
		t.advanceSettle()
	}
}

func (t *Transition) advanceSettle() {
	if t.settle == nil {
		return
	}
	next := *t.settle
	t.settle = nil
	t.retarget(next)
}

// Tick advances the ease by dt seconds, snapping once within epsilon
func (t *Transition) Tick(dt float64) {
	if !t.active {
		return
	}
	t.elapsed += dt
	window := parameter.TransitionDuration.Seconds()
	k := vmath.EaseOutCubic(vmath.Clamp(t.elapsed/window, 0, 1))
	t.current = lerpValues(t.from, t.target, k)
	if k >= 1 || near(t.current, t.target) {
		t.current = t.target
		t.active = false
		t.advanceSettle()
	}
}

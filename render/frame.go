package render

import (
	"time"

	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/interact"
	"github.com/lixenwraith/constellation/layout"
	"github.com/lixenwraith/constellation/skill"
)

// Frame is the plain data a render pass reads, built once per frame by the session
// Passes never mutate it
type Frame struct {
	Tree      *skill.Tree
	Layout    *layout.Layout
	View      interact.View
	Unlocked  skill.UnlockedSet
	States    map[string]skill.State
	Values    map[string]fx.Values // Only nodes away from rest values
	Particles []fx.Particle
	Highlight layout.Highlight
	Resources skill.Resources

	Now     time.Time
	Elapsed float64 // Seconds since session start, drives periodic animation

	Status      string
	StatusError bool
}

// State returns the cached state of id, locked when unknown
func (f *Frame) State(id string) skill.State {
	if s, ok := f.States[id]; ok {
		return s
	}
	return skill.StateLocked
}

// NodeValues returns the transition values of id, rest values when none are in flight
func (f *Frame) NodeValues(id string) fx.Values {
	if v, ok := f.Values[id]; ok {
		return v
	}
	return fx.Rest
}

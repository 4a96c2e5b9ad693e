package interact

import (
	"time"

	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/layout"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/vmath"
)

// Scene is the read-only world the controller interacts with
type Scene interface {
	// Layout returns current node placements
	Layout() *layout.Layout
	// State classifies a node against the latest snapshot
	State(id string) skill.State
	// Reasons lists why a node cannot be unlocked right now, eligibility first then shortfall
	Reasons(id string) []string
}

// Hooks are outbound notifications to the host
type Hooks interface {
	// AttemptUnlock is fire-and-forget, success is only observed through later snapshots
	AttemptUnlock(id string)
	OnSelect(id string)
	OnDenied(id string, reasons []string)
	OnHover(id string)
}

// Effects is the particle and transition sink, satisfied by *fx.Engine
type Effects interface {
	Burst(kind fx.Kind, pos vmath.Vec2, count, palette int)
	SetTarget(id string, v fx.Values)
	Pulse(id string, peak float64, settle fx.Values)
}

// Clock supplies the current time for debounce scheduling
type Clock interface {
	Now() time.Time
}

// NopHooks ignores every notification
type NopHooks struct{}

func (NopHooks) AttemptUnlock(string)      {}
func (NopHooks) OnSelect(string)           {}
func (NopHooks) OnDenied(string, []string) {}
func (NopHooks) OnHover(string)            {}

// Package engine glues economy snapshots, the interaction controller, the effects engine
// and frontier expansion into one frame-driven session
package engine

import (
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/interact"
	"github.com/lixenwraith/constellation/layout"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/skill"
)

// Options configure a session
type Options struct {
	// Clock drives debounce and animation time, nil means the system clock
	Clock TimeProvider
	// Hooks receive outbound notifications, nil ignores them
	Hooks interact.Hooks
	// Frontier decides when selection grows the tree, zero Tiers disables expansion
	Frontier skill.FrontierPolicy
	// Ambient overrides the ambient particle count when >= 0
	Ambient int
}

// DefaultOptions uses the system clock and the standard frontier policy
func DefaultOptions() Options {
	return Options{
		Frontier: skill.FrontierPolicy{Buffer: parameter.FrontierBuffer, Tiers: parameter.FrontierTiers},
		Ambient:  parameter.AmbientTarget,
	}
}

// Session is the frame-goroutine owner of the constellation view
// Not safe for concurrent use; the host serializes input, snapshots and ticks
type Session struct {
	tree   *skill.Tree
	layout *layout.Layout

	ctrl   *interact.Controller
	fx     *fx.Engine
	policy skill.FrontierPolicy
	clock  TimeProvider
	hooks  interact.Hooks

	unlocked  skill.UnlockedSet
	resources skill.Resources
	states    map[string]skill.State
	values    map[string]fx.Values

	highlight    layout.Highlight
	highlightFor string
	highlightOK  bool

	status      string
	statusError bool
	statusUntil time.Time

	start      time.Time
	expansions int
	closed     bool
}

// NewSession lays out tree and wires a controller over it
func NewSession(tree *skill.Tree, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Hooks == nil {
		opts.Hooks = interact.NopHooks{}
	}

	s := &Session{
		tree:     tree,
		layout:   layout.Compute(tree),
		fx:       fx.NewEngine(tree.Seed()),
		policy:   opts.Frontier,
		clock:    opts.Clock,
		hooks:    opts.Hooks,
		unlocked: skill.NewUnlockedSet(),
		states:   make(map[string]skill.State, tree.Len()),
		start:    opts.Clock.Now(),
	}
	if opts.Ambient >= 0 {
		s.fx.SetAmbientTarget(opts.Ambient)
	}
	s.fx.SetBounds(s.layout.Bounds())
	s.ctrl = interact.NewController(s, sessionHooks{s}, s.fx, s.clock)
	s.recomputeStates()
	return s
}

// Tree returns the current tree, replaced on expansion
func (s *Session) Tree() *skill.Tree { return s.tree }

// Layout returns the current placements
func (s *Session) Layout() *layout.Layout { return s.layout }

// Controller exposes the interaction controller
func (s *Session) Controller() *interact.Controller { return s.ctrl }

// Effects exposes the particle and transition engine
func (s *Session) Effects() *fx.Engine { return s.fx }

// Expansions returns how many times the frontier grew the tree
func (s *Session) Expansions() int { return s.expansions }

// Closed reports whether Close was called
func (s *Session) Closed() bool { return s.closed }

// State classifies id against the latest snapshot
func (s *Session) State(id string) skill.State {
	if st, ok := s.states[id]; ok {
		return st
	}
	return skill.StateLocked
}

// Reasons lists why id cannot be unlocked, eligibility failures first then shortfall
func (s *Session) Reasons(id string) []string {
	n := s.tree.Node(id)
	if n == nil {
		return []string{"Unknown node"}
	}
	if s.unlocked.Has(id) {
		return nil
	}
	reasons := skill.Check(n, s.unlocked, s.tree).Messages()
	cost := n.CostAt(len(s.unlocked))
	if !skill.CanAfford(cost, s.resources) {
		reasons = append(reasons, skill.ShortfallMessage(skill.Shortfall(cost, s.resources)))
	}
	return reasons
}

// ApplySnapshot replaces the unlocked set and balance, returning ids unlocked since the last snapshot
// Newly unlocked nodes stream connection particles from each prerequisite and sparkle
func (s *Session) ApplySnapshot(unlocked skill.UnlockedSet, res skill.Resources) []string {
	if s.closed {
		return nil
	}
	var fresh []string
	for id := range unlocked {
		if !s.unlocked.Has(id) && s.tree.Node(id) != nil {
			fresh = append(fresh, id)
		}
	}
	s.unlocked = unlocked.Clone()
	s.resources = res
	s.recomputeStates()

	for _, id := range fresh {
		s.celebrate(id)
	}
	return fresh
}

func (s *Session) celebrate(id string) {
	n := s.tree.Node(id)
	to, ok := s.layout.Position(id)
	if !ok {
		return
	}
	palette := s.palette(id)
	for _, req := range n.Requires {
		if !s.unlocked.Has(req) {
			continue
		}
		if from, ok := s.layout.Position(req); ok {
			s.fx.Stream(from, to, palette)
		}
	}
	s.fx.Burst(fx.KindUnlock, to, parameter.UnlockBurstCount, palette)
}

// Tick advances controller, effects and the frontier check by dt
func (s *Session) Tick(dt time.Duration) {
	if s.closed {
		return
	}
	now := s.clock.Now()
	s.ctrl.Update(now)
	s.fx.Tick(dt.Seconds())
	if s.status != "" && !now.Before(s.statusUntil) {
		s.status, s.statusError = "", false
	}
	s.checkFrontier()
}

// checkFrontier grows the tree synchronously when the selection nears the outermost tier
func (s *Session) checkFrontier() {
	sel := s.ctrl.Selected()
	if sel == "" {
		return
	}
	n := s.tree.Node(sel)
	if n == nil || !s.policy.ShouldExpand(n.Tier, s.tree.MaxTier()) {
		return
	}

	next, err := skill.Expand(s.tree, s.tree.Seed(), s.policy.Tiers)
	if err != nil {
		log.Printf("frontier expansion failed: %v", err)
		return
	}
	if next == s.tree {
		return
	}
	before := s.tree.MaxTier()
	s.tree = next
	s.layout = layout.Compute(next)
	s.fx.SetBounds(s.layout.Bounds())
	s.highlightOK = false
	s.expansions++
	s.recomputeStates()
	log.Printf("frontier expanded: tiers 0-%d -> 0-%d, %d nodes", before, next.MaxTier(), next.Len())
}

func (s *Session) recomputeStates() {
	clear(s.states)
	for _, n := range s.tree.Nodes() {
		s.states[n.ID] = skill.Classify(n, s.unlocked, s.tree, s.resources)
	}
}

// Notify shows a status message for the denied message timeout
func (s *Session) Notify(msg string, isError bool) {
	s.status = msg
	s.statusError = isError
	s.statusUntil = s.clock.Now().Add(parameter.DeniedMessageTimeout)
}

// Resize maps a terminal size in cells to the scene viewport, the status row excluded
func (s *Session) Resize(cols, rows int) {
	sceneRows := max(rows-parameter.StatusBarHeight, 0)
	s.ctrl.SetViewport(float64(cols)*parameter.CellWidth, float64(sceneRows)*parameter.CellHeight)
}

// Frame builds the plain render data of the current state
func (s *Session) Frame() render.Frame {
	now := s.clock.Now()
	view := s.ctrl.View()
	s.values = s.fx.AwayFromRest(s.values)
	return render.Frame{
		Tree:        s.tree,
		Layout:      s.layout,
		View:        view,
		Unlocked:    s.unlocked,
		States:      s.states,
		Values:      s.values,
		Particles:   s.fx.Particles(),
		Highlight:   s.currentHighlight(view),
		Resources:   s.resources,
		Now:         now,
		Elapsed:     now.Sub(s.start).Seconds(),
		Status:      s.status,
		StatusError: s.statusError,
	}
}

// currentHighlight resolves the lineage of the hovered node, else the selection, cached per target
func (s *Session) currentHighlight(view interact.View) layout.Highlight {
	target := view.Hover
	if target == "" {
		target = view.Selected
	}
	if s.highlightOK && s.highlightFor == target {
		return s.highlight
	}
	s.highlightFor = target
	s.highlightOK = true
	if target == "" {
		s.highlight = layout.Highlight{}
	} else {
		s.highlight = layout.Resolve(target, s.tree)
	}
	return s.highlight
}

// FocusConstellation centers the i-th constellation, false when out of range
func (s *Session) FocusConstellation(i int) bool {
	cs := s.layout.Constellations()
	if i < 0 || i >= len(cs) {
		return false
	}
	s.ctrl.FocusPoint(cs[i].Center)
	return true
}

// FocusSelected centers the selection at focus zoom, false when nothing is selected
func (s *Session) FocusSelected() bool {
	sel := s.ctrl.Selected()
	if sel == "" {
		return false
	}
	return s.ctrl.FocusNode(sel)
}

// Focus pauses a pausable clock and drops hover while the terminal is unfocused
func (s *Session) Focus(focused bool) {
	pc, _ := s.clock.(*PausableClock)
	if focused {
		if pc != nil {
			pc.Resume()
		}
		return
	}
	s.ctrl.PointerLeave()
	if pc != nil {
		pc.Pause()
	}
}

// Close detaches the controller and drops effects, later calls are no-ops
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.ctrl.Dispose()
	s.fx.Reset()
}

func (s *Session) palette(id string) int {
	p, ok := s.layout.Placement(id)
	if !ok {
		return -1
	}
	return s.layout.Constellations()[p.Constellation].Palette
}

// sessionHooks forwards controller notifications to the host, surfacing denials in the status bar
type sessionHooks struct {
	s *Session
}

func (h sessionHooks) AttemptUnlock(id string) { h.s.hooks.AttemptUnlock(id) }

func (h sessionHooks) OnSelect(id string) { h.s.hooks.OnSelect(id) }

func (h sessionHooks) OnHover(id string) { h.s.hooks.OnHover(id) }

func (h sessionHooks) OnDenied(id string, reasons []string) {
	title := id
	if n := h.s.tree.Node(id); n != nil {
		title = n.Title
	}
	msg := title
	if len(reasons) > 0 {
		msg += ": " + strings.Join(reasons, "; ")
	}
	h.s.Notify(msg, true)
	h.s.hooks.OnDenied(id, reasons)
}

var _ interact.Scene = (*Session)(nil)

package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
)

type recordingHooks struct {
	attempts []string
	denied   []string
	hovers   []string
}

func (h *recordingHooks) AttemptUnlock(id string)        { h.attempts = append(h.attempts, id) }
func (h *recordingHooks) OnSelect(string)                {}
func (h *recordingHooks) OnDenied(id string, _ []string) { h.denied = append(h.denied, id) }
func (h *recordingHooks) OnHover(id string)              { h.hovers = append(h.hovers, id) }

type sessionFixture struct {
	s     *Session
	clock *MockTimeProvider
	hooks *recordingHooks
	tree  *skill.Tree
}

func newFixture(t *testing.T, tiers int) *sessionFixture {
	t.Helper()
	p := skill.DefaultParams()
	p.Tiers = tiers
	tree, err := skill.Generate(424242, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	clock := NewMockTimeProvider(time.Unix(5000, 0))
	hooks := &recordingHooks{}
	opts := DefaultOptions()
	opts.Clock = clock
	opts.Hooks = hooks
	opts.Ambient = 0
	s := NewSession(tree, opts)
	s.Resize(100, 41)
	return &sessionFixture{s: s, clock: clock, hooks: hooks, tree: tree}
}

func rich() skill.Resources {
	return skill.Resources{Coin: 1e6, Mana: 1e6, Favor: 1e6}
}

// clickCenter focuses id then clicks the viewport center
func (f *sessionFixture) clickCenter(t *testing.T, id string) {
	t.Helper()
	if !f.s.Controller().FocusNode(id) {
		t.Fatalf("FocusNode(%s) failed", id)
	}
	c := f.s.Controller().Viewport().Center()
	f.s.Controller().PointerDown(c.X, c.Y)
	f.s.Controller().PointerUp(c.X, c.Y)
}

func TestResizeExcludesStatusRow(t *testing.T) {
	f := newFixture(t, 3)
	vp := f.s.Controller().Viewport()
	if vp.W != 100*parameter.CellWidth || vp.H != 40*parameter.CellHeight {
		t.Errorf("Expected 800x640 viewport, got %vx%v", vp.W, vp.H)
	}
}

func TestApplySnapshotClassifies(t *testing.T) {
	f := newFixture(t, 3)
	root := f.tree.TierNodes(0)[0]
	if st := f.s.State(root.ID); st != skill.StateUnaffordable {
		t.Errorf("Expected root unaffordable without resources, got %s", st)
	}

	f.s.ApplySnapshot(skill.NewUnlockedSet(), rich())
	if st := f.s.State(root.ID); st != skill.StateAvailable {
		t.Errorf("Expected root available, got %s", st)
	}
	if st := f.s.State(f.tree.TierNodes(1)[0].ID); st != skill.StateLocked {
		t.Errorf("Expected tier 1 locked, got %s", st)
	}
	if st := f.s.State("missing"); st != skill.StateLocked {
		t.Errorf("Expected unknown id locked, got %s", st)
	}
}

func TestApplySnapshotCelebratesNewUnlocks(t *testing.T) {
	f := newFixture(t, 3)
	child := f.tree.TierNodes(1)[0]
	unlocked := skill.NewUnlockedSet(child.Requires...)
	f.s.ApplySnapshot(unlocked, rich())
	f.s.Effects().Pool().Clear()

	unlocked[child.ID] = struct{}{}
	fresh := f.s.ApplySnapshot(unlocked, rich())
	if len(fresh) != 1 || fresh[0] != child.ID {
		t.Fatalf("Expected [%s] newly unlocked, got %v", child.ID, fresh)
	}
	pool := f.s.Effects().Pool()
	if got := pool.Count(fx.KindConnection); got != parameter.ConnectionCount*len(child.Requires) {
		t.Errorf("Expected %d connection particles, got %d", parameter.ConnectionCount*len(child.Requires), got)
	}
	if pool.Count(fx.KindUnlock) != parameter.UnlockBurstCount {
		t.Errorf("Expected unlock burst of %d, got %d", parameter.UnlockBurstCount, pool.Count(fx.KindUnlock))
	}
	if f.s.State(child.ID) != skill.StateUnlocked {
		t.Errorf("Expected child unlocked, got %s", f.s.State(child.ID))
	}

	if again := f.s.ApplySnapshot(unlocked, rich()); len(again) != 0 {
		t.Errorf("Expected no fresh ids on repeated snapshot, got %v", again)
	}
}

func TestApplySnapshotCopiesInput(t *testing.T) {
	f := newFixture(t, 3)
	root := f.tree.TierNodes(0)[0]
	unlocked := skill.NewUnlockedSet()
	f.s.ApplySnapshot(unlocked, rich())
	unlocked[root.ID] = struct{}{}
	if f.s.State(root.ID) == skill.StateUnlocked {
		t.Error("Expected host mutation to stay invisible until next snapshot")
	}
}

func TestReasonsOrder(t *testing.T) {
	f := newFixture(t, 3)
	child := f.tree.TierNodes(1)[0]
	reasons := f.s.Reasons(child.ID)
	if len(reasons) < 2 {
		t.Fatalf("Expected prerequisite and shortfall reasons, got %v", reasons)
	}
	if !strings.HasPrefix(reasons[0], "Requires ") {
		t.Errorf("Expected eligibility reason first, got %q", reasons[0])
	}
	if last := reasons[len(reasons)-1]; !strings.HasPrefix(last, "Need ") {
		t.Errorf("Expected shortfall last, got %q", last)
	}
	if r := f.s.Reasons("missing"); len(r) != 1 {
		t.Errorf("Expected unknown node reason, got %v", r)
	}
}

func TestClickAvailableRequestsUnlock(t *testing.T) {
	f := newFixture(t, 3)
	f.s.ApplySnapshot(skill.NewUnlockedSet(), rich())
	root := f.tree.TierNodes(0)[2]
	f.clickCenter(t, root.ID)
	if len(f.hooks.attempts) != 1 || f.hooks.attempts[0] != root.ID {
		t.Errorf("Expected one attempt for %s, got %v", root.ID, f.hooks.attempts)
	}
	if f.s.State(root.ID) == skill.StateUnlocked {
		t.Error("Expected state unchanged until the economy confirms")
	}
}

func TestDeniedClickShowsStatus(t *testing.T) {
	f := newFixture(t, 3)
	child := f.tree.TierNodes(1)[0]
	f.clickCenter(t, child.ID)

	if len(f.hooks.denied) != 1 {
		t.Fatalf("Expected denial forwarded, got %v", f.hooks.denied)
	}
	fr := f.s.Frame()
	if !fr.StatusError || !strings.HasPrefix(fr.Status, child.Title) {
		t.Errorf("Expected error status naming %q, got %q", child.Title, fr.Status)
	}

	f.clock.Advance(parameter.DeniedMessageTimeout)
	f.s.Tick(16 * time.Millisecond)
	if fr = f.s.Frame(); fr.Status != "" {
		t.Errorf("Expected status cleared after timeout, got %q", fr.Status)
	}
}

func TestFrontierExpansionOnDeepSelection(t *testing.T) {
	f := newFixture(t, 6)

	f.s.Controller().FocusNode(f.tree.TierNodes(0)[0].ID)
	f.s.Tick(f.clock.Step(16 * time.Millisecond))
	if f.s.Tree().MaxTier() != 5 {
		t.Fatalf("Expected no expansion for shallow selection, got max tier %d", f.s.Tree().MaxTier())
	}

	f.s.Controller().FocusNode(f.tree.TierNodes(4)[0].ID)
	f.s.Tick(f.clock.Step(16 * time.Millisecond))
	if got := f.s.Tree().MaxTier(); got != 5+parameter.FrontierTiers {
		t.Fatalf("Expected max tier %d, got %d", 5+parameter.FrontierTiers, got)
	}
	if f.s.Layout().Len() != f.s.Tree().Len() {
		t.Errorf("Expected every node placed, got %d of %d", f.s.Layout().Len(), f.s.Tree().Len())
	}
	if _, ok := f.s.Frame().States[skill.NodeID(7, 0)]; !ok {
		t.Error("Expected states for appended tiers")
	}

	f.s.Tick(f.clock.Step(16 * time.Millisecond))
	if f.s.Expansions() != 1 {
		t.Errorf("Expected a single expansion, got %d", f.s.Expansions())
	}
}

func TestFrameHighlightPrefersHover(t *testing.T) {
	f := newFixture(t, 3)
	a := f.tree.TierNodes(1)[0]
	b := f.tree.TierNodes(2)[0]
	f.s.Controller().FocusNode(a.ID)
	if h := f.s.Frame().Highlight; h.Target != a.ID {
		t.Errorf("Expected selection highlight %s, got %q", a.ID, h.Target)
	}

	pos, _ := f.s.Layout().Position(b.ID)
	sp := f.s.Controller().Camera().ToScreen(pos, f.s.Controller().Viewport())
	f.s.Controller().PointerMove(sp.X, sp.Y)
	if h := f.s.Frame().Highlight; h.Target != b.ID {
		t.Errorf("Expected hover highlight %s, got %q", b.ID, h.Target)
	}
	if len(f.hooks.hovers) == 0 {
		t.Error("Expected hover forwarded")
	}
}

func TestFrameElapsedAndValues(t *testing.T) {
	f := newFixture(t, 3)
	id := f.tree.TierNodes(0)[0].ID
	f.s.Controller().FocusNode(id)
	f.clock.Advance(1500 * time.Millisecond)
	f.s.Tick(50 * time.Millisecond)

	fr := f.s.Frame()
	if fr.Elapsed != 1.5 {
		t.Errorf("Expected elapsed 1.5s, got %v", fr.Elapsed)
	}
	if _, ok := fr.Values[id]; !ok {
		t.Error("Expected selected node away from rest")
	}
}

func TestFocusConstellation(t *testing.T) {
	f := newFixture(t, 3)
	cs := f.s.Layout().Constellations()
	if !f.s.FocusConstellation(1) {
		t.Fatal("Expected focus to succeed")
	}
	sp := f.s.Controller().Camera().ToScreen(cs[1].Center, f.s.Controller().Viewport())
	if sp.Dist(f.s.Controller().Viewport().Center()) > 1e-9 {
		t.Errorf("Expected constellation centered, got %v", sp)
	}
	if f.s.FocusConstellation(len(cs)) || f.s.FocusConstellation(-1) {
		t.Error("Expected out of range index to fail")
	}
	if f.s.FocusSelected() {
		t.Error("Expected FocusSelected without selection to fail")
	}
}

func TestFocusLossPausesClock(t *testing.T) {
	p := skill.DefaultParams()
	p.Tiers = 2
	tree, _ := skill.Generate(9, p)
	mock := NewMockTimeProvider(time.Unix(100, 0))
	clock := NewPausableClock(mock)
	opts := DefaultOptions()
	opts.Clock = clock
	s := NewSession(tree, opts)

	s.Focus(false)
	if !clock.IsPaused() {
		t.Fatal("Expected clock paused on focus loss")
	}
	frozen := s.Frame().Now
	mock.Advance(time.Second)
	if got := s.Frame().Now; !got.Equal(frozen) {
		t.Errorf("Expected frozen time %v, got %v", frozen, got)
	}
	s.Focus(true)
	if clock.IsPaused() {
		t.Error("Expected clock resumed")
	}
}

func TestCloseStopsSession(t *testing.T) {
	f := newFixture(t, 3)
	f.s.Close()
	f.s.Close()
	if !f.s.Closed() || !f.s.Controller().Disposed() {
		t.Fatal("Expected session and controller closed")
	}
	unlocked := skill.NewUnlockedSet(f.tree.TierNodes(0)[0].ID)
	if fresh := f.s.ApplySnapshot(unlocked, rich()); fresh != nil {
		t.Errorf("Expected snapshot ignored after close, got %v", fresh)
	}
	f.s.Tick(time.Second)
}

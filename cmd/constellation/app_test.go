package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/constellation/audio"
	"github.com/lixenwraith/constellation/config"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/terminal"
)

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(100, 41)
	t.Cleanup(term.Fini)

	cfg := config.Default()
	cfg.Seed = 99
	cfg.Tree.Tiers = 4
	cfg.Display.Ambient = 0
	cfg.Economy.StartCoin, cfg.Economy.StartMana, cfg.Economy.StartFavor = 1e6, 1e6, 1e6

	a, err := newApp(cfg, term, audio.NewSoundManager(nil))
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	t.Cleanup(a.close)
	return a, sim
}

// clickNode focuses id at the viewport center and clicks the cell under it
func clickNode(a *app, id string) {
	ctrl := a.session.Controller()
	ctrl.FocusNode(id)
	pos, _ := a.session.Layout().Position(id)
	sp := ctrl.Camera().ToScreen(pos, ctrl.Viewport())
	cx, cy := int(sp.X/parameter.CellWidth), int(sp.Y/parameter.CellHeight)
	for _, action := range []terminal.MouseAction{terminal.MouseActionPress, terminal.MouseActionRelease} {
		a.handleEvent(terminal.Event{
			Type: terminal.EventMouse, MouseX: cx, MouseY: cy,
			MouseBtn: terminal.MouseBtnLeft, MouseAction: action,
		})
	}
}

func TestAppUnlockRoundTrip(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.session.Tree().TierNodes(0)[0]

	if st := a.session.State(root.ID); st != skill.StateAvailable {
		t.Fatalf("Expected root available with a rich ledger, got %s", st)
	}

	clickNode(a, root.ID)
	if a.session.State(root.ID) == skill.StateUnlocked {
		t.Fatal("Expected unlock to wait for the next frame")
	}

	a.frame(parameter.FrameUpdateInterval)
	if st := a.session.State(root.ID); st != skill.StateUnlocked {
		t.Errorf("Expected root unlocked after settle, got %s", st)
	}
	if order := a.ledger.Order(); len(order) != 1 || order[0] != root.ID {
		t.Errorf("Expected ledger order [%s], got %v", root.ID, order)
	}
	if f := a.session.Frame(); !strings.Contains(f.Status, root.Title) {
		t.Errorf("Expected unlock status naming %q, got %q", root.Title, f.Status)
	}
}

func TestAppQuitAndHostIntents(t *testing.T) {
	a, _ := newTestApp(t)
	before := a.ledger.Snapshot().Resources

	if a.handleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: '$'}) {
		t.Fatal("Expected grant to keep running")
	}
	after := a.ledger.Snapshot().Resources
	if after.Coin != before.Coin+parameter.GrantCoin {
		t.Errorf("Expected coin %v, got %v", before.Coin+parameter.GrantCoin, after.Coin)
	}

	a.handleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'm'})
	if !a.sound.Muted() {
		t.Error("Expected m to mute")
	}

	if !a.handleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}) {
		t.Error("Expected q to quit")
	}
}

func TestAppResizeAndRender(t *testing.T) {
	a, sim := newTestApp(t)

	a.handleEvent(terminal.Event{Type: terminal.EventResize, Width: 60, Height: 21})
	if a.width != 60 || a.height != 21 {
		t.Errorf("Expected 60x21, got %dx%d", a.width, a.height)
	}
	if vp := a.session.Controller().Viewport(); vp.H != 20*parameter.CellHeight {
		t.Errorf("Expected scene height of 20 rows, got %v", vp.H)
	}

	sim.SetSize(60, 21)
	a.frame(parameter.FrameUpdateInterval)
	contents, w, h := sim.GetContents()
	if w != 60 || h != 21 {
		t.Fatalf("Expected 60x21 screen, got %dx%d", w, h)
	}
	var drawn int
	for _, c := range contents {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("Expected the frame to draw visible cells")
	}
}

func TestAppPausedFrameSkipsEconomy(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(terminal.Event{Type: terminal.EventFocus, Focused: false})
	if !a.clock.IsPaused() {
		t.Fatal("Expected focus loss to pause the clock")
	}

	before := a.ledger.Snapshot().Resources
	a.frame(time.Second)
	if after := a.ledger.Snapshot().Resources; after != before {
		t.Errorf("Expected no income while paused, got %+v -> %+v", before, after)
	}

	a.handleEvent(terminal.Event{Type: terminal.EventFocus, Focused: true})
	a.frame(time.Second)
	if after := a.ledger.Snapshot().Resources; after.Coin <= before.Coin {
		t.Errorf("Expected income after resume, got %v", after.Coin)
	}
}

func TestLoadKeyTableMissingFile(t *testing.T) {
	if _, err := loadKeyTable("does-not-exist.toml"); err == nil {
		t.Error("Expected error for missing keymap")
	}
	kt, err := loadKeyTable("")
	if err != nil || kt == nil {
		t.Errorf("Expected default table, got %v %v", kt, err)
	}
}

func TestAppRecordsMetrics(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.session.Tree().TierNodes(0)[1]

	clickNode(a, root.ID)
	a.frame(20 * time.Millisecond)
	a.handleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'f'})
	a.frame(20 * time.Millisecond)

	if got := a.m.frames.Load(); got != 2 {
		t.Errorf("Expected 2 frames, got %d", got)
	}
	if got := a.m.unlocks.Load(); got != 1 {
		t.Errorf("Expected 1 unlock, got %d", got)
	}
	if got := a.m.fps.Get(); got < 49 || got > 51 {
		t.Errorf("Expected ~50 fps from 20ms frames, got %v", got)
	}
	if got := a.m.nodes.Load(); got != int64(a.session.Tree().Len()) {
		t.Errorf("Expected node count %d, got %d", a.session.Tree().Len(), got)
	}
	if got := a.m.lastIntent.Load(); got != "fit_view" {
		t.Errorf("Expected last intent fit_view, got %q", got)
	}
	if !strings.Contains(a.metrics.String(), "unlock.ok=1") {
		t.Errorf("Expected summary to report the unlock, got %s", a.metrics)
	}
}

package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSim(t *testing.T, w, h int) (tcell.SimulationScreen, Terminal) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)
	return sim, term
}

// pollType skips resize and focus notifications the simulation may queue
func pollType(t *testing.T, term Terminal, typ EventType) Event {
	t.Helper()
	for i := 0; i < 16; i++ {
		if ev := term.PollEvent(); ev.Type == typ {
			return ev
		}
	}
	t.Fatalf("Expected event type %d", typ)
	return Event{}
}

func TestFlushWritesCells(t *testing.T) {
	sim, term := newSim(t, 4, 2)

	cells := make([]Cell, 8)
	cells[0] = Cell{Rune: 'A', Fg: RGB{255, 0, 0}, Bg: RGB{0, 0, 30}}
	cells[5] = Cell{Rune: '*', Fg: RGB{10, 200, 10}, Attrs: AttrBold}
	term.Flush(cells, 4, 2)

	contents, w, h := sim.GetContents()
	if w != 4 || h != 2 {
		t.Fatalf("Expected 4x2 screen, got %dx%d", w, h)
	}
	if got := contents[0].Runes; len(got) == 0 || got[0] != 'A' {
		t.Errorf("Expected 'A' at (0,0), got %v", got)
	}
	if got := contents[5].Runes; len(got) == 0 || got[0] != '*' {
		t.Errorf("Expected '*' at (1,1), got %v", got)
	}
	if got := contents[1].Runes; len(got) == 0 || got[0] != ' ' {
		t.Errorf("Expected blank for zero rune, got %v", got)
	}

	fg, bg, attr := contents[0].Style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 30) {
		t.Errorf("Expected RGB style, got fg=%v bg=%v", fg, bg)
	}
	_, _, attr = contents[5].Style.Decompose()
	if attr&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
}

func TestMouseTransitions(t *testing.T) {
	sim, term := newSim(t, 20, 10)

	steps := []struct {
		buttons tcell.ButtonMask
		x, y    int
		action  MouseAction
		button  MouseButton
	}{
		{tcell.ButtonNone, 3, 3, MouseActionMove, MouseBtnNone},
		{tcell.Button1, 3, 3, MouseActionPress, MouseBtnLeft},
		{tcell.Button1, 5, 4, MouseActionDrag, MouseBtnLeft},
		{tcell.ButtonNone, 5, 4, MouseActionRelease, MouseBtnLeft},
		{tcell.WheelUp, 6, 6, MouseActionPress, MouseBtnWheelUp},
		{tcell.ButtonNone, 7, 7, MouseActionMove, MouseBtnNone},
	}
	for i, s := range steps {
		sim.InjectMouse(s.x, s.y, s.buttons, tcell.ModNone)
		ev := pollType(t, term, EventMouse)
		if ev.MouseAction != s.action || ev.MouseBtn != s.button {
			t.Errorf("Step %d: expected %s %s, got %s %s", i, s.button, s.action, ev.MouseBtn, ev.MouseAction)
		}
		if ev.MouseX != s.x || ev.MouseY != s.y {
			t.Errorf("Step %d: expected (%d,%d), got (%d,%d)", i, s.x, s.y, ev.MouseX, ev.MouseY)
		}
	}
}

func TestKeyTranslation(t *testing.T) {
	sim, term := newSim(t, 10, 5)

	sim.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	if ev := pollType(t, term, EventKey); ev.Key != KeyRune || ev.Rune != 'f' {
		t.Errorf("Expected rune key 'f', got %+v", ev)
	}

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	if ev := pollType(t, term, EventKey); ev.Key != KeyUp {
		t.Errorf("Expected KeyUp, got %+v", ev)
	}

	term.Interrupt()
	pollType(t, term, EventInterrupt)
}

func TestFiniIdempotent(t *testing.T) {
	_, term := newSim(t, 4, 4)
	term.Fini()
	term.Fini()
}

func TestColorConversions(t *testing.T) {
	c := FromHex("#ff8000")
	if c != (RGB{255, 128, 0}) {
		t.Errorf("Expected {255 128 0}, got %v", c)
	}
	if FromHex("nope") != RGBBlack {
		t.Error("Expected black on malformed hex")
	}
	if back := FromColorful(c.Colorful()); back != c {
		t.Errorf("Expected lossless conversion, got %v", back)
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, want := range []string{"\x1b[?1003l", "\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected reset output to contain %q", want)
		}
	}
}

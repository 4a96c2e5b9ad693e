package input

import (
	"github.com/lixenwraith/constellation/interact"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/terminal"
)

// Target is what parsed input drives, satisfied by *engine.Session
type Target interface {
	Controller() *interact.Controller
	FocusSelected() bool
	FocusConstellation(i int) bool
	Resize(cols, rows int)
	Focus(focused bool)
}

// Machine parses terminal events into intents and applies view intents to a Target
// Runs on the frame goroutine
type Machine struct {
	table *KeyTable
	state InputState
	count int
	rows  int // Terminal rows, the status bar occupies the last
}

// NewMachine creates a parser over table, nil means DefaultKeyTable
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// State returns the parser state
func (m *Machine) State() InputState { return m.state }

// SetRows records the terminal height for status bar hit exclusion
func (m *Machine) SetRows(rows int) { m.rows = rows }

// Handle processes one event against t and returns the resulting intent
// Host intents (quit, mute, grant) are returned without side effects
func (m *Machine) Handle(ev terminal.Event, t Target) Intent {
	switch ev.Type {
	case terminal.EventKey:
		in := m.ParseKey(ev)
		if !in.Host() {
			m.apply(in, t)
		}
		return in
	case terminal.EventMouse:
		m.pointer(ev, t.Controller())
		return Intent{Type: IntentPointer, Count: 1}
	case terminal.EventResize:
		m.rows = ev.Height
		t.Resize(ev.Width, ev.Height)
		return Intent{Type: IntentResize, Count: 1}
	case terminal.EventFocus:
		t.Focus(ev.Focused)
	}
	return Intent{}
}

// ParseKey advances the key state machine, IntentNone while a sequence is incomplete
func (m *Machine) ParseKey(ev terminal.Event) Intent {
	if ev.Type != terminal.EventKey {
		return Intent{}
	}

	if m.state == StatePrefixG {
		m.reset()
		if ev.Key == terminal.KeyRune && ev.Rune >= '1' && ev.Rune <= '9' {
			return Intent{Type: IntentJumpSector, Count: 1, Index: int(ev.Rune - '1')}
		}
		return Intent{}
	}

	if ev.Key == terminal.KeyRune && isCountDigit(ev.Rune, m.count) {
		m.count = min(m.count*10+int(ev.Rune-'0'), parameter.MaxCount)
		m.state = StateCount
		return Intent{}
	}

	entry, ok := m.lookup(ev)
	if !ok {
		m.reset()
		return Intent{}
	}

	count := max(m.count, 1)
	m.reset()
	switch entry.Behavior {
	case BehaviorPrefix:
		m.state = StatePrefixG
		return Intent{}
	case BehaviorAction:
		return Intent{Type: entry.Intent, Count: count}
	case BehaviorSystem:
		return Intent{Type: entry.Intent, Count: 1}
	}
	return Intent{}
}

func (m *Machine) lookup(ev terminal.Event) (KeyEntry, bool) {
	if ev.Key == terminal.KeyRune {
		e, ok := m.table.Runes[ev.Rune]
		return e, ok
	}
	e, ok := m.table.SpecialKeys[ev.Key]
	return e, ok
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.count = 0
}

// isCountDigit reports whether r extends the count, 0 only continues one
func isCountDigit(r rune, count int) bool {
	if r >= '1' && r <= '9' {
		return true
	}
	return r == '0' && count > 0
}

// apply dispatches a view intent
func (m *Machine) apply(in Intent, t Target) {
	ctrl := t.Controller()
	n := max(in.Count, 1)
	switch in.Type {
	case IntentZoomIn:
		for i := 0; i < n; i++ {
			ctrl.ZoomIn()
		}
	case IntentZoomOut:
		for i := 0; i < n; i++ {
			ctrl.ZoomOut()
		}
	case IntentResetView:
		ctrl.Reset()
	case IntentFitView:
		ctrl.FitToView()
	case IntentPanLeft:
		ctrl.Pan(float64(n)*parameter.KeyPanStepX, 0)
	case IntentPanRight:
		ctrl.Pan(-float64(n)*parameter.KeyPanStepX, 0)
	case IntentPanUp:
		ctrl.Pan(0, float64(n)*parameter.KeyPanStepY)
	case IntentPanDown:
		ctrl.Pan(0, -float64(n)*parameter.KeyPanStepY)
	case IntentFocus:
		t.FocusSelected()
	case IntentDeselect:
		ctrl.ClearSelection()
	case IntentJumpSector:
		t.FocusConstellation(in.Index)
	}
}

// pointer maps a cell-space mouse event to screen units at the cell center
func (m *Machine) pointer(ev terminal.Event, ctrl *interact.Controller) {
	if m.rows > 0 && ev.MouseY >= m.rows-parameter.StatusBarHeight {
		ctrl.PointerLeave()
		return
	}
	x := (float64(ev.MouseX) + 0.5) * parameter.CellWidth
	y := (float64(ev.MouseY) + 0.5) * parameter.CellHeight

	switch ev.MouseBtn {
	case terminal.MouseBtnWheelUp:
		ctrl.Wheel(x, y, parameter.WheelNotches)
		return
	case terminal.MouseBtnWheelDown:
		ctrl.Wheel(x, y, -parameter.WheelNotches)
		return
	case terminal.MouseBtnRight:
		if ev.MouseAction == terminal.MouseActionPress {
			ctrl.ClearSelection()
		}
		return
	case terminal.MouseBtnMiddle:
		return
	}

	switch ev.MouseAction {
	case terminal.MouseActionPress:
		ctrl.PointerDown(x, y)
	case terminal.MouseActionRelease:
		ctrl.PointerUp(x, y)
	case terminal.MouseActionMove, terminal.MouseActionDrag:
		ctrl.PointerMove(x, y)
	}
}

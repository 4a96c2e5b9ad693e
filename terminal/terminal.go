package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// EventType classifies input events
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventFocus
	EventInterrupt
	EventClosed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction

	Focused bool // For EventFocus
}

// Terminal provides cell-level terminal access
type Terminal interface {
	// Init enters the alternate screen with mouse reporting
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event, EventClosed after Fini
	PollEvent() Event

	// Interrupt wakes a blocked PollEvent with EventInterrupt
	Interrupt()
}

// tcellTerminal implements Terminal over a tcell.Screen
type tcellTerminal struct {
	screen tcell.Screen
	mouse  mouseTracker

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on the controlling tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellTerminal{screen: s}, nil
}

// NewWithScreen wraps an existing screen, used with tcell.NewSimulationScreen in tests
func NewWithScreen(s tcell.Screen) Terminal {
	return &tcellTerminal{screen: s}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.DisableMouse()
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, c.Style())
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) Sync() {
	t.screen.Sync()
}

func (t *tcellTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.translate(ev); ok {
			return out
		}
	}
}

func (t *tcellTerminal) Interrupt() {
	t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// translate maps a tcell event, false for event kinds the application ignores
func (t *tcellTerminal) translate(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		out := Event{Type: EventKey, Modifiers: toModifier(e.Modifiers())}
		if e.Key() == tcell.KeyRune {
			out.Key = KeyRune
			out.Rune = e.Rune()
			return out, true
		}
		k, ok := tcellKeys[e.Key()]
		if !ok {
			return Event{}, false
		}
		out.Key = k
		return out, true
	case *tcell.EventMouse:
		return t.mouse.translate(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}, true
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}, true
	}
	return Event{}, false
}

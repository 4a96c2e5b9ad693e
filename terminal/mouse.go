package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// mouseTracker turns tcell's button-state reports into press/release/drag transitions
type mouseTracker struct {
	held MouseButton
}

func (m *mouseTracker) translate(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	out := Event{Type: EventMouse, MouseX: x, MouseY: y, Modifiers: toModifier(ev.Modifiers())}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelUp, MouseActionPress
		return out
	case buttons&tcell.WheelDown != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelDown, MouseActionPress
		return out
	}

	var pressed MouseButton
	switch {
	case buttons&tcell.Button1 != 0:
		pressed = MouseBtnLeft
	case buttons&tcell.Button3 != 0:
		pressed = MouseBtnMiddle
	case buttons&tcell.Button2 != 0:
		pressed = MouseBtnRight
	}

	switch {
	case pressed != MouseBtnNone && m.held == MouseBtnNone:
		out.MouseBtn, out.MouseAction = pressed, MouseActionPress
	case pressed != MouseBtnNone:
		out.MouseBtn, out.MouseAction = m.held, MouseActionDrag
	case m.held != MouseBtnNone:
		out.MouseBtn, out.MouseAction = m.held, MouseActionRelease
	default:
		out.MouseAction = MouseActionMove
	}
	if pressed != MouseBtnNone && m.held == MouseBtnNone {
		m.held = pressed
	} else if pressed == MouseBtnNone {
		m.held = MouseBtnNone
	}
	return out
}

package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the host
	IntentQuit       // q, Ctrl+Q, Ctrl+C
	IntentToggleMute // m
	IntentGrant      // $ demo economy grant
	IntentResize     // Terminal resize event

	// Camera commands
	IntentZoomIn     // +, =
	IntentZoomOut    // -
	IntentResetView  // 0
	IntentFitView    // f
	IntentPanLeft    // h, Left
	IntentPanRight   // l, Right
	IntentPanUp      // k, Up
	IntentPanDown    // j, Down
	IntentFocus      // Enter, focus selection
	IntentDeselect   // Esc
	IntentJumpSector // g + digit, focus constellation

	// Mouse
	IntentPointer // Any pointer event forwarded to the controller
)

// String returns the action name of an intent
func (t IntentType) String() string {
	for name, entry := range actionRegistry {
		if entry.Intent == t && entry.Behavior != BehaviorNone {
			return name
		}
	}
	if t == IntentResize {
		return "resize"
	}
	if t == IntentPointer {
		return "pointer"
	}
	return "none"
}

// Intent is one parsed action
type Intent struct {
	Type IntentType
	// Count is the numeric repeat prefix, 1 when none was typed
	Count int
	// Index is the zero-based constellation of IntentJumpSector
	Index int
}

// Host reports whether the host must act on the intent
func (i Intent) Host() bool {
	switch i.Type {
	case IntentQuit, IntentToggleMute, IntentGrant:
		return true
	}
	return false
}

package parameter

// Keyboard camera control in screen units
const (
	KeyPanStepX = 6 * CellWidth
	KeyPanStepY = 3 * CellHeight

	// MaxCount caps the numeric repeat prefix
	MaxCount = 99
)

// Mouse
const (
	// WheelNotches is the zoom notch count of one wheel event
	WheelNotches = 1
)

// Demo economy grant bound to the cheat key
const (
	GrantCoin  = 500.0
	GrantMana  = 100.0
	GrantFavor = 50.0
)

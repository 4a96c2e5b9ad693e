package input

// InputState tracks the key parser state machine
type InputState uint8

const (
	StateIdle    InputState = iota // Default state, awaiting initial key
	StateCount                     // Accumulating numeric prefix (1-9 start, 0 continues)
	StatePrefixG                   // After 'g' prefix, awaiting constellation digit
)

func (s InputState) String() string {
	switch s {
	case StateCount:
		return "count"
	case StatePrefixG:
		return "prefix_g"
	default:
		return "idle"
	}
}

package input

import "github.com/lixenwraith/constellation/terminal"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorAction             // Emits Intent, repeated by the count prefix
	BehaviorSystem             // Emits Intent, count ignored
	BehaviorPrefix             // g prefix, awaits a digit
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Intent   IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[terminal.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]KeyEntry{
			terminal.KeyCtrlQ:    {BehaviorSystem, IntentQuit},
			terminal.KeyCtrlC:    {BehaviorSystem, IntentQuit},
			terminal.KeyEscape:   {BehaviorSystem, IntentDeselect},
			terminal.KeyEnter:    {BehaviorSystem, IntentFocus},
			terminal.KeyHome:     {BehaviorSystem, IntentResetView},
			terminal.KeyUp:       {BehaviorAction, IntentPanUp},
			terminal.KeyDown:     {BehaviorAction, IntentPanDown},
			terminal.KeyLeft:     {BehaviorAction, IntentPanLeft},
			terminal.KeyRight:    {BehaviorAction, IntentPanRight},
			terminal.KeyPageUp:   {BehaviorAction, IntentZoomIn},
			terminal.KeyPageDown: {BehaviorAction, IntentZoomOut},
		},

		Runes: map[rune]KeyEntry{
			'q': {BehaviorSystem, IntentQuit},
			'm': {BehaviorSystem, IntentToggleMute},
			'$': {BehaviorSystem, IntentGrant},

			'+': {BehaviorAction, IntentZoomIn},
			'=': {BehaviorAction, IntentZoomIn},
			'-': {BehaviorAction, IntentZoomOut},
			'0': {BehaviorSystem, IntentResetView},
			'f': {BehaviorSystem, IntentFitView},

			'h': {BehaviorAction, IntentPanLeft},
			'j': {BehaviorAction, IntentPanDown},
			'k': {BehaviorAction, IntentPanUp},
			'l': {BehaviorAction, IntentPanRight},

			'g': {BehaviorPrefix, IntentJumpSector},
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneMap(kt.SpecialKeys),
		Runes:       cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]KeyEntry) map[K]KeyEntry {
	c := make(map[K]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

package input

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":        {BehaviorSystem, IntentQuit},
		"toggle_mute": {BehaviorSystem, IntentToggleMute},
		"grant":       {BehaviorSystem, IntentGrant},

		// Camera
		"zoom_in":    {BehaviorAction, IntentZoomIn},
		"zoom_out":   {BehaviorAction, IntentZoomOut},
		"reset_view": {BehaviorSystem, IntentResetView},
		"fit_view":   {BehaviorSystem, IntentFitView},
		"pan_left":   {BehaviorAction, IntentPanLeft},
		"pan_right":  {BehaviorAction, IntentPanRight},
		"pan_up":     {BehaviorAction, IntentPanUp},
		"pan_down":   {BehaviorAction, IntentPanDown},

		// Selection
		"focus_selected":  {BehaviorSystem, IntentFocus},
		"clear_selection": {BehaviorSystem, IntentDeselect},
		"jump_sector":     {BehaviorPrefix, IntentJumpSector},
	}
}

// ActionEntry resolves an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

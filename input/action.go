package input

// Action is a logical control bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, reported through Poll
	ActionUp
	ActionLeft
	ActionRight

	// One-shot commands
	ActionToggleMode
	ActionPause
	ActionRestart
	ActionMute
	ActionMetrics
	ActionQuit
)

var actionNames = map[string]Action{
	"none":        ActionNone,
	"up":          ActionUp,
	"left":        ActionLeft,
	"right":       ActionRight,
	"toggle_mode": ActionToggleMode,
	"pause":       ActionPause,
	"restart":     ActionRestart,
	"mute":        ActionMute,
	"metrics":     ActionMetrics,
	"quit":        ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// Held reports whether the action is a continuous control rather than a command
func (a Action) Held() bool {
	return a == ActionUp || a == ActionLeft || a == ActionRight
}

package core

// Action is a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotateRight
	ActionRotateLeft
	ActionSoftDrop
	ActionPause
	ActionRestart
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionRotateRight: "rotate_right",
	ActionRotateLeft:  "rotate_left",
	ActionSoftDrop:    "soft_drop",
	ActionPause:       "pause",
	ActionRestart:     "restart",
	ActionQuit:        "quit",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

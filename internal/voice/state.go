package voice

import "fmt"

// State is the lifecycle state of a capture controller.
type State int

// Controller states.
const (
	StateIdle State = iota
	StateCapturing
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateCapturing
	case StateCapturing:
		return to == StateIdle || to == StateError
	case StateError:
		return to == StateIdle
	default:
		return false
	}
}

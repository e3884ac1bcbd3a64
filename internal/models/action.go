package models

// Action is a user intent fed back into a study session.
type Action int

const (
	ActionNone Action = iota
	ActionReveal
	ActionSkip
	ActionMarkMastered
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReveal:
		return "reveal"
	case ActionSkip:
		return "skip"
	case ActionMarkMastered:
		return "mark_mastered"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseAction is the inverse of Action.String. Unknown names map to ActionNone.
func ParseAction(s string) Action {
	for a := ActionReveal; a <= ActionQuit; a++ {
		if a.String() == s {
			return a
		}
	}
	return ActionNone
}

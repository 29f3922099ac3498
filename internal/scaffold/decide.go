package scaffold

// Action is what the generator does with one artifact.
type Action int

const (
	// ActionCreate writes an artifact that does not exist yet.
	ActionCreate Action = iota
	// ActionSkip leaves an existing artifact alone.
	ActionSkip
	// ActionOverwrite rewrites an existing artifact because force was requested.
	ActionOverwrite
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionSkip:
		return "skip"
	case ActionOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Decide maps the state of a target path and the force flag to an action.
func Decide(exists, force bool) Action {
	switch {
	case !exists:
		return ActionCreate
	case force:
		return ActionOverwrite
	default:
		return ActionSkip
	}
}

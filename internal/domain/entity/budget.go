package entity

const (
	// MaxTotalDenials caps lifetime denials across all launches.
	MaxTotalDenials = 9

	// MaxInitialLaunchPrompts caps how many launches may open with a prompt.
	MaxInitialLaunchPrompts = 3

	// MaxSessionPrompts caps prompts within a single dark screen session.
	MaxSessionPrompts = 3
)

// PromptBudget tracks how many times the user may still be asked for the
// elevated brightness permission.
// TotalDenials and InitialLaunchPrompts are persisted; SessionPrompts lives in
// memory and is reset whenever a dark screen is created.
type PromptBudget struct {
	TotalDenials         int
	InitialLaunchPrompts int
	SessionPrompts       int
}

// CanPrompt reports whether another prompt may be shown.
// launchPrompt is true for the first prompt after a dark screen is created.
func (b PromptBudget) CanPrompt(launchPrompt bool) bool {
	if b.SessionPrompts >= MaxSessionPrompts || b.TotalDenials >= MaxTotalDenials {
		return false
	}
	if launchPrompt && b.InitialLaunchPrompts >= MaxInitialLaunchPrompts {
		return false
	}
	return true
}

// DenialsRemaining returns how many more denials are tolerated.
func (b PromptBudget) DenialsRemaining() int {
	return max(MaxTotalDenials-b.TotalDenials, 0)
}

// ClampCounter bounds a persisted counter to [0, limit].
func ClampCounter(value, limit int) int {
	return min(max(value, 0), limit)
}

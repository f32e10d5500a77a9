package entity

// PermissionDecision is the outcome of a permission check.
type PermissionDecision string

const (
	// DecisionGranted means elevated brightness control is available.
	DecisionGranted PermissionDecision = "granted"

	// DecisionPrompt means the user should be asked.
	DecisionPrompt PermissionDecision = "prompt"

	// DecisionExhausted means the prompt budget is spent; use window-only dimming.
	DecisionExhausted PermissionDecision = "exhausted"
)

// GovernorState is the permission governor's state machine position.
type GovernorState string

const (
	GovernorUnchecked        GovernorState = "UNCHECKED"
	GovernorChecking         GovernorState = "CHECKING"
	GovernorGranted          GovernorState = "GRANTED"
	GovernorPrompting        GovernorState = "PROMPTING"
	GovernorAwaitingExternal GovernorState = "AWAITING_EXTERNAL_RESULT"
	GovernorExhausted        GovernorState = "EXHAUSTED"
)

// PromptAction is what the user did with a permission prompt.
type PromptAction string

const (
	// PromptActionGrant means the user chose to open the settings surface.
	PromptActionGrant PromptAction = "grant"

	// PromptActionDismissed means the prompt went away without an action.
	PromptActionDismissed PromptAction = "dismissed"
)

// PromptRequest describes the prompt to show.
type PromptRequest struct {
	Reprompt bool
	Message  string
	Action   string
}

const (
	PromptMessageInitial  = "For optimal dark mode, please allow system brightness control. This allows full screen dimming."
	PromptMessageReprompt = "Permission denied. Please grant system brightness control for full dimming."
	PromptActionLabel     = "GRANT ACCESS"
)

// NewPromptRequest builds the prompt text for an initial prompt or a re-prompt.
func NewPromptRequest(reprompt bool) PromptRequest {
	msg := PromptMessageInitial
	if reprompt {
		msg = PromptMessageReprompt
	}
	return PromptRequest{
		Reprompt: reprompt,
		Message:  msg,
		Action:   PromptActionLabel,
	}
}

// User-facing notices.
const (
	NoticeLimitedControl = "Using limited brightness control."
	NoticeGranted        = "Permission granted. Using full brightness control."
	NoticeDenied         = "Permission denied. Limited brightness control available."
)

package entity

// DimmingState is the strategy currently applied by the brightness controller.
type DimmingState string

const (
	// DimmingNone means no dimming is applied.
	DimmingNone DimmingState = "NONE"

	// DimmingSystemAndWindow means device-wide minimum plus window override.
	DimmingSystemAndWindow DimmingState = "SYSTEM_AND_WINDOW"

	// DimmingWindowOnly means only the window override is applied.
	DimmingWindowOnly DimmingState = "WINDOW_ONLY"
)

// UsesSystemControl reports whether device-wide brightness is being driven.
func (s DimmingState) UsesSystemControl() bool {
	return s == DimmingSystemAndWindow
}

// Label returns the short text shown in diagnostics.
func (s DimmingState) Label() string {
	switch s {
	case DimmingSystemAndWindow:
		return "system + window"
	case DimmingWindowOnly:
		return "window only"
	default:
		return "none"
	}
}

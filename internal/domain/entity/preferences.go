package entity

// PreferenceKey names a persisted counter or toggle.
type PreferenceKey string

const (
	KeyTotalPermissionDenials   PreferenceKey = "total_permission_denials"
	KeyInitialLaunchPromptCount PreferenceKey = "initial_launch_prompt_count"
	KeyPreventTouch             PreferenceKey = "preventTouch"
	KeyMediaEnabled             PreferenceKey = "mediaEnabled"
)

const (
	DefaultPreventTouch = true
	DefaultMediaEnabled = false
)

// Preferences holds the user toggles.
type Preferences struct {
	PreventTouch bool
	MediaEnabled bool
}

// DefaultPreferences returns the toggles of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		PreventTouch: DefaultPreventTouch,
		MediaEnabled: DefaultMediaEnabled,
	}
}

// IsCounterKey reports whether key names one of the persisted counters.
func IsCounterKey(key PreferenceKey) bool {
	return key == KeyTotalPermissionDenials || key == KeyInitialLaunchPromptCount
}

// IsToggleKey reports whether key names one of the persisted toggles.
func IsToggleKey(key PreferenceKey) bool {
	return key == KeyPreventTouch || key == KeyMediaEnabled
}

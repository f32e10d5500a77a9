// Package entity defines the dark screen domain types.
package entity

// BrightnessMode is the device-wide brightness mode.
type BrightnessMode string

const (
	// BrightnessModeManual means the device level is fixed by the user.
	BrightnessModeManual BrightnessMode = "manual"

	// BrightnessModeAutomatic means the device adjusts its level from ambient light.
	BrightnessModeAutomatic BrightnessMode = "automatic"
)

const (
	// SystemBrightnessMin is the lowest device-wide level written while dimming.
	SystemBrightnessMin = 1

	// SystemLevelUnset marks a snapshot whose system level was never captured.
	SystemLevelUnset = -1
)

const (
	// WindowFollowSystem tells the window surface to follow the device level.
	WindowFollowSystem float32 = -1

	// WindowBrightnessMin is the darkest window override.
	WindowBrightnessMin float32 = 0

	// WindowBrightnessReadable keeps the permission prompt legible.
	WindowBrightnessReadable float32 = 0.10
)

// BrightnessSnapshot records display state captured before the first mutation
// of a dimming session so that Restore can put it back.
// The window part and the system part are captured independently.
type BrightnessSnapshot struct {
	SystemLevel    int
	SystemMode     BrightnessMode // empty when unset
	SystemCaptured bool

	WindowLevel    float32
	WindowCaptured bool
}

// NewBrightnessSnapshot returns an empty snapshot.
func NewBrightnessSnapshot() BrightnessSnapshot {
	return BrightnessSnapshot{
		SystemLevel: SystemLevelUnset,
		WindowLevel: WindowFollowSystem,
	}
}

// IsEmpty reports whether nothing has been captured yet.
func (s BrightnessSnapshot) IsEmpty() bool {
	return !s.SystemCaptured && !s.WindowCaptured
}

// HasValidWindowLevel reports whether the captured window level is an explicit
// override in [0, 1].
func (s BrightnessSnapshot) HasValidWindowLevel() bool {
	return s.WindowCaptured && IsValidWindowLevel(s.WindowLevel)
}

// HasSystemLevel reports whether a device-wide level was captured.
func (s BrightnessSnapshot) HasSystemLevel() bool {
	return s.SystemCaptured && s.SystemLevel != SystemLevelUnset
}

// HasSystemMode reports whether a device-wide mode was captured.
func (s BrightnessSnapshot) HasSystemMode() bool {
	return s.SystemCaptured && s.SystemMode != ""
}

// IsValidWindowLevel reports whether level is an explicit override.
func IsValidWindowLevel(level float32) bool {
	return level >= 0 && level <= 1
}

// BrightnessReadings is a point-in-time view of the display used for diagnostics.
// SystemLevel is SystemLevelUnset and SystemMode is empty when the device-wide
// setting could not be read.
type BrightnessReadings struct {
	SystemLevel int
	SystemMode  BrightnessMode
	WindowLevel float32
}

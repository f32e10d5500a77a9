package port

import (
	"context"

	"github.com/bnema/darkscreen/internal/domain/entity"
)

// WindowBrightness is the window-local brightness override of the surface
// hosting the dark screen. It needs no permission.
type WindowBrightness interface {
	// WindowLevel returns the current override in [0, 1], or
	// entity.WindowFollowSystem when the window follows the device level.
	WindowLevel(ctx context.Context) (float32, error)

	// SetWindowLevel applies an override. entity.WindowFollowSystem clears it.
	SetWindowLevel(ctx context.Context, level float32) error
}

// SystemBrightness is the device-wide brightness setting.
// Writes fail with brightness.permission_denied when the write capability is
// missing and with brightness.setting_not_found when the device lacks the setting.
type SystemBrightness interface {
	Level(ctx context.Context) (int, error)
	SetLevel(ctx context.Context, level int) error
	Mode(ctx context.Context) (entity.BrightnessMode, error)
	SetMode(ctx context.Context, mode entity.BrightnessMode) error
}

// WriteCapability reports whether device-wide brightness may be written.
// The answer can change at any time; callers must not cache it.
type WriteCapability interface {
	CanWrite(ctx context.Context) bool
}

// Package simulator provides an in-memory display for machines without a
// writable backlight and for exercising the dimming flow end to end.
package simulator

import (
	"context"
	"sync"

	"github.com/bnema/darkscreen/internal/domain/entity"
	apperrors "github.com/bnema/darkscreen/internal/errors"
)

// DefaultMaxLevel mirrors the common 0-255 backlight range.
const DefaultMaxLevel = 255

// Device simulates a display with a device-wide level and mode, a
// window-local override and a revocable write permission.
type Device struct {
	mu sync.Mutex

	level       int
	maxLevel    int
	mode        entity.BrightnessMode
	window      float32
	canWrite    bool
	hasSettings bool

	levelWrites int
	modeWrites  int
	failLevel   error
}

// Option configures a Device.
type Option func(*Device)

// WithLevel sets the initial device-wide level.
func WithLevel(level int) Option {
	return func(d *Device) { d.level = level }
}

// WithMode sets the initial device-wide mode.
func WithMode(mode entity.BrightnessMode) Option {
	return func(d *Device) { d.mode = mode }
}

// WithWindowLevel sets the initial window override.
func WithWindowLevel(level float32) Option {
	return func(d *Device) { d.window = level }
}

// WithPermission sets whether the write capability is held initially.
func WithPermission(granted bool) Option {
	return func(d *Device) { d.canWrite = granted }
}

// WithoutBrightnessSettings simulates a device that lacks the brightness settings.
func WithoutBrightnessSettings() Option {
	return func(d *Device) { d.hasSettings = false }
}

// NewDevice creates a device at half brightness, manual mode, following the
// system level and without write permission.
func NewDevice(opts ...Option) *Device {
	d := &Device{
		level:       DefaultMaxLevel / 2,
		maxLevel:    DefaultMaxLevel,
		mode:        entity.BrightnessModeManual,
		window:      entity.WindowFollowSystem,
		hasSettings: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetPermission grants or revokes the write capability.
func (d *Device) SetPermission(granted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canWrite = granted
}

// FailLevelWrites makes every SetLevel fail with err until called with nil.
func (d *Device) FailLevelWrites(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failLevel = err
}

// CanWrite implements port.WriteCapability.
func (d *Device) CanWrite(_ context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.canWrite
}

// Level implements port.SystemBrightness.
func (d *Device) Level(_ context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasSettings {
		return 0, settingNotFound("brightness level")
	}
	return d.level, nil
}

// SetLevel implements port.SystemBrightness.
func (d *Device) SetLevel(_ context.Context, level int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkWrite("brightness level"); err != nil {
		return err
	}
	if d.failLevel != nil {
		return apperrors.Wrap(apperrors.CodeBrightnessWriteFailed, "write brightness level", d.failLevel)
	}
	d.level = min(max(level, 0), d.maxLevel)
	d.levelWrites++
	return nil
}

// Mode implements port.SystemBrightness.
func (d *Device) Mode(_ context.Context) (entity.BrightnessMode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasSettings {
		return "", settingNotFound("brightness mode")
	}
	return d.mode, nil
}

// SetMode implements port.SystemBrightness.
func (d *Device) SetMode(_ context.Context, mode entity.BrightnessMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkWrite("brightness mode"); err != nil {
		return err
	}
	d.mode = mode
	d.modeWrites++
	return nil
}

// WindowLevel implements port.WindowBrightness.
func (d *Device) WindowLevel(_ context.Context) (float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.window, nil
}

// SetWindowLevel implements port.WindowBrightness.
func (d *Device) SetWindowLevel(_ context.Context, level float32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !entity.IsValidWindowLevel(level) {
		level = entity.WindowFollowSystem
	}
	d.window = level
	return nil
}

// Writes returns how many level and mode writes succeeded.
func (d *Device) Writes() (levelWrites, modeWrites int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.levelWrites, d.modeWrites
}

// MaxLevel returns the top of the level range.
func (d *Device) MaxLevel() int {
	return d.maxLevel
}

func (d *Device) checkWrite(what string) error {
	if !d.hasSettings {
		return settingNotFound(what)
	}
	if !d.canWrite {
		return apperrors.New(apperrors.CodeBrightnessPermissionDenied, "no permission to write "+what)
	}
	return nil
}

func settingNotFound(what string) error {
	return apperrors.New(apperrors.CodeBrightnessSettingNotFound, what+" not available")
}

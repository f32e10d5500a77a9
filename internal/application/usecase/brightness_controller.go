package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/domain/entity"
	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/bnema/darkscreen/internal/logging"
)

// BrightnessController applies one of two mutually exclusive dimming
// strategies and undoes them.
//
// The device-wide strategy drives the system level to entity.SystemBrightnessMin
// and forces the window override to zero. The window-only strategy touches
// nothing but the window override. Every value changed is captured first so
// Restore can put it back; the window part and the system part of the snapshot
// are each captured at most once per dimming session.
//
// The state names the strategy last applied. Whether the device-wide values
// still differ from the snapshot is tracked apart from it: a strategy change
// or a failed restore leaves the system half of the snapshot in place until a
// restore actually writes it back.
type BrightnessController struct {
	window port.WindowBrightness
	system port.SystemBrightness

	state    entity.DimmingState
	snapshot entity.BrightnessSnapshot

	// systemDirty is set once a device-wide write happened and cleared only by
	// a successful restore of the captured level and mode.
	systemDirty bool
}

// NewBrightnessController creates a controller with nothing applied.
func NewBrightnessController(window port.WindowBrightness, system port.SystemBrightness) *BrightnessController {
	return &BrightnessController{
		window:   window,
		system:   system,
		state:    entity.DimmingNone,
		snapshot: entity.NewBrightnessSnapshot(),
	}
}

// State returns the strategy currently applied.
func (c *BrightnessController) State() entity.DimmingState {
	return c.state
}

// Snapshot returns a copy of the captured pre-dimming state.
func (c *BrightnessController) Snapshot() entity.BrightnessSnapshot {
	return c.snapshot
}

// SystemRestorePending reports whether device-wide values were changed and
// not yet put back.
func (c *BrightnessController) SystemRestorePending() bool {
	return c.systemDirty
}

// ApplyCombinedDimming writes the device-wide minimum and then forces the
// window override to zero. Any device-wide failure is recovered by falling
// back to window-only dimming; the returned state tells which one won.
func (c *BrightnessController) ApplyCombinedDimming(ctx context.Context) entity.DimmingState {
	log := logging.FromContext(ctx)

	c.captureWindow(ctx)

	if err := c.applySystemMinimum(ctx); err != nil {
		log.Warn().
			Err(err).
			Str("code", apperrors.GetCode(err)).
			Msg("device-wide dimming failed, falling back to window-only")
		return c.ApplyWindowOnlyDimming(ctx)
	}

	c.systemDirty = true
	c.setWindow(ctx, entity.WindowBrightnessMin)
	c.transition(ctx, entity.DimmingSystemAndWindow)
	return c.state
}

// ApplyWindowOnlyDimming forces the window override to zero. It needs no
// permission and is idempotent. A device-wide minimum written earlier in the
// session is still put back by Restore.
func (c *BrightnessController) ApplyWindowOnlyDimming(ctx context.Context) entity.DimmingState {
	c.captureWindow(ctx)
	c.setWindow(ctx, entity.WindowBrightnessMin)
	c.transition(ctx, entity.DimmingWindowOnly)
	return c.state
}

// ApplyReadableMinimum raises the window override just enough to keep a
// permission prompt legible. The dimming state is left unchanged.
func (c *BrightnessController) ApplyReadableMinimum(ctx context.Context) {
	c.captureWindow(ctx)
	c.setWindow(ctx, entity.WindowBrightnessReadable)
}

// Restore puts back everything captured since the last restore: the window
// override first, then the device-wide mode and level when they were changed.
// Errors are logged and never returned. When the device-wide values cannot be
// written back, their captured originals are kept so the next dimming does not
// capture the dimmed level and the next Restore tries again.
func (c *BrightnessController) Restore(ctx context.Context) {
	log := logging.FromContext(ctx)

	if c.state == entity.DimmingNone && c.snapshot.IsEmpty() {
		log.Debug().Msg("nothing to restore")
		return
	}

	windowLevel := entity.WindowFollowSystem
	if c.snapshot.HasValidWindowLevel() {
		windowLevel = c.snapshot.WindowLevel
	}
	c.setWindow(ctx, windowLevel)

	if c.systemDirty && c.restoreSystem(ctx) {
		c.systemDirty = false
	}

	log.Debug().
		Int("system_level", c.snapshot.SystemLevel).
		Str("system_mode", string(c.snapshot.SystemMode)).
		Float32("window_level", windowLevel).
		Bool("system_pending", c.systemDirty).
		Msg("brightness restored")

	kept := c.snapshot
	c.snapshot = entity.NewBrightnessSnapshot()
	if c.systemDirty {
		c.snapshot.SystemLevel = kept.SystemLevel
		c.snapshot.SystemMode = kept.SystemMode
		c.snapshot.SystemCaptured = true
	}
	c.transition(ctx, entity.DimmingNone)
}

// restoreSystem writes the captured mode and level back and reports whether
// both writes succeeded.
func (c *BrightnessController) restoreSystem(ctx context.Context) bool {
	log := logging.FromContext(ctx)
	ok := true

	if c.snapshot.HasSystemMode() {
		if err := c.system.SetMode(ctx, c.snapshot.SystemMode); err != nil {
			log.Warn().Err(err).Str("code", apperrors.GetCode(err)).Msg("failed to restore brightness mode")
			ok = false
		}
	}
	if c.snapshot.HasSystemLevel() {
		if err := c.system.SetLevel(ctx, c.snapshot.SystemLevel); err != nil {
			log.Warn().Err(err).Str("code", apperrors.GetCode(err)).Msg("failed to restore brightness level")
			ok = false
		}
	}
	return ok
}

// Readings reads the live display values for diagnostics.
func (c *BrightnessController) Readings(ctx context.Context) entity.BrightnessReadings {
	r := entity.BrightnessReadings{
		SystemLevel: entity.SystemLevelUnset,
		WindowLevel: entity.WindowFollowSystem,
	}
	if level, err := c.system.Level(ctx); err == nil {
		r.SystemLevel = level
	}
	if mode, err := c.system.Mode(ctx); err == nil {
		r.SystemMode = mode
	}
	if level, err := c.window.WindowLevel(ctx); err == nil {
		r.WindowLevel = level
	}
	return r
}

// applySystemMinimum switches an automatic device to manual, then writes the
// minimum level. A mode switch that was applied before a failed level write is
// rolled back.
func (c *BrightnessController) applySystemMinimum(ctx context.Context) error {
	if err := c.captureSystem(ctx); err != nil {
		return err
	}

	mode, err := c.system.Mode(ctx)
	if err != nil {
		return fmt.Errorf("read brightness mode: %w", err)
	}

	switchedMode := false
	if mode == entity.BrightnessModeAutomatic {
		if err := c.system.SetMode(ctx, entity.BrightnessModeManual); err != nil {
			return fmt.Errorf("switch to manual brightness: %w", err)
		}
		switchedMode = true
	}

	if err := c.system.SetLevel(ctx, entity.SystemBrightnessMin); err != nil {
		if switchedMode {
			if rbErr := c.system.SetMode(ctx, mode); rbErr != nil {
				logging.FromContext(ctx).Warn().Err(rbErr).Msg("failed to roll back brightness mode")
				c.systemDirty = true
			}
		}
		return fmt.Errorf("write minimum brightness: %w", err)
	}
	return nil
}

func (c *BrightnessController) captureSystem(ctx context.Context) error {
	if c.snapshot.SystemCaptured {
		return nil
	}

	level, err := c.system.Level(ctx)
	if err != nil {
		return fmt.Errorf("read brightness level: %w", err)
	}
	mode, err := c.system.Mode(ctx)
	if err != nil {
		return fmt.Errorf("read brightness mode: %w", err)
	}

	c.snapshot.SystemLevel = level
	c.snapshot.SystemMode = mode
	c.snapshot.SystemCaptured = true

	logging.FromContext(ctx).Debug().
		Int("level", level).
		Str("mode", string(mode)).
		Msg("captured system brightness")
	return nil
}

func (c *BrightnessController) captureWindow(ctx context.Context) {
	if c.snapshot.WindowCaptured {
		return
	}

	level, err := c.window.WindowLevel(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read window brightness, will restore to follow-system")
		level = entity.WindowFollowSystem
	}

	c.snapshot.WindowLevel = level
	c.snapshot.WindowCaptured = true

	logging.FromContext(ctx).Debug().Float32("level", level).Msg("captured window brightness")
}

func (c *BrightnessController) setWindow(ctx context.Context, level float32) {
	if err := c.window.SetWindowLevel(ctx, level); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Float32("level", level).Msg("failed to set window brightness")
	}
}

func (c *BrightnessController) transition(ctx context.Context, next entity.DimmingState) {
	if c.state == next {
		return
	}
	logging.FromContext(ctx).Debug().
		Str("from", string(c.state)).
		Str("to", string(next)).
		Msg("dimming state transition")
	c.state = next
}

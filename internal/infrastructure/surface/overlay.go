// Package surface holds the window-local brightness of the terminal surface
// that hosts the dark screen. The override is applied by the renderer, which
// shades the whole surface, so it needs no permission.
package surface

import (
	"context"
	"sync"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/domain/entity"
)

var _ port.WindowBrightness = (*Overlay)(nil)

// Overlay is the window brightness override of the dark screen surface.
type Overlay struct {
	mu      sync.RWMutex
	level   float32
	changed func(level float32)
}

// NewOverlay returns an overlay that follows the system level.
func NewOverlay() *Overlay {
	return &Overlay{level: entity.WindowFollowSystem}
}

// OnChange registers fn to run after every SetWindowLevel. fn runs on the
// caller's goroutine with the lock released.
func (o *Overlay) OnChange(fn func(level float32)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changed = fn
}

// WindowLevel implements port.WindowBrightness.
func (o *Overlay) WindowLevel(_ context.Context) (float32, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.level, nil
}

// SetWindowLevel implements port.WindowBrightness. Values outside [0, 1]
// clear the override.
func (o *Overlay) SetWindowLevel(_ context.Context, level float32) error {
	if !entity.IsValidWindowLevel(level) {
		level = entity.WindowFollowSystem
	}

	o.mu.Lock()
	o.level = level
	fn := o.changed
	o.mu.Unlock()

	if fn != nil {
		fn(level)
	}
	return nil
}

// EffectiveBrightness returns the brightness the user perceives in [0, 1]:
// the window override when one is set, the device-wide fraction otherwise.
// A negative systemLevel or non-positive systemMax means the device level is
// unknown and full brightness is assumed.
func EffectiveBrightness(window float32, systemLevel, systemMax int) float64 {
	if entity.IsValidWindowLevel(window) {
		return float64(window)
	}
	if systemLevel < 0 || systemMax <= 0 {
		return 1
	}
	return min(float64(systemLevel)/float64(systemMax), 1)
}

// ShadeGray maps a brightness in [0, 1] to an 8-bit gray used to paint the
// surface. Zero brightness is pure black.
func ShadeGray(brightness float64) uint8 {
	brightness = min(max(brightness, 0), 1)
	return uint8(brightness * 255)
}

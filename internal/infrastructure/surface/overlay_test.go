package surface_test

import (
	"context"
	"testing"

	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/infrastructure/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay_SetAndClear(t *testing.T) {
	ctx := context.Background()
	o := surface.NewOverlay()

	level, err := o.WindowLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.WindowFollowSystem, level)

	var seen []float32
	o.OnChange(func(level float32) { seen = append(seen, level) })

	require.NoError(t, o.SetWindowLevel(ctx, entity.WindowBrightnessMin))
	require.NoError(t, o.SetWindowLevel(ctx, entity.WindowBrightnessReadable))
	require.NoError(t, o.SetWindowLevel(ctx, 7))

	level, _ = o.WindowLevel(ctx)
	assert.Equal(t, entity.WindowFollowSystem, level)
	assert.Equal(t, []float32{0, entity.WindowBrightnessReadable, entity.WindowFollowSystem}, seen)
}

func TestEffectiveBrightness(t *testing.T) {
	tests := []struct {
		name   string
		window float32
		level  int
		max    int
		want   float64
	}{
		{name: "window override wins", window: 0, level: 200, max: 255, want: 0},
		{name: "follows system", window: entity.WindowFollowSystem, level: 51, max: 255, want: 0.2},
		{name: "unknown system", window: entity.WindowFollowSystem, level: entity.SystemLevelUnset, max: 255, want: 1},
		{name: "no range", window: entity.WindowFollowSystem, level: 10, max: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, surface.EffectiveBrightness(tt.window, tt.level, tt.max), 0.0001)
		})
	}
}

func TestShadeGray(t *testing.T) {
	assert.Equal(t, uint8(0), surface.ShadeGray(0))
	assert.Equal(t, uint8(255), surface.ShadeGray(1))
	assert.Equal(t, uint8(0), surface.ShadeGray(-1))
	assert.Equal(t, uint8(255), surface.ShadeGray(2))
}

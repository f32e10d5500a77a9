package entity_test

import (
	"testing"

	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestNewBrightnessSnapshot_IsEmpty(t *testing.T) {
	snap := entity.NewBrightnessSnapshot()

	assert.True(t, snap.IsEmpty())
	assert.Equal(t, entity.SystemLevelUnset, snap.SystemLevel)
	assert.Equal(t, entity.WindowFollowSystem, snap.WindowLevel)
	assert.False(t, snap.HasValidWindowLevel())
	assert.False(t, snap.HasSystemLevel())
	assert.False(t, snap.HasSystemMode())
}

func TestBrightnessSnapshot_WindowCapture(t *testing.T) {
	tests := []struct {
		name     string
		level    float32
		expected bool
	}{
		{"follow system", entity.WindowFollowSystem, false},
		{"dark", 0, true},
		{"readable", entity.WindowBrightnessReadable, true},
		{"full", 1, true},
		{"out of range", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := entity.NewBrightnessSnapshot()
			snap.WindowLevel = tt.level
			snap.WindowCaptured = true

			assert.False(t, snap.IsEmpty())
			assert.Equal(t, tt.expected, snap.HasValidWindowLevel())
		})
	}
}

func TestBrightnessSnapshot_SystemCapture(t *testing.T) {
	snap := entity.NewBrightnessSnapshot()
	snap.SystemCaptured = true

	assert.False(t, snap.HasSystemLevel(), "captured flag alone is not a level")
	assert.False(t, snap.HasSystemMode())

	snap.SystemLevel = 120
	snap.SystemMode = entity.BrightnessModeAutomatic
	assert.True(t, snap.HasSystemLevel())
	assert.True(t, snap.HasSystemMode())
}

func TestDimmingState_UsesSystemControl(t *testing.T) {
	assert.True(t, entity.DimmingSystemAndWindow.UsesSystemControl())
	assert.False(t, entity.DimmingWindowOnly.UsesSystemControl())
	assert.False(t, entity.DimmingNone.UsesSystemControl())
	assert.Equal(t, "window only", entity.DimmingWindowOnly.Label())
}

func TestNewPromptRequest(t *testing.T) {
	initial := entity.NewPromptRequest(false)
	reprompt := entity.NewPromptRequest(true)

	assert.False(t, initial.Reprompt)
	assert.True(t, reprompt.Reprompt)
	assert.NotEqual(t, initial.Message, reprompt.Message)
	assert.Equal(t, entity.PromptActionLabel, reprompt.Action)
}

package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/bnema/darkscreen/internal/application/port/mocks"
	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/domain/entity"
	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/bnema/darkscreen/internal/infrastructure/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBrightnessController_CombinedRoundTripIsExact(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		mode   entity.BrightnessMode
		window float32
	}{
		{"manual with override", 180, entity.BrightnessModeManual, 0.6},
		{"automatic following system", 77, entity.BrightnessModeAutomatic, entity.WindowFollowSystem},
		{"already at minimum", entity.SystemBrightnessMin, entity.BrightnessModeManual, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			device := simulator.NewDevice(
				simulator.WithPermission(true),
				simulator.WithLevel(tt.level),
				simulator.WithMode(tt.mode),
				simulator.WithWindowLevel(tt.window),
			)
			ctrl := usecase.NewBrightnessController(device, device)

			state := ctrl.ApplyCombinedDimming(ctx)
			require.Equal(t, entity.DimmingSystemAndWindow, state)

			level, _ := device.Level(ctx)
			mode, _ := device.Mode(ctx)
			window, _ := device.WindowLevel(ctx)
			assert.Equal(t, entity.SystemBrightnessMin, level)
			assert.Equal(t, entity.BrightnessModeManual, mode)
			assert.Equal(t, entity.WindowBrightnessMin, window)

			ctrl.Restore(ctx)

			level, _ = device.Level(ctx)
			mode, _ = device.Mode(ctx)
			window, _ = device.WindowLevel(ctx)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.window, window)
			assert.Equal(t, entity.DimmingNone, ctrl.State())
			assert.True(t, ctrl.Snapshot().IsEmpty())
		})
	}
}

func TestBrightnessController_CombinedWithoutPermissionFallsBack(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithLevel(200))
	ctrl := usecase.NewBrightnessController(device, device)

	state := ctrl.ApplyCombinedDimming(ctx)

	assert.Equal(t, entity.DimmingWindowOnly, state)
	level, _ := device.Level(ctx)
	window, _ := device.WindowLevel(ctx)
	assert.Equal(t, 200, level, "system level must be untouched")
	assert.Equal(t, entity.WindowBrightnessMin, window)

	levelWrites, modeWrites := device.Writes()
	assert.Zero(t, levelWrites)
	assert.Zero(t, modeWrites)
}

func TestBrightnessController_CombinedWithoutSettingFallsBack(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithPermission(true), simulator.WithoutBrightnessSettings())
	ctrl := usecase.NewBrightnessController(device, device)

	assert.Equal(t, entity.DimmingWindowOnly, ctrl.ApplyCombinedDimming(ctx))
	assert.False(t, ctrl.Snapshot().SystemCaptured)
}

func TestBrightnessController_RollsBackModeWhenLevelWriteFails(t *testing.T) {
	ctx := testContext()
	window := portmocks.NewMockWindowBrightness(t)
	system := portmocks.NewMockSystemBrightness(t)
	ctrl := usecase.NewBrightnessController(window, system)

	window.EXPECT().WindowLevel(mock.Anything).Return(float32(0.4), nil).Once()
	system.EXPECT().Level(mock.Anything).Return(120, nil).Once()
	system.EXPECT().Mode(mock.Anything).Return(entity.BrightnessModeAutomatic, nil).Twice()
	system.EXPECT().SetMode(mock.Anything, entity.BrightnessModeManual).Return(nil).Once()
	system.EXPECT().SetLevel(mock.Anything, entity.SystemBrightnessMin).
		Return(apperrors.New(apperrors.CodeBrightnessPermissionDenied, "revoked")).Once()
	system.EXPECT().SetMode(mock.Anything, entity.BrightnessModeAutomatic).Return(nil).Once()
	window.EXPECT().SetWindowLevel(mock.Anything, entity.WindowBrightnessMin).Return(nil).Once()

	state := ctrl.ApplyCombinedDimming(ctx)

	assert.Equal(t, entity.DimmingWindowOnly, state)
}

func TestBrightnessController_ModeSwitchFailureFallsBack(t *testing.T) {
	ctx := testContext()
	window := portmocks.NewMockWindowBrightness(t)
	system := portmocks.NewMockSystemBrightness(t)
	ctrl := usecase.NewBrightnessController(window, system)

	window.EXPECT().WindowLevel(mock.Anything).Return(entity.WindowFollowSystem, nil).Once()
	system.EXPECT().Level(mock.Anything).Return(90, nil).Once()
	system.EXPECT().Mode(mock.Anything).Return(entity.BrightnessModeAutomatic, nil).Twice()
	system.EXPECT().SetMode(mock.Anything, entity.BrightnessModeManual).
		Return(apperrors.New(apperrors.CodeBrightnessSettingNotFound, "no mode")).Once()
	window.EXPECT().SetWindowLevel(mock.Anything, entity.WindowBrightnessMin).Return(nil).Once()

	assert.Equal(t, entity.DimmingWindowOnly, ctrl.ApplyCombinedDimming(ctx))
	system.AssertNotCalled(t, "SetLevel", mock.Anything, mock.Anything)
}

func TestBrightnessController_WindowOnlyIsIdempotent(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithWindowLevel(0.8))
	ctrl := usecase.NewBrightnessController(device, device)

	ctrl.ApplyWindowOnlyDimming(ctx)
	first := ctrl.Snapshot()
	ctrl.ApplyWindowOnlyDimming(ctx)

	assert.Equal(t, first, ctrl.Snapshot())
	assert.Equal(t, float32(0.8), ctrl.Snapshot().WindowLevel)
	assert.Equal(t, entity.DimmingWindowOnly, ctrl.State())

	ctrl.Restore(ctx)
	window, _ := device.WindowLevel(ctx)
	assert.Equal(t, float32(0.8), window)
}

func TestBrightnessController_WindowOnlyAfterCombinedStillRestoresSystem(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithPermission(true), simulator.WithLevel(210))
	ctrl := usecase.NewBrightnessController(device, device)

	ctrl.ApplyCombinedDimming(ctx)
	state := ctrl.ApplyWindowOnlyDimming(ctx)

	assert.Equal(t, entity.DimmingWindowOnly, state)
	assert.True(t, ctrl.SystemRestorePending())

	ctrl.Restore(ctx)

	level, _ := device.Level(ctx)
	assert.Equal(t, 210, level)
	assert.False(t, ctrl.SystemRestorePending())
}

func TestBrightnessController_CombinedAfterRevokeFallsBackToWindowOnly(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithPermission(true), simulator.WithLevel(130))
	ctrl := usecase.NewBrightnessController(device, device)

	require.Equal(t, entity.DimmingSystemAndWindow, ctrl.ApplyCombinedDimming(ctx))
	device.SetPermission(false)

	assert.Equal(t, entity.DimmingWindowOnly, ctrl.ApplyCombinedDimming(ctx))
	assert.True(t, ctrl.SystemRestorePending())
	assert.Equal(t, 130, ctrl.Snapshot().SystemLevel)
}

func TestBrightnessController_ReadableMinimumCapturesFirst(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithWindowLevel(0.5))
	ctrl := usecase.NewBrightnessController(device, device)

	ctrl.ApplyReadableMinimum(ctx)

	window, _ := device.WindowLevel(ctx)
	assert.Equal(t, entity.WindowBrightnessReadable, window)
	assert.Equal(t, float32(0.5), ctrl.Snapshot().WindowLevel)
	assert.Equal(t, entity.DimmingNone, ctrl.State(), "readable minimum does not change state")

	// Dimming after the readable minimum must not re-capture 0.10.
	ctrl.ApplyWindowOnlyDimming(ctx)
	assert.Equal(t, float32(0.5), ctrl.Snapshot().WindowLevel)
}

func TestBrightnessController_RestoreWithoutValidCaptureFollowsSystem(t *testing.T) {
	ctx := testContext()
	window := portmocks.NewMockWindowBrightness(t)
	system := portmocks.NewMockSystemBrightness(t)
	ctrl := usecase.NewBrightnessController(window, system)

	window.EXPECT().WindowLevel(mock.Anything).Return(float32(0), errors.New("no surface")).Once()
	window.EXPECT().SetWindowLevel(mock.Anything, entity.WindowBrightnessMin).Return(nil).Once()
	window.EXPECT().SetWindowLevel(mock.Anything, entity.WindowFollowSystem).Return(nil).Once()

	ctrl.ApplyWindowOnlyDimming(ctx)
	ctrl.Restore(ctx)

	assert.Equal(t, entity.DimmingNone, ctrl.State())
}

func TestBrightnessController_FailedRestoreKeepsSystemOriginal(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithPermission(true), simulator.WithLevel(150))
	ctrl := usecase.NewBrightnessController(device, device)

	ctrl.ApplyCombinedDimming(ctx)
	device.SetPermission(false)

	assert.NotPanics(t, func() { ctrl.Restore(ctx) })
	assert.Equal(t, entity.DimmingNone, ctrl.State())
	assert.True(t, ctrl.SystemRestorePending())
	snap := ctrl.Snapshot()
	assert.True(t, snap.SystemCaptured)
	assert.Equal(t, 150, snap.SystemLevel)
	assert.False(t, snap.WindowCaptured)

	// Dimming again must not capture the level left at the minimum.
	device.SetPermission(true)
	ctrl.ApplyCombinedDimming(ctx)
	assert.Equal(t, 150, ctrl.Snapshot().SystemLevel)

	ctrl.Restore(ctx)
	level, _ := device.Level(ctx)
	assert.Equal(t, 150, level)
	assert.False(t, ctrl.SystemRestorePending())
	assert.True(t, ctrl.Snapshot().IsEmpty())
}

func TestBrightnessController_RestoreRetriesPendingSystemWrite(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithPermission(true), simulator.WithLevel(90))
	ctrl := usecase.NewBrightnessController(device, device)

	ctrl.ApplyCombinedDimming(ctx)
	device.SetPermission(false)
	ctrl.Restore(ctx)
	require.True(t, ctrl.SystemRestorePending())

	device.SetPermission(true)
	ctrl.Restore(ctx)

	level, _ := device.Level(ctx)
	assert.Equal(t, 90, level)
	assert.False(t, ctrl.SystemRestorePending())
}

func TestBrightnessController_RestoreWithNothingAppliedIsNoop(t *testing.T) {
	ctx := testContext()
	window := portmocks.NewMockWindowBrightness(t)
	system := portmocks.NewMockSystemBrightness(t)
	ctrl := usecase.NewBrightnessController(window, system)

	ctrl.Restore(ctx)

	window.AssertNotCalled(t, "SetWindowLevel", mock.Anything, mock.Anything)
}

func TestBrightnessController_SnapshotCapturedOncePerSession(t *testing.T) {
	ctx := testContext()
	device := simulator.NewDevice(simulator.WithPermission(true), simulator.WithLevel(100))
	ctrl := usecase.NewBrightnessController(device, device)

	ctrl.ApplyCombinedDimming(ctx)
	ctrl.ApplyCombinedDimming(ctx)

	snap := ctrl.Snapshot()
	assert.Equal(t, 100, snap.SystemLevel, "second application must not capture the dimmed level")
	assert.Equal(t, entity.BrightnessModeManual, snap.SystemMode)
}

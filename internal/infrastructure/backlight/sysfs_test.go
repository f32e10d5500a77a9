package backlight_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/darkscreen/internal/domain/entity"
	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/bnema/darkscreen/internal/infrastructure/backlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogind struct {
	calls []uint32
	err   error
}

func (f *fakeLogind) SetBrightness(_ context.Context, subsystem, name string, value uint32) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, value)
	return nil
}

func writeDevice(t *testing.T, base, name string, maxLevel, level string) string {
	t.Helper()
	dir := filepath.Join(base, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(maxLevel+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brightness"), []byte(level+"\n"), 0o644))
	return dir
}

func readLevel(t *testing.T, dir string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "brightness"))
	require.NoError(t, err)
	return strings.TrimSpace(string(raw))
}

func TestOpen_PicksFirstDevice(t *testing.T) {
	base := t.TempDir()
	writeDevice(t, base, "intel_backlight", "1000", "500")
	writeDevice(t, base, "acpi_video0", "15", "7")

	bl, err := backlight.Open(context.Background(), base, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "acpi_video0", bl.Name())
	assert.Equal(t, 15, bl.MaxLevel())

	devices, err := backlight.Devices(base)
	require.NoError(t, err)
	assert.Equal(t, []string{"acpi_video0", "intel_backlight"}, devices)
}

func TestOpen_Errors(t *testing.T) {
	t.Run("no devices", func(t *testing.T) {
		_, err := backlight.Open(context.Background(), t.TempDir(), "", nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessSettingNotFound))
	})

	t.Run("missing base path", func(t *testing.T) {
		_, err := backlight.Open(context.Background(), filepath.Join(t.TempDir(), "nope"), "", nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessSettingNotFound))
	})

	t.Run("unknown device", func(t *testing.T) {
		base := t.TempDir()
		writeDevice(t, base, "intel_backlight", "1000", "500")
		_, err := backlight.Open(context.Background(), base, "amdgpu_bl0", nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessSettingNotFound))
	})

	t.Run("zero range", func(t *testing.T) {
		base := t.TempDir()
		writeDevice(t, base, "broken", "0", "0")
		_, err := backlight.Open(context.Background(), base, "broken", nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessSettingNotFound))
	})
}

func TestBacklight_LevelAndSetLevel(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	dir := writeDevice(t, base, "intel_backlight", "1000", "500")

	bl, err := backlight.Open(ctx, base, "intel_backlight", nil)
	require.NoError(t, err)
	assert.True(t, bl.CanWrite(ctx))

	level, err := bl.Level(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500, level)

	require.NoError(t, bl.SetLevel(ctx, entity.SystemBrightnessMin))
	assert.Equal(t, "1", readLevel(t, dir))

	require.NoError(t, bl.SetLevel(ctx, 5000))
	assert.Equal(t, "1000", readLevel(t, dir))
}

func TestBacklight_Mode(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	writeDevice(t, base, "intel_backlight", "1000", "500")

	bl, err := backlight.Open(ctx, base, "", nil)
	require.NoError(t, err)

	mode, err := bl.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.BrightnessModeManual, mode)

	assert.NoError(t, bl.SetMode(ctx, entity.BrightnessModeManual))
	err = bl.SetMode(ctx, entity.BrightnessModeAutomatic)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessSettingNotFound))
}

func TestBacklight_ReadOnlyFallsBackToLogind(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	ctx := context.Background()
	base := t.TempDir()
	dir := writeDevice(t, base, "intel_backlight", "1000", "500")
	require.NoError(t, os.Chmod(filepath.Join(dir, "brightness"), 0o444))

	t.Run("without logind", func(t *testing.T) {
		bl, err := backlight.Open(ctx, base, "", nil)
		require.NoError(t, err)
		assert.False(t, bl.CanWrite(ctx))

		err = bl.SetLevel(ctx, 1)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessPermissionDenied))
	})

	t.Run("with logind", func(t *testing.T) {
		logind := &fakeLogind{}
		bl, err := backlight.Open(ctx, base, "", logind)
		require.NoError(t, err)
		assert.True(t, bl.CanWrite(ctx))

		require.NoError(t, bl.SetLevel(ctx, 1))
		assert.Equal(t, []uint32{1}, logind.calls)
		assert.Equal(t, "500", readLevel(t, dir))
	})

	t.Run("logind failure", func(t *testing.T) {
		bl, err := backlight.Open(ctx, base, "", &fakeLogind{err: errors.New("bus closed")})
		require.NoError(t, err)

		err = bl.SetLevel(ctx, 1)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBrightnessWriteFailed))
	})
}

func TestBacklight_CanWriteFollowsFileMode(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	ctx := context.Background()
	base := t.TempDir()
	dir := writeDevice(t, base, "acpi_video0", "255", "100")
	brightness := filepath.Join(dir, "brightness")

	bl, err := backlight.Open(ctx, base, "", nil)
	require.NoError(t, err)
	assert.True(t, bl.CanWrite(ctx))

	require.NoError(t, os.Chmod(brightness, 0o444))
	assert.False(t, bl.CanWrite(ctx))

	require.NoError(t, os.Chmod(brightness, 0o644))
	assert.True(t, bl.CanWrite(ctx))
	require.NoError(t, bl.SetLevel(ctx, 42))
	assert.Equal(t, "42", readLevel(t, dir))
}

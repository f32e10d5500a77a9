// Package backlight drives the device-wide display brightness through
// /sys/class/backlight, falling back to logind when the brightness file is not
// writable by the current user.
package backlight

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/domain/entity"
	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/bnema/darkscreen/internal/logging"
)

// DefaultBasePath is the sysfs backlight class directory.
const DefaultBasePath = "/sys/class/backlight"

// SessionBrightness is the logind call used when sysfs is read-only.
type SessionBrightness interface {
	SetBrightness(ctx context.Context, subsystem, name string, value uint32) error
}

// Backlight is a sysfs backlight device. It implements port.SystemBrightness
// and port.WriteCapability.
//
// sysfs exposes no automatic brightness mode, so Mode always reports manual and
// switching to automatic fails with brightness.setting_not_found.
type Backlight struct {
	basePath string
	device   string
	maxLevel int
	logind   SessionBrightness
}

var (
	_ port.SystemBrightness = (*Backlight)(nil)
	_ port.WriteCapability  = (*Backlight)(nil)
)

// Open locates a backlight device under basePath. An empty device picks the
// first one in name order. logind may be nil.
func Open(ctx context.Context, basePath, device string, logind SessionBrightness) (*Backlight, error) {
	if basePath == "" {
		basePath = DefaultBasePath
	}

	if device == "" {
		devices, err := Devices(basePath)
		if err != nil {
			return nil, err
		}
		device = devices[0]
	}

	maxLevel, err := readInt(filepath.Join(basePath, device, "max_brightness"))
	if err != nil {
		return nil, classify(err, "read max_brightness of "+device)
	}
	if maxLevel <= 0 {
		return nil, apperrors.New(apperrors.CodeBrightnessSettingNotFound, "backlight "+device+" reports no brightness range")
	}

	logging.FromContext(ctx).Debug().
		Str("device", device).
		Int("max_brightness", maxLevel).
		Bool("logind", logind != nil).
		Msg("backlight device opened")

	return &Backlight{
		basePath: basePath,
		device:   device,
		maxLevel: maxLevel,
		logind:   logind,
	}, nil
}

// Devices lists backlight devices under basePath in name order.
func Devices(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, classify(err, "read backlight directory")
	}

	var devices []string
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(basePath, e.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		devices = append(devices, e.Name())
	}
	if len(devices) == 0 {
		return nil, apperrors.New(apperrors.CodeBrightnessSettingNotFound, "no backlight device under "+basePath)
	}

	sort.Strings(devices)
	return devices, nil
}

// Name returns the device name.
func (b *Backlight) Name() string {
	return b.device
}

// MaxLevel returns the device's max_brightness.
func (b *Backlight) MaxLevel() int {
	return b.maxLevel
}

// Path returns the brightness file path.
func (b *Backlight) Path() string {
	return filepath.Join(b.basePath, b.device, "brightness")
}

// Level implements port.SystemBrightness.
func (b *Backlight) Level(_ context.Context) (int, error) {
	level, err := readInt(b.Path())
	if err != nil {
		return 0, classify(err, "read brightness")
	}
	return level, nil
}

// SetLevel writes level, clamped to the device range. The file is written
// directly when possible and through logind otherwise.
func (b *Backlight) SetLevel(ctx context.Context, level int) error {
	level = min(max(level, 0), b.maxLevel)

	if writable(b.Path()) {
		if err := os.WriteFile(b.Path(), []byte(strconv.Itoa(level)), 0); err != nil {
			return classify(err, "write brightness")
		}
		return nil
	}

	if b.logind == nil {
		return apperrors.New(apperrors.CodeBrightnessPermissionDenied, b.Path()+" is not writable")
	}
	if err := b.logind.SetBrightness(ctx, "backlight", b.device, uint32(level)); err != nil {
		return classifyDBus(err)
	}
	return nil
}

// Mode implements port.SystemBrightness.
func (b *Backlight) Mode(_ context.Context) (entity.BrightnessMode, error) {
	return entity.BrightnessModeManual, nil
}

// SetMode accepts manual and rejects automatic.
func (b *Backlight) SetMode(_ context.Context, mode entity.BrightnessMode) error {
	if mode == entity.BrightnessModeManual {
		return nil
	}
	return apperrors.New(apperrors.CodeBrightnessSettingNotFound, "backlight has no automatic brightness mode")
}

// CanWrite implements port.WriteCapability.
func (b *Backlight) CanWrite(_ context.Context) bool {
	return writable(b.Path()) || b.logind != nil
}

func readInt(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

func classify(err error, what string) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return apperrors.Wrap(apperrors.CodeBrightnessPermissionDenied, what, err)
	case errors.Is(err, fs.ErrNotExist):
		return apperrors.Wrap(apperrors.CodeBrightnessSettingNotFound, what, err)
	default:
		return apperrors.Wrap(apperrors.CodeBrightnessWriteFailed, what, err)
	}
}

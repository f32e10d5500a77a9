package backlight

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/godbus/dbus/v5"
)

const (
	logindService       = "org.freedesktop.login1"
	logindSessionPath   = "/org/freedesktop/login1/session/auto"
	logindSetBrightness = "org.freedesktop.login1.Session.SetBrightness"
)

// LogindSession calls Session.SetBrightness on the caller's logind session.
// logind lets the active session user write backlight devices without extra
// file permissions.
type LogindSession struct {
	conn *dbus.Conn
}

// NewLogindSession connects to the system bus.
func NewLogindSession() (*LogindSession, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	return &LogindSession{conn: conn}, nil
}

// SetBrightness implements SessionBrightness.
func (l *LogindSession) SetBrightness(ctx context.Context, subsystem, name string, value uint32) error {
	obj := l.conn.Object(logindService, logindSessionPath)
	return obj.CallWithContext(ctx, logindSetBrightness, 0, subsystem, name, value).Err
}

// Close closes the bus connection.
func (l *LogindSession) Close() error {
	return l.conn.Close()
}

func classifyDBus(err error) error {
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		switch dbusErr.Name {
		case "org.freedesktop.DBus.Error.AccessDenied",
			"org.freedesktop.DBus.Error.InteractiveAuthorizationRequired":
			return apperrors.Wrap(apperrors.CodeBrightnessPermissionDenied, "logind refused brightness change", err)
		case "org.freedesktop.DBus.Error.UnknownMethod",
			"org.freedesktop.DBus.Error.ServiceUnknown":
			return apperrors.Wrap(apperrors.CodeBrightnessSettingNotFound, "logind brightness control unavailable", err)
		}
	}
	return apperrors.Wrap(apperrors.CodeBrightnessWriteFailed, "logind brightness change failed", err)
}

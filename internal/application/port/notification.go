package port

import "context"

// NotificationType selects how a notice is styled.
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationWarning
)

// String returns the style name used by the renderer.
func (t NotificationType) String() string {
	switch t {
	case NotificationSuccess:
		return "success"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notification shows short-lived notices such as "Using limited brightness
// control." on top of the dark screen.
type Notification interface {
	// Show replaces the current notice. durationMs 0 uses the configured
	// notice duration.
	Show(ctx context.Context, message string, notifType NotificationType, durationMs int)

	// Clear removes the current notice.
	Clear(ctx context.Context)
}

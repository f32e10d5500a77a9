package port

import "context"

// IdleInhibitor keeps the display from blanking or locking while a dark
// screen session runs. Acquisitions are counted: the inhibition lasts until
// every Inhibit has been matched by an Uninhibit.
type IdleInhibitor interface {
	// Inhibit takes one reference. The first reference asks the desktop to
	// stay awake, giving reason as the user-visible explanation.
	Inhibit(ctx context.Context, reason string) error

	// Uninhibit drops one reference. Without a reference it does nothing.
	Uninhibit(ctx context.Context) error

	// IsInhibited reports whether the desktop is being kept awake.
	IsInhibited() bool

	// Close drops every reference and the bus connection.
	Close() error
}

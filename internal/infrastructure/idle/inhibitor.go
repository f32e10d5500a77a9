// Package idle keeps the screen on while a dark screen is displayed, using the
// XDG Desktop Portal Inhibit interface or, outside portal-enabled sessions,
// the freedesktop ScreenSaver interface.
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/logging"
	"github.com/godbus/dbus/v5"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	screenSaverDest  = "org.freedesktop.ScreenSaver"
	screenSaverPath  = "/org/freedesktop/ScreenSaver"
	screenSaverIface = "org.freedesktop.ScreenSaver"

	appName = "darkscreen"

	// Inhibit flags of org.freedesktop.portal.Inhibit.
	flagIdle = 8
)

// backend acquires and releases one inhibition.
type backend interface {
	name() string
	acquire(ctx context.Context, reason string) error
	release(ctx context.Context)
}

// Compile-time interface check.
var _ port.IdleInhibitor = (*Inhibitor)(nil)

// Inhibitor is a refcounted idle inhibitor. Without a session bus or any
// supported interface it degrades to a no-op that still tracks the refcount.
type Inhibitor struct {
	conn     *dbus.Conn
	backend  backend
	refcount int
	mu       sync.Mutex
}

// NewInhibitor connects to the session bus and picks the first available backend.
func NewInhibitor(ctx context.Context) *Inhibitor {
	log := logging.FromContext(ctx)
	inhibitor := &Inhibitor{}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: cannot connect to D-Bus session bus")
		return inhibitor
	}
	inhibitor.conn = conn

	var version uint32
	err = conn.Object(portalDest, portalPath).
		CallWithContext(ctx, "org.freedesktop.DBus.Properties.Get", 0, portalInterface, "version").
		Store(&version)
	if err == nil {
		inhibitor.backend = &portalBackend{conn: conn}
		log.Debug().Uint32("version", version).Msg("idle inhibitor: using portal")
		return inhibitor
	}
	log.Debug().Err(err).Msg("idle inhibitor: portal not available")

	var owned bool
	err = conn.BusObject().
		CallWithContext(ctx, "org.freedesktop.DBus.NameHasOwner", 0, screenSaverDest).
		Store(&owned)
	if err == nil && owned {
		inhibitor.backend = &screenSaverBackend{conn: conn}
		log.Debug().Msg("idle inhibitor: using ScreenSaver interface")
		return inhibitor
	}

	log.Debug().Msg("idle inhibitor: no supported interface, screen may blank")
	return inhibitor
}

// Backend names the active backend, or "none".
func (i *Inhibitor) Backend() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.backend == nil {
		return "none"
	}
	return i.backend.name()
}

// Inhibit increments the refcount. The first call activates inhibition.
func (i *Inhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx)

	i.mu.Lock()
	defer i.mu.Unlock()

	i.refcount++
	if i.refcount > 1 || i.backend == nil {
		return nil
	}

	if err := i.backend.acquire(ctx, reason); err != nil {
		i.refcount--
		log.Warn().Err(err).Str("backend", i.backend.name()).Msg("idle inhibitor: failed to inhibit")
		return err
	}

	log.Info().Str("backend", i.backend.name()).Str("reason", reason).Msg("idle inhibitor: activated")
	return nil
}

// Uninhibit decrements the refcount. At zero the inhibition is released.
func (i *Inhibitor) Uninhibit(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.refcount <= 0 {
		return nil
	}
	i.refcount--
	if i.refcount > 0 || i.backend == nil {
		return nil
	}

	i.backend.release(ctx)
	logging.FromContext(ctx).Info().Msg("idle inhibitor: deactivated")
	return nil
}

// IsInhibited returns true while the refcount is positive.
func (i *Inhibitor) IsInhibited() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.refcount > 0
}

// Close releases any active inhibition and the bus connection.
func (i *Inhibitor) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.refcount > 0 && i.backend != nil {
		i.backend.release(context.Background())
	}
	i.refcount = 0
	i.backend = nil

	if i.conn != nil {
		err := i.conn.Close()
		i.conn = nil
		return err
	}
	return nil
}

// portalBackend holds an org.freedesktop.portal.Request handle.
type portalBackend struct {
	conn   *dbus.Conn
	handle dbus.ObjectPath
}

func (b *portalBackend) name() string { return "portal" }

func (b *portalBackend) acquire(ctx context.Context, reason string) error {
	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason),
	}

	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	var handle dbus.ObjectPath
	err := b.conn.Object(portalDest, portalPath).
		CallWithContext(ctx, portalInterface+".Inhibit", 0, "", uint32(flagIdle), options).
		Store(&handle)
	if err != nil {
		return fmt.Errorf("portal inhibit: %w", err)
	}
	b.handle = handle
	return nil
}

func (b *portalBackend) release(ctx context.Context) {
	if b.handle == "" {
		return
	}
	// The request may already be gone if the portal answered it; Close then fails harmlessly.
	_ = b.conn.Object(portalDest, b.handle).CallWithContext(ctx, requestIface+".Close", 0).Err
	b.handle = ""
}

// screenSaverBackend holds an org.freedesktop.ScreenSaver cookie.
type screenSaverBackend struct {
	conn   *dbus.Conn
	cookie uint32
	held   bool
}

func (b *screenSaverBackend) name() string { return "screensaver" }

func (b *screenSaverBackend) acquire(ctx context.Context, reason string) error {
	var cookie uint32
	err := b.conn.Object(screenSaverDest, screenSaverPath).
		CallWithContext(ctx, screenSaverIface+".Inhibit", 0, appName, reason).
		Store(&cookie)
	if err != nil {
		return fmt.Errorf("screensaver inhibit: %w", err)
	}
	b.cookie = cookie
	b.held = true
	return nil
}

func (b *screenSaverBackend) release(ctx context.Context) {
	if !b.held {
		return
	}
	_ = b.conn.Object(screenSaverDest, screenSaverPath).
		CallWithContext(ctx, screenSaverIface+".UnInhibit", 0, b.cookie).Err
	b.held = false
}

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every entry logged through the returned context with
// component (session, tui, backlight, ...).
func WithComponent(ctx context.Context, component string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithRequest tags entries with the permission request they belong to, so a
// prompt, its settings round trip and any stale delivery can be correlated.
func WithRequest(ctx context.Context, request uint64) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Uint64("request", request)
	})
}

func withFields(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	logger := fields(FromContext(ctx).With()).Logger()
	return WithContext(ctx, logger)
}

package repository

import (
	"context"

	"github.com/bnema/darkscreen/internal/domain/entity"
)

// PreferenceRepository defines operations for counter and toggle persistence.
// Missing keys are not an error: readers receive the supplied default.
type PreferenceRepository interface {
	// GetInt returns the stored integer for key, or def when absent.
	GetInt(ctx context.Context, key entity.PreferenceKey, def int) (int, error)

	// SetInt saves an integer value.
	SetInt(ctx context.Context, key entity.PreferenceKey, value int) error

	// GetBool returns the stored boolean for key, or def when absent.
	GetBool(ctx context.Context, key entity.PreferenceKey, def bool) (bool, error)

	// SetBool saves a boolean value.
	SetBool(ctx context.Context, key entity.PreferenceKey, value bool) error

	// Delete removes key so the next read returns the default.
	Delete(ctx context.Context, key entity.PreferenceKey) error
}

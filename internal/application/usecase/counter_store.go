// Package usecase contains the dark screen use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/domain/repository"
	"github.com/bnema/darkscreen/internal/logging"
)

// CounterStore gives typed access to the persisted prompt counters and the
// user toggles. Counters are clamped to their caps on read and on write.
type CounterStore struct {
	repo repository.PreferenceRepository
}

// NewCounterStore creates a counter store backed by repo.
func NewCounterStore(repo repository.PreferenceRepository) *CounterStore {
	return &CounterStore{repo: repo}
}

// TotalDenials returns the lifetime denial count.
func (s *CounterStore) TotalDenials(ctx context.Context) (int, error) {
	return s.counter(ctx, entity.KeyTotalPermissionDenials, entity.MaxTotalDenials)
}

// IncrementTotalDenials adds one denial, saturating at entity.MaxTotalDenials.
func (s *CounterStore) IncrementTotalDenials(ctx context.Context) (int, error) {
	return s.increment(ctx, entity.KeyTotalPermissionDenials, entity.MaxTotalDenials)
}

// InitialLaunchPrompts returns how many launches opened with a prompt.
func (s *CounterStore) InitialLaunchPrompts(ctx context.Context) (int, error) {
	return s.counter(ctx, entity.KeyInitialLaunchPromptCount, entity.MaxInitialLaunchPrompts)
}

// IncrementInitialLaunchPrompts adds one launch prompt, saturating at
// entity.MaxInitialLaunchPrompts.
func (s *CounterStore) IncrementInitialLaunchPrompts(ctx context.Context) (int, error) {
	return s.increment(ctx, entity.KeyInitialLaunchPromptCount, entity.MaxInitialLaunchPrompts)
}

// ResetCounters sets both persisted counters back to zero.
func (s *CounterStore) ResetCounters(ctx context.Context) error {
	if err := s.repo.SetInt(ctx, entity.KeyTotalPermissionDenials, 0); err != nil {
		return fmt.Errorf("reset total denials: %w", err)
	}
	if err := s.repo.SetInt(ctx, entity.KeyInitialLaunchPromptCount, 0); err != nil {
		return fmt.Errorf("reset initial launch prompts: %w", err)
	}
	logging.FromContext(ctx).Debug().Msg("prompt counters reset")
	return nil
}

// PreventTouch returns the preventTouch toggle.
func (s *CounterStore) PreventTouch(ctx context.Context) (bool, error) {
	return s.repo.GetBool(ctx, entity.KeyPreventTouch, entity.DefaultPreventTouch)
}

// SetPreventTouch saves the preventTouch toggle.
func (s *CounterStore) SetPreventTouch(ctx context.Context, enabled bool) error {
	return s.repo.SetBool(ctx, entity.KeyPreventTouch, enabled)
}

// MediaEnabled returns the mediaEnabled toggle.
func (s *CounterStore) MediaEnabled(ctx context.Context) (bool, error) {
	return s.repo.GetBool(ctx, entity.KeyMediaEnabled, entity.DefaultMediaEnabled)
}

// SetMediaEnabled saves the mediaEnabled toggle.
func (s *CounterStore) SetMediaEnabled(ctx context.Context, enabled bool) error {
	return s.repo.SetBool(ctx, entity.KeyMediaEnabled, enabled)
}

// Preferences returns both toggles.
func (s *CounterStore) Preferences(ctx context.Context) (entity.Preferences, error) {
	prefs := entity.DefaultPreferences()

	preventTouch, err := s.PreventTouch(ctx)
	if err != nil {
		return prefs, fmt.Errorf("read preventTouch: %w", err)
	}
	mediaEnabled, err := s.MediaEnabled(ctx)
	if err != nil {
		return prefs, fmt.Errorf("read mediaEnabled: %w", err)
	}

	prefs.PreventTouch = preventTouch
	prefs.MediaEnabled = mediaEnabled
	return prefs, nil
}

func (s *CounterStore) counter(ctx context.Context, key entity.PreferenceKey, limit int) (int, error) {
	v, err := s.repo.GetInt(ctx, key, 0)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	return entity.ClampCounter(v, limit), nil
}

func (s *CounterStore) increment(ctx context.Context, key entity.PreferenceKey, limit int) (int, error) {
	current, err := s.counter(ctx, key, limit)
	if err != nil {
		return 0, err
	}

	next := entity.ClampCounter(current+1, limit)
	if next == current {
		return current, nil
	}
	if err := s.repo.SetInt(ctx, key, next); err != nil {
		return current, fmt.Errorf("write %s: %w", key, err)
	}

	logging.FromContext(ctx).Debug().
		Str("key", string(key)).
		Int("value", next).
		Msg("counter incremented")
	return next, nil
}

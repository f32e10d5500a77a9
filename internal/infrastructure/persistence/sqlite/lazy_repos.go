// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrapper in this file defers opening the database until the first
// repository call, so the preferences store can be constructed eagerly and
// injected everywhere while the database itself is created on demand.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/domain/repository"
)

// LazyPreferenceRepository wraps a preference repository with lazy database initialization.
type LazyPreferenceRepository struct {
	provider port.DatabaseProvider
	repo     repository.PreferenceRepository
	once     sync.Once
	initErr  error
}

// NewLazyPreferenceRepository creates a lazy-loading preference repository.
func NewLazyPreferenceRepository(provider port.DatabaseProvider) repository.PreferenceRepository {
	return &LazyPreferenceRepository{provider: provider}
}

func (r *LazyPreferenceRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewPreferenceRepository(db)
	})
	return r.initErr
}

func (r *LazyPreferenceRepository) GetInt(ctx context.Context, key entity.PreferenceKey, def int) (int, error) {
	if err := r.init(ctx); err != nil {
		return def, err
	}
	return r.repo.GetInt(ctx, key, def)
}

func (r *LazyPreferenceRepository) SetInt(ctx context.Context, key entity.PreferenceKey, value int) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetInt(ctx, key, value)
}

func (r *LazyPreferenceRepository) GetBool(ctx context.Context, key entity.PreferenceKey, def bool) (bool, error) {
	if err := r.init(ctx); err != nil {
		return def, err
	}
	return r.repo.GetBool(ctx, key, def)
}

func (r *LazyPreferenceRepository) SetBool(ctx context.Context, key entity.PreferenceKey, value bool) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetBool(ctx, key, value)
}

func (r *LazyPreferenceRepository) Delete(ctx context.Context, key entity.PreferenceKey) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, key)
}

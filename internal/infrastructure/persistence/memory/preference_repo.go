// Package memory provides a non-durable PreferenceRepository used when the
// preferences database cannot be opened.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/domain/repository"
)

// PreferenceRepository keeps preferences in a map for the life of the process.
type PreferenceRepository struct {
	mu    sync.RWMutex
	ints  map[entity.PreferenceKey]int
	bools map[entity.PreferenceKey]bool
}

var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates an empty repository.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{
		ints:  make(map[entity.PreferenceKey]int),
		bools: make(map[entity.PreferenceKey]bool),
	}
}

func (r *PreferenceRepository) GetInt(_ context.Context, key entity.PreferenceKey, def int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.ints[key]; ok {
		return v, nil
	}
	return def, nil
}

func (r *PreferenceRepository) SetInt(_ context.Context, key entity.PreferenceKey, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints[key] = value
	return nil
}

func (r *PreferenceRepository) GetBool(_ context.Context, key entity.PreferenceKey, def bool) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.bools[key]; ok {
		return v, nil
	}
	return def, nil
}

func (r *PreferenceRepository) SetBool(_ context.Context, key entity.PreferenceKey, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bools[key] = value
	return nil
}

func (r *PreferenceRepository) Delete(_ context.Context, key entity.PreferenceKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ints, key)
	delete(r.bools, key)
	return nil
}

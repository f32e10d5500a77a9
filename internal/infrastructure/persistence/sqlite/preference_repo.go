package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/domain/repository"
	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/bnema/darkscreen/internal/logging"
)

const (
	selectPreference = `SELECT value FROM preferences WHERE key = ?`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deletePreference = `DELETE FROM preferences WHERE key = ?`
)

type preferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
// Booleans are stored as 0 and 1.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) GetInt(ctx context.Context, key entity.PreferenceKey, def int) (int, error) {
	v, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	return int(v), nil
}

func (r *preferenceRepo) SetInt(ctx context.Context, key entity.PreferenceKey, value int) error {
	return r.set(ctx, key, int64(value))
}

func (r *preferenceRepo) GetBool(ctx context.Context, key entity.PreferenceKey, def bool) (bool, error) {
	v, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	return v != 0, nil
}

func (r *preferenceRepo) SetBool(ctx context.Context, key entity.PreferenceKey, value bool) error {
	var v int64
	if value {
		v = 1
	}
	return r.set(ctx, key, v)
}

func (r *preferenceRepo) Delete(ctx context.Context, key entity.PreferenceKey) error {
	logging.FromContext(ctx).Debug().Str("key", string(key)).Msg("deleting preference")

	if _, err := r.db.ExecContext(ctx, deletePreference, string(key)); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageSaveFailed, "delete preference "+string(key), err)
	}
	return nil
}

func (r *preferenceRepo) get(ctx context.Context, key entity.PreferenceKey) (value int64, found bool, err error) {
	err = r.db.QueryRowContext(ctx, selectPreference, string(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, apperrors.Wrap(apperrors.CodeStorageQueryFailed, "read preference "+string(key), err)
	}
	return value, true, nil
}

func (r *preferenceRepo) set(ctx context.Context, key entity.PreferenceKey, value int64) error {
	logging.FromContext(ctx).Debug().Str("key", string(key)).Int64("value", value).Msg("saving preference")

	if _, err := r.db.ExecContext(ctx, upsertPreference, string(key), value); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageSaveFailed, "save preference "+string(key), err)
	}
	return nil
}

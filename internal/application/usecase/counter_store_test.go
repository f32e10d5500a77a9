package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/domain/entity"
	repomocks "github.com/bnema/darkscreen/internal/domain/repository/mocks"
	"github.com/bnema/darkscreen/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCounterStore_Defaults(t *testing.T) {
	ctx := testContext()
	store := usecase.NewCounterStore(memory.NewPreferenceRepository())

	denials, err := store.TotalDenials(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, denials)

	launches, err := store.InitialLaunchPrompts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, launches)

	prefs, err := store.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)
}

func TestCounterStore_IncrementSaturatesAtCap(t *testing.T) {
	ctx := testContext()
	store := usecase.NewCounterStore(memory.NewPreferenceRepository())

	for range entity.MaxTotalDenials + 3 {
		_, err := store.IncrementTotalDenials(ctx)
		require.NoError(t, err)
	}
	for range entity.MaxInitialLaunchPrompts + 2 {
		_, err := store.IncrementInitialLaunchPrompts(ctx)
		require.NoError(t, err)
	}

	denials, err := store.TotalDenials(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxTotalDenials, denials)

	launches, err := store.InitialLaunchPrompts(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxInitialLaunchPrompts, launches)
}

func TestCounterStore_ReadClampsCorruptValues(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPreferenceRepository(t)
	store := usecase.NewCounterStore(repo)

	repo.EXPECT().GetInt(mock.Anything, entity.KeyTotalPermissionDenials, 0).Return(42, nil)
	repo.EXPECT().GetInt(mock.Anything, entity.KeyInitialLaunchPromptCount, 0).Return(-3, nil)

	denials, err := store.TotalDenials(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxTotalDenials, denials)

	launches, err := store.InitialLaunchPrompts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, launches)
}

func TestCounterStore_IncrementAtCapSkipsWrite(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPreferenceRepository(t)
	store := usecase.NewCounterStore(repo)

	repo.EXPECT().GetInt(mock.Anything, entity.KeyTotalPermissionDenials, 0).Return(entity.MaxTotalDenials, nil)

	got, err := store.IncrementTotalDenials(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxTotalDenials, got)
	repo.AssertNotCalled(t, "SetInt", mock.Anything, mock.Anything, mock.Anything)
}

func TestCounterStore_IncrementWriteError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPreferenceRepository(t)
	store := usecase.NewCounterStore(repo)

	repo.EXPECT().GetInt(mock.Anything, entity.KeyTotalPermissionDenials, 0).Return(2, nil)
	repo.EXPECT().SetInt(mock.Anything, entity.KeyTotalPermissionDenials, 3).Return(errors.New("disk full"))

	got, err := store.IncrementTotalDenials(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 2, got)
}

func TestCounterStore_ResetCounters(t *testing.T) {
	ctx := testContext()
	store := usecase.NewCounterStore(memory.NewPreferenceRepository())

	_, err := store.IncrementTotalDenials(ctx)
	require.NoError(t, err)
	_, err = store.IncrementInitialLaunchPrompts(ctx)
	require.NoError(t, err)

	require.NoError(t, store.ResetCounters(ctx))

	denials, _ := store.TotalDenials(ctx)
	launches, _ := store.InitialLaunchPrompts(ctx)
	assert.Zero(t, denials)
	assert.Zero(t, launches)
}

func TestCounterStore_Toggles(t *testing.T) {
	ctx := testContext()
	store := usecase.NewCounterStore(memory.NewPreferenceRepository())

	require.NoError(t, store.SetPreventTouch(ctx, false))
	require.NoError(t, store.SetMediaEnabled(ctx, true))

	prefs, err := store.Preferences(ctx)
	require.NoError(t, err)
	assert.False(t, prefs.PreventTouch)
	assert.True(t, prefs.MediaEnabled)
}

func TestCounterStore_PreferencesReadError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPreferenceRepository(t)
	store := usecase.NewCounterStore(repo)

	repo.EXPECT().GetBool(mock.Anything, entity.KeyPreventTouch, true).Return(true, errors.New("locked"))

	prefs, err := store.Preferences(ctx)
	require.Error(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)
}

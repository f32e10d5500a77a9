package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/cli/styles"
	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/infrastructure/persistence/memory"
	"github.com/bnema/darkscreen/internal/infrastructure/simulator"
	"github.com/bnema/darkscreen/internal/logging"
)

type testRig struct {
	model  *DarkScreenModel
	device *simulator.Device
	store  *usecase.CounterStore
	ctx    context.Context
}

func newTestRig(t *testing.T, opts ...simulator.Option) *testRig {
	t.Helper()

	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
	device := simulator.NewDevice(opts...)
	store := usecase.NewCounterStore(memory.NewPreferenceRepository())

	m := NewDarkScreenModel(ctx, styles.NewTheme(), DarkScreenConfig{
		Store:      store,
		SystemMax:  device.MaxLevel(),
		Permission: device,
		DeviceName: "simulated",
	})
	session := usecase.NewDarkScreenSession(usecase.DarkScreenSessionDeps{
		Controller: usecase.NewBrightnessController(device, device),
		Governor:   usecase.NewPermissionGovernor(store, device),
		Prompt:     m,
		Settings:   m,
		Notifier:   m,
	})
	m.Bind(session)

	return &testRig{model: m, device: device, store: store, ctx: ctx}
}

func (r *testRig) send(msg tea.Msg) tea.Cmd {
	_, cmd := r.model.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDarkScreen_FreshInstallGrantFlow(t *testing.T) {
	r := newTestRig(t, simulator.WithLevel(200))

	r.send(startMsg{})
	require.True(t, r.model.IsPromptVisible())
	assert.Equal(t, entity.PromptMessageInitial, r.model.prompt.Message)
	assert.Contains(t, r.model.View(), entity.PromptActionLabel)

	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, r.model.settingsOpen)
	assert.False(t, r.model.IsPromptVisible())

	r.send(runes("a"))
	assert.False(t, r.model.settingsOpen)
	assert.Equal(t, entity.DimmingSystemAndWindow, r.model.status.Dimming)
	assert.Equal(t, entity.NoticeGranted, r.model.notice)

	level, _ := r.device.Level(r.ctx)
	assert.Equal(t, entity.SystemBrightnessMin, level)

	launches, _ := r.store.InitialLaunchPrompts(r.ctx)
	assert.Equal(t, 0, launches, "grant resets the counters")
}

func TestDarkScreen_DenyInSettingsReprompts(t *testing.T) {
	r := newTestRig(t)

	r.send(startMsg{})
	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	r.send(runes("n"))

	require.True(t, r.model.IsPromptVisible())
	assert.True(t, r.model.prompt.Reprompt)
	assert.Equal(t, entity.PromptMessageReprompt, r.model.prompt.Message)

	denials, _ := r.store.TotalDenials(r.ctx)
	assert.Equal(t, 1, denials)
}

func TestDarkScreen_DismissFallsBackToWindowOnly(t *testing.T) {
	r := newTestRig(t)

	r.send(startMsg{})
	r.send(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, r.model.IsPromptVisible())
	assert.Equal(t, entity.DimmingWindowOnly, r.model.status.Dimming)

	window, _ := r.device.WindowLevel(r.ctx)
	assert.Equal(t, entity.WindowBrightnessMin, window)

	denials, _ := r.store.TotalDenials(r.ctx)
	assert.Equal(t, 0, denials)
}

func TestDarkScreen_QuitRestores(t *testing.T) {
	r := newTestRig(t, simulator.WithPermission(true), simulator.WithLevel(180))

	r.send(startMsg{})
	assert.Equal(t, entity.DimmingSystemAndWindow, r.model.status.Dimming)

	cmd := r.send(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, r.model.Quitting())
	assert.Empty(t, r.model.View())

	level, _ := r.device.Level(r.ctx)
	assert.Equal(t, 180, level)
	window, _ := r.device.WindowLevel(r.ctx)
	assert.Equal(t, entity.WindowFollowSystem, window)
}

func TestDarkScreen_BlurAndFocus(t *testing.T) {
	r := newTestRig(t, simulator.WithPermission(true), simulator.WithLevel(180))

	r.send(startMsg{})
	r.send(tea.BlurMsg{})
	assert.True(t, r.model.paused)

	level, _ := r.device.Level(r.ctx)
	assert.Equal(t, 180, level, "pause outside the prompt phase restores")

	r.send(tea.FocusMsg{})
	assert.False(t, r.model.paused)
	level, _ = r.device.Level(r.ctx)
	assert.Equal(t, entity.SystemBrightnessMin, level)
}

func TestDarkScreen_TogglePreferences(t *testing.T) {
	r := newTestRig(t, simulator.WithPermission(true))

	r.send(startMsg{})
	r.send(runes("t"))
	r.send(runes("m"))

	prefs, err := r.store.Preferences(r.ctx)
	require.NoError(t, err)
	assert.False(t, prefs.PreventTouch)
	assert.True(t, prefs.MediaEnabled)
	assert.Equal(t, prefs, r.model.prefs)
}

func TestDarkScreen_NoticeExpires(t *testing.T) {
	r := newTestRig(t, simulator.WithPermission(true))
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.model.now = func() time.Time { return now }

	r.model.Show(r.ctx, "hello", 0, 1000)
	r.send(tickMsg(now))
	assert.Equal(t, "hello", r.model.notice)

	now = now.Add(2 * time.Second)
	cmd := r.send(tickMsg(now))
	assert.Empty(t, r.model.notice)
	assert.NotNil(t, cmd, "ticks keep coming")
}

func TestDarkScreen_DiagnosticsView(t *testing.T) {
	r := newTestRig(t, simulator.WithPermission(true))

	r.send(startMsg{})
	r.send(runes("i"))

	view := r.model.View()
	assert.Contains(t, view, "system + window")
	assert.Contains(t, view, string(entity.GovernorGranted))
}

func TestDarkScreen_SettingsAlreadyOpen(t *testing.T) {
	r := newTestRig(t)
	require.NoError(t, r.model.OpenWriteSettings(r.ctx, func() {}))
	assert.Error(t, r.model.OpenWriteSettings(r.ctx, func() {}))
}

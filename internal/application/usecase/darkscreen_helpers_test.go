package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/infrastructure/persistence/memory"
	"github.com/bnema/darkscreen/internal/infrastructure/simulator"
	"github.com/bnema/darkscreen/internal/logging"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakePrompt records prompts and the window level at the moment each was shown.
type fakePrompt struct {
	device       *simulator.Device
	visible      bool
	shown        []entity.PromptRequest
	windowAtShow []float32
	hides        int
	onResult     func(entity.PromptAction)
}

func (p *fakePrompt) ShowPrompt(ctx context.Context, req entity.PromptRequest, onResult func(entity.PromptAction)) {
	level, _ := p.device.WindowLevel(ctx)
	p.windowAtShow = append(p.windowAtShow, level)
	p.shown = append(p.shown, req)
	p.visible = true
	p.onResult = onResult
}

func (p *fakePrompt) HidePrompt(context.Context) {
	p.visible = false
	p.hides++
}

func (p *fakePrompt) IsPromptVisible() bool {
	return p.visible
}

// act simulates the user acting on the visible prompt.
func (p *fakePrompt) act(action entity.PromptAction) {
	cb := p.onResult
	p.visible = false
	cb(action)
}

// fakeSettings holds the return callback until the test delivers it.
type fakeSettings struct {
	opens    int
	err      error
	onReturn func()
}

func (s *fakeSettings) OpenWriteSettings(_ context.Context, onReturn func()) error {
	s.opens++
	if s.err != nil {
		return s.err
	}
	s.onReturn = onReturn
	return nil
}

func (s *fakeSettings) comeBack() {
	s.onReturn()
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Show(_ context.Context, message string, _ port.NotificationType, _ int) {
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) Clear(context.Context) {
	n.messages = nil
}

type fakeIdle struct {
	count int
}

func (i *fakeIdle) Inhibit(context.Context, string) error {
	i.count++
	return nil
}

func (i *fakeIdle) Uninhibit(context.Context) error {
	if i.count > 0 {
		i.count--
	}
	return nil
}

func (i *fakeIdle) IsInhibited() bool {
	return i.count > 0
}

func (i *fakeIdle) Close() error {
	return nil
}

// recordingWindow records every window override written.
type recordingWindow struct {
	port.WindowBrightness
	writes []float32
}

func (w *recordingWindow) SetWindowLevel(ctx context.Context, level float32) error {
	w.writes = append(w.writes, level)
	return w.WindowBrightness.SetWindowLevel(ctx, level)
}

type harness struct {
	ctx        context.Context
	device     *simulator.Device
	window     *recordingWindow
	repo       *memory.PreferenceRepository
	store      *usecase.CounterStore
	controller *usecase.BrightnessController
	governor   *usecase.PermissionGovernor
	prompt     *fakePrompt
	settings   *fakeSettings
	notifier   *fakeNotifier
	idle       *fakeIdle
	session    *usecase.DarkScreenSession
}

func newHarness(t *testing.T, opts ...simulator.Option) *harness {
	t.Helper()

	h := &harness{
		ctx:      testContext(),
		device:   simulator.NewDevice(opts...),
		repo:     memory.NewPreferenceRepository(),
		settings: &fakeSettings{},
		notifier: &fakeNotifier{},
		idle:     &fakeIdle{},
	}
	h.window = &recordingWindow{WindowBrightness: h.device}
	h.prompt = &fakePrompt{device: h.device}
	h.store = usecase.NewCounterStore(h.repo)
	h.controller = usecase.NewBrightnessController(h.window, h.device)
	h.governor = usecase.NewPermissionGovernor(h.store, h.device)
	h.session = usecase.NewDarkScreenSession(usecase.DarkScreenSessionDeps{
		Controller: h.controller,
		Governor:   h.governor,
		Prompt:     h.prompt,
		Settings:   h.settings,
		Notifier:   h.notifier,
		Idle:       h.idle,
	})
	return h
}

func (h *harness) seed(t *testing.T, denials, launches int) {
	t.Helper()
	require.NoError(t, h.repo.SetInt(h.ctx, entity.KeyTotalPermissionDenials, denials))
	require.NoError(t, h.repo.SetInt(h.ctx, entity.KeyInitialLaunchPromptCount, launches))
}

func (h *harness) budget() entity.PromptBudget {
	return h.governor.Budget(h.ctx)
}

func (h *harness) windowLevel(t *testing.T) float32 {
	t.Helper()
	level, err := h.device.WindowLevel(h.ctx)
	require.NoError(t, err)
	return level
}

func (h *harness) systemLevel(t *testing.T) int {
	t.Helper()
	level, err := h.device.Level(h.ctx)
	require.NoError(t, err)
	return level
}

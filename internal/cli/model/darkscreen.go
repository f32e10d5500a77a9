// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/cli/styles"
	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/infrastructure/surface"
	"github.com/bnema/darkscreen/internal/logging"
)

const (
	tickInterval          = 250 * time.Millisecond
	defaultNoticeDuration = 3 * time.Second
)

// PermissionSwitch grants or revokes the write capability from the settings
// screen. Only the simulated device offers one.
type PermissionSwitch interface {
	SetPermission(granted bool)
}

// DarkScreenConfig holds the collaborators of the dark screen model.
type DarkScreenConfig struct {
	Store          *usecase.CounterStore
	SystemMax      int
	Permission     PermissionSwitch
	DeviceName     string
	SettingsHint   string
	NoticeDuration time.Duration
}

type (
	startMsg struct{}
	tickMsg  time.Time
)

// DarkScreenModel is the full-screen dark surface. Besides being a Bubble Tea
// model it is the prompt presenter, the settings navigator and the notifier
// of the session it drives. Every port call happens inside Update.
type DarkScreenModel struct {
	// UI components
	help help.Model
	keys darkScreenKeyMap

	// Prompt and settings screen
	prompt           *entity.PromptRequest
	onPrompt         func(entity.PromptAction)
	settingsOpen     bool
	onSettingsReturn func()

	// Notice
	notice      string
	noticeType  port.NotificationType
	noticeUntil time.Time

	// State
	status          usecase.SessionStatus
	prefs           entity.Preferences
	paused          bool
	showDiagnostics bool
	quitting        bool
	width           int
	height          int
	err             error

	// Dependencies
	ctx     context.Context
	session *usecase.DarkScreenSession
	theme   *styles.Theme
	cfg     DarkScreenConfig
	now     func() time.Time
}

var (
	_ port.PermissionPromptPresenter = (*DarkScreenModel)(nil)
	_ port.SettingsNavigator         = (*DarkScreenModel)(nil)
	_ port.Notification              = (*DarkScreenModel)(nil)
)

// NewDarkScreenModel creates the model. Bind must be called before the
// program starts.
func NewDarkScreenModel(ctx context.Context, theme *styles.Theme, cfg DarkScreenConfig) *DarkScreenModel {
	if cfg.NoticeDuration <= 0 {
		cfg.NoticeDuration = defaultNoticeDuration
	}

	return &DarkScreenModel{
		help:   help.New(),
		keys:   defaultDarkScreenKeyMap(),
		prefs:  entity.DefaultPreferences(),
		width:  80,
		height: 24,
		ctx:    logging.WithComponent(ctx, "tui"),
		theme:  theme,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Bind attaches the session driven by this model.
func (m *DarkScreenModel) Bind(session *usecase.DarkScreenSession) {
	m.session = session
}

// Init implements tea.Model.
func (m *DarkScreenModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *DarkScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		m.session.Create(m.ctx)
		m.loadPreferences()
		m.refresh()
		return m, nil

	case tickMsg:
		if m.notice != "" && !m.now().Before(m.noticeUntil) {
			m.notice = ""
		}
		m.refresh()
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		if !m.paused {
			m.togglePause()
		}
		return m, nil

	case tea.FocusMsg:
		if m.paused {
			m.togglePause()
		}
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.refresh()
		return m, cmd
	}

	return m, nil
}

func (m *DarkScreenModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Destroy(m.ctx)
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	if m.settingsOpen {
		switch {
		case key.Matches(msg, m.keys.Allow):
			m.setPermission(true)
			m.returnFromSettings()
		case key.Matches(msg, m.keys.Deny):
			m.setPermission(false)
			m.returnFromSettings()
		case key.Matches(msg, m.keys.Back):
			m.returnFromSettings()
		}
		return nil
	}

	if m.prompt != nil {
		switch {
		case key.Matches(msg, m.keys.Grant):
			m.resolvePrompt(entity.PromptActionGrant)
			return nil
		case key.Matches(msg, m.keys.Dismiss):
			m.resolvePrompt(entity.PromptActionDismissed)
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.togglePause()
	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = !m.showDiagnostics
	case key.Matches(msg, m.keys.Touch):
		m.togglePreference(entity.KeyPreventTouch)
	case key.Matches(msg, m.keys.Media):
		m.togglePreference(entity.KeyMediaEnabled)
	}
	return nil
}

func (m *DarkScreenModel) togglePause() {
	m.paused = !m.paused
	if m.paused {
		m.session.Pause(m.ctx)
		return
	}
	m.session.Resume(m.ctx)
}

func (m *DarkScreenModel) togglePreference(k entity.PreferenceKey) {
	var err error
	switch k {
	case entity.KeyPreventTouch:
		err = m.cfg.Store.SetPreventTouch(m.ctx, !m.prefs.PreventTouch)
	case entity.KeyMediaEnabled:
		err = m.cfg.Store.SetMediaEnabled(m.ctx, !m.prefs.MediaEnabled)
	}
	if err != nil {
		m.err = err
		logging.FromContext(m.ctx).Warn().Err(err).Str("key", string(k)).Msg("failed to save preference")
		return
	}
	m.loadPreferences()
}

func (m *DarkScreenModel) loadPreferences() {
	prefs, err := m.cfg.Store.Preferences(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.prefs = prefs
}

func (m *DarkScreenModel) setPermission(granted bool) {
	if m.cfg.Permission == nil {
		return
	}
	m.cfg.Permission.SetPermission(granted)
}

func (m *DarkScreenModel) resolvePrompt(action entity.PromptAction) {
	onResult := m.onPrompt
	m.prompt = nil
	m.onPrompt = nil
	if onResult != nil {
		onResult(action)
	}
}

func (m *DarkScreenModel) returnFromSettings() {
	onReturn := m.onSettingsReturn
	m.settingsOpen = false
	m.onSettingsReturn = nil
	if onReturn != nil {
		onReturn()
	}
}

func (m *DarkScreenModel) refresh() {
	if m.session == nil {
		return
	}
	m.status = m.session.Status(m.ctx)
}

// ShowPrompt implements port.PermissionPromptPresenter.
func (m *DarkScreenModel) ShowPrompt(_ context.Context, req entity.PromptRequest, onResult func(entity.PromptAction)) {
	m.prompt = &req
	m.onPrompt = onResult
}

// HidePrompt implements port.PermissionPromptPresenter.
func (m *DarkScreenModel) HidePrompt(_ context.Context) {
	m.prompt = nil
	m.onPrompt = nil
}

// IsPromptVisible implements port.PermissionPromptPresenter.
func (m *DarkScreenModel) IsPromptVisible() bool {
	return m.prompt != nil
}

// OpenWriteSettings implements port.SettingsNavigator by switching to the
// settings screen. onReturn runs when the user leaves it.
func (m *DarkScreenModel) OpenWriteSettings(_ context.Context, onReturn func()) error {
	if m.settingsOpen {
		return fmt.Errorf("settings screen already open")
	}
	m.settingsOpen = true
	m.onSettingsReturn = onReturn
	return nil
}

// Show implements port.Notification.
func (m *DarkScreenModel) Show(_ context.Context, message string, notifType port.NotificationType, durationMs int) {
	duration := m.cfg.NoticeDuration
	if durationMs > 0 {
		duration = time.Duration(durationMs) * time.Millisecond
	}
	m.notice = message
	m.noticeType = notifType
	m.noticeUntil = m.now().Add(duration)
}

// Clear implements port.Notification.
func (m *DarkScreenModel) Clear(_ context.Context) {
	m.notice = ""
}

// View implements tea.Model.
func (m *DarkScreenModel) View() string {
	if m.quitting {
		return ""
	}

	readings := m.status.Readings
	brightness := surface.EffectiveBrightness(readings.WindowLevel, readings.SystemLevel, m.cfg.SystemMax)
	background := styles.Gray(surface.ShadeGray(brightness))

	var content string
	switch {
	case m.settingsOpen:
		content = m.renderSettings()
	case m.prompt != nil:
		content = m.renderPrompt(*m.prompt)
	case m.paused:
		content = m.theme.Subtle.Render("paused, press p to resume")
	}

	footer := m.renderFooter()
	bodyHeight := max(m.height-lipgloss.Height(footer), 1)

	body := lipgloss.Place(
		m.width, bodyHeight,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(background),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m *DarkScreenModel) renderPrompt(req entity.PromptRequest) string {
	action := m.theme.PromptAction.Render(req.Action)
	hint := m.theme.Subtle.Render("enter to grant, esc to dismiss")
	return m.theme.Prompt.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Normal.Render(req.Message),
		"",
		action,
		"",
		hint,
	))
}

func (m *DarkScreenModel) renderSettings() string {
	lines := []string{
		m.theme.Title.Render(styles.IconLock + " Brightness control"),
		"",
	}
	if m.cfg.DeviceName != "" {
		lines = append(lines, m.theme.Subtle.Render("Device: ")+m.theme.Normal.Render(m.cfg.DeviceName))
	}
	if m.cfg.Permission != nil {
		lines = append(lines,
			m.theme.Normal.Render("Allow darkscreen to modify system brightness?"),
			"",
			m.theme.HelpKey.Render("a")+m.theme.HelpDesc.Render(" allow   ")+
				m.theme.HelpKey.Render("n")+m.theme.HelpDesc.Render(" deny   ")+
				m.theme.HelpKey.Render("b")+m.theme.HelpDesc.Render(" back"),
		)
	} else {
		hint := m.cfg.SettingsHint
		if hint == "" {
			hint = "Grant write access to the backlight, then come back."
		}
		lines = append(lines,
			m.theme.Normal.Render(hint),
			"",
			m.theme.HelpKey.Render("b")+m.theme.HelpDesc.Render(" back"),
		)
	}
	return m.theme.Box.Background(m.theme.Surface).Render(strings.Join(lines, "\n"))
}

func (m *DarkScreenModel) renderFooter() string {
	var lines []string

	if m.notice != "" {
		lines = append(lines, m.theme.NoticeStyle(m.noticeType.String()).Render(m.notice))
	}
	if m.err != nil {
		lines = append(lines, m.theme.ErrorStyle.Render(m.err.Error()))
	}
	if m.showDiagnostics {
		lines = append(lines, m.renderDiagnostics())
	}
	lines = append(lines, m.help.View(m.keys))

	return strings.Join(lines, "\n")
}

func (m *DarkScreenModel) renderDiagnostics() string {
	s := m.status
	r := s.Readings

	system := "n/a"
	if r.SystemLevel != entity.SystemLevelUnset {
		system = fmt.Sprintf("%d/%d (%s)", r.SystemLevel, m.cfg.SystemMax, r.SystemMode)
	}
	window := "follow system"
	if entity.IsValidWindowLevel(r.WindowLevel) {
		window = fmt.Sprintf("%.2f", r.WindowLevel)
	}

	pairs := [][2]string{
		{"system", system},
		{"window", window},
		{"control", s.Dimming.Label()},
		{"governor", string(s.Governor)},
		{"prompt", yesNo(s.PromptVisible)},
		{"prompt phase", yesNo(s.PromptPhase)},
		{"denials", fmt.Sprintf("%d/%d", s.Budget.TotalDenials, entity.MaxTotalDenials)},
		{"session prompts", fmt.Sprintf("%d/%d", s.Budget.SessionPrompts, entity.MaxSessionPrompts)},
		{"screen on", yesNo(s.KeepScreenOn)},
		{"preventTouch", yesNo(m.prefs.PreventTouch)},
		{"mediaEnabled", yesNo(m.prefs.MediaEnabled)},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, m.theme.Subtle.Render(p[0]+" ")+m.theme.Normal.Render(p[1]))
	}
	return strings.Join(parts, m.theme.Subtle.Render("  ·  "))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Quitting reports whether the user asked to leave.
func (m *DarkScreenModel) Quitting() bool {
	return m.quitting
}

package usecase

import (
	"context"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/bnema/darkscreen/internal/logging"
)

const keepScreenOnReason = "Dark screen active"

// SessionStatus is a diagnostics snapshot of a dark screen session.
type SessionStatus struct {
	Created       bool
	Destroyed     bool
	Dimming       entity.DimmingState
	Governor      entity.GovernorState
	Budget        entity.PromptBudget
	PromptPhase   bool
	PromptVisible bool
	KeepScreenOn  bool
	Readings      entity.BrightnessReadings
	Snapshot      entity.BrightnessSnapshot
}

// DarkScreenSessionDeps holds the collaborators of a session.
// Notifier and IdleInhibitor are optional.
type DarkScreenSessionDeps struct {
	Controller *BrightnessController
	Governor   *PermissionGovernor
	Prompt     port.PermissionPromptPresenter
	Settings   port.SettingsNavigator
	Notifier   port.Notification
	Idle       port.IdleInhibitor
}

// DarkScreenSession drives the governor and the controller from lifecycle
// events: create, resume, pause, destroy, prompt results and the return from
// the settings surface.
//
// All methods run on the single UI loop. Platform callbacks are single-shot:
// each outstanding request carries a generation and a delivery is accepted only
// when it matches the pending generation, so stale or duplicate deliveries and
// anything arriving after Destroy are ignored.
type DarkScreenSession struct {
	controller *BrightnessController
	governor   *PermissionGovernor
	prompt     port.PermissionPromptPresenter
	settings   port.SettingsNavigator
	notifier   port.Notification
	idle       port.IdleInhibitor

	created     bool
	destroyed   bool
	promptPhase bool
	inhibited   bool

	generation uint64
	pending    uint64
}

// NewDarkScreenSession creates a session. Nothing happens until Create.
func NewDarkScreenSession(deps DarkScreenSessionDeps) *DarkScreenSession {
	return &DarkScreenSession{
		controller: deps.Controller,
		governor:   deps.Governor,
		prompt:     deps.Prompt,
		settings:   deps.Settings,
		notifier:   deps.Notifier,
		idle:       deps.Idle,
	}
}

// Create starts a session: the session budget is reset, the screen is kept
// on, and the first permission check picks the dimming strategy.
func (s *DarkScreenSession) Create(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "session")
	log := logging.FromContext(ctx)

	s.created = true
	s.destroyed = false
	s.promptPhase = false
	s.pending = 0
	s.governor.ResetSession(ctx)

	if s.idle != nil && !s.inhibited {
		if err := s.idle.Inhibit(ctx, keepScreenOnReason); err != nil {
			log.Warn().Err(err).Msg("failed to keep screen on")
		} else {
			s.inhibited = true
		}
	}

	decision := s.governor.Check(ctx)
	log.Debug().Str("decision", string(decision)).Msg("session created")
	s.applyDecision(ctx, decision, false)
}

// Resume re-evaluates the permission after the dark screen comes back to the
// foreground.
func (s *DarkScreenSession) Resume(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "session")
	if !s.active(ctx, "resume") {
		return
	}

	if s.governor.HasPermission(ctx) {
		// Granted behind our back: a pending settings round trip is moot.
		s.pending = 0
		s.applyDecision(ctx, s.governor.Check(ctx), false)
		return
	}

	if s.promptPhase || s.prompt.IsPromptVisible() {
		s.controller.ApplyReadableMinimum(ctx)
		return
	}

	s.applyDecision(ctx, s.governor.Check(ctx), false)
}

// Pause keeps the prompt readable while the user is being asked and restores
// the display otherwise.
func (s *DarkScreenSession) Pause(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "session")
	if !s.active(ctx, "pause") {
		return
	}

	if s.promptPhase {
		s.controller.ApplyReadableMinimum(ctx)
		return
	}
	s.controller.Restore(ctx)
}

// Destroy restores the display unconditionally, hides the prompt, releases the
// keep-screen-on request and ignores every later callback.
func (s *DarkScreenSession) Destroy(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "session")
	log := logging.FromContext(ctx)

	s.controller.Restore(ctx)
	if s.prompt.IsPromptVisible() {
		s.prompt.HidePrompt(ctx)
	}

	if s.idle != nil && s.inhibited {
		if err := s.idle.Uninhibit(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to release keep screen on")
		}
		s.inhibited = false
	}

	s.destroyed = true
	s.promptPhase = false
	s.pending = 0
	log.Debug().Msg("session destroyed")
}

// Status returns a diagnostics snapshot.
func (s *DarkScreenSession) Status(ctx context.Context) SessionStatus {
	return SessionStatus{
		Created:       s.created,
		Destroyed:     s.destroyed,
		Dimming:       s.controller.State(),
		Governor:      s.governor.State(),
		Budget:        s.governor.Budget(ctx),
		PromptPhase:   s.promptPhase,
		PromptVisible: s.prompt.IsPromptVisible(),
		KeepScreenOn:  s.inhibited,
		Readings:      s.controller.Readings(ctx),
		Snapshot:      s.controller.Snapshot(),
	}
}

// PromptPhase reports whether the user is being asked or is in the settings
// surface.
func (s *DarkScreenSession) PromptPhase() bool {
	return s.promptPhase
}

func (s *DarkScreenSession) applyDecision(ctx context.Context, decision entity.PermissionDecision, reprompt bool) {
	switch decision {
	case entity.DecisionGranted:
		s.promptPhase = false
		if s.prompt.IsPromptVisible() {
			s.prompt.HidePrompt(ctx)
		}
		s.applyCombined(ctx)
	case entity.DecisionPrompt:
		s.promptPhase = true
		s.controller.ApplyReadableMinimum(ctx)
		s.showPrompt(ctx, reprompt)
	default:
		s.promptPhase = false
		s.controller.ApplyWindowOnlyDimming(ctx)
	}
}

func (s *DarkScreenSession) applyCombined(ctx context.Context) {
	if state := s.controller.ApplyCombinedDimming(ctx); !state.UsesSystemControl() {
		s.notify(ctx, entity.NoticeLimitedControl, port.NotificationWarning)
	}
}

func (s *DarkScreenSession) showPrompt(ctx context.Context, reprompt bool) {
	gen := s.nextRequest()
	req := entity.NewPromptRequest(reprompt)
	ctx = logging.WithRequest(ctx, gen)

	logging.FromContext(ctx).Debug().
		Bool("reprompt", reprompt).
		Msg("showing permission prompt")

	s.prompt.ShowPrompt(ctx, req, func(action entity.PromptAction) {
		s.onPromptResult(ctx, gen, action)
	})
}

func (s *DarkScreenSession) onPromptResult(ctx context.Context, gen uint64, action entity.PromptAction) {
	if !s.accept(ctx, gen, "prompt result") {
		return
	}
	log := logging.FromContext(ctx)

	if action == entity.PromptActionGrant {
		if err := s.governor.BeginExternalRequest(ctx); err != nil {
			return
		}
		s.promptPhase = true

		next := s.nextRequest()
		ctx = logging.WithRequest(ctx, next)
		err := s.settings.OpenWriteSettings(ctx, func() {
			s.onSettingsReturn(ctx, next)
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to open settings, treating as denial")
			s.onSettingsReturn(ctx, next)
		}
		return
	}

	decision, err := s.governor.Dismiss(ctx)
	if err != nil {
		return
	}
	s.promptPhase = false
	if decision == entity.DecisionGranted {
		s.applyCombined(ctx)
		return
	}
	s.controller.ApplyWindowOnlyDimming(ctx)
}

func (s *DarkScreenSession) onSettingsReturn(ctx context.Context, gen uint64) {
	if !s.accept(ctx, gen, "settings return") {
		return
	}

	decision, err := s.governor.CompleteExternalRequest(ctx)
	if err != nil {
		return
	}

	switch decision {
	case entity.DecisionGranted:
		s.applyDecision(ctx, decision, false)
		s.notify(ctx, entity.NoticeGranted, port.NotificationSuccess)
	case entity.DecisionPrompt:
		s.applyDecision(ctx, decision, true)
	default:
		s.applyDecision(ctx, decision, false)
		s.notify(ctx, entity.NoticeDenied, port.NotificationWarning)
	}
}

// accept consumes the pending request if gen matches it.
func (s *DarkScreenSession) accept(ctx context.Context, gen uint64, what string) bool {
	if s.destroyed || gen == 0 || gen != s.pending {
		logging.FromContext(ctx).Debug().
			Str("callback", what).
			Uint64("request", gen).
			Uint64("pending", s.pending).
			Bool("destroyed", s.destroyed).
			Msg("ignoring stale callback")
		return false
	}
	s.pending = 0
	return true
}

func (s *DarkScreenSession) nextRequest() uint64 {
	s.generation++
	s.pending = s.generation
	return s.generation
}

func (s *DarkScreenSession) active(ctx context.Context, event string) bool {
	if !s.created || s.destroyed {
		logging.FromContext(ctx).Debug().Str("event", event).Msg("ignoring lifecycle event outside a live session")
		return false
	}
	return true
}

func (s *DarkScreenSession) notify(ctx context.Context, message string, notifType port.NotificationType) {
	if s.notifier == nil {
		return
	}
	s.notifier.Show(ctx, message, notifType, 0)
}

package usecase

import (
	"context"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/domain/entity"
	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/bnema/darkscreen/internal/logging"
)

// PermissionGovernor decides whether elevated brightness control is held,
// whether the user may be asked for it, and accounts for every prompt and
// denial against the session and lifetime budgets.
//
// The session prompt count lives in memory and is reset by ResetSession. The
// lifetime denial count and the launch prompt count are persisted through the
// CounterStore.
type PermissionGovernor struct {
	store      *CounterStore
	capability port.WriteCapability

	state          entity.GovernorState
	sessionPrompts int

	// launchCheckPending is true until the first Check after ResetSession.
	launchCheckPending bool
}

// NewPermissionGovernor creates a governor in the UNCHECKED state.
func NewPermissionGovernor(store *CounterStore, capability port.WriteCapability) *PermissionGovernor {
	return &PermissionGovernor{
		store:              store,
		capability:         capability,
		state:              entity.GovernorUnchecked,
		launchCheckPending: true,
	}
}

// ResetSession starts a new dark screen session.
func (g *PermissionGovernor) ResetSession(ctx context.Context) {
	g.sessionPrompts = 0
	g.launchCheckPending = true
	g.transition(ctx, entity.GovernorUnchecked)
}

// State returns the current state.
func (g *PermissionGovernor) State() entity.GovernorState {
	return g.state
}

// HasPermission queries the write capability directly.
func (g *PermissionGovernor) HasPermission(ctx context.Context) bool {
	return g.capability.CanWrite(ctx)
}

// Budget returns the current prompt budget. Unreadable persisted counters are
// logged and reported at their caps, so a broken store never grants prompts.
func (g *PermissionGovernor) Budget(ctx context.Context) entity.PromptBudget {
	log := logging.FromContext(ctx)

	denials, err := g.store.TotalDenials(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read total denials")
		denials = entity.MaxTotalDenials
	}
	launches, err := g.store.InitialLaunchPrompts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read initial launch prompts")
		launches = entity.MaxInitialLaunchPrompts
	}

	return entity.PromptBudget{
		TotalDenials:         denials,
		InitialLaunchPrompts: launches,
		SessionPrompts:       g.sessionPrompts,
	}
}

// Check decides what to do next. When the capability is held every counter is
// reset. Otherwise a prompt is granted from the budget, counting it against the
// session and, for the first check of a session, against the launch budget.
func (g *PermissionGovernor) Check(ctx context.Context) entity.PermissionDecision {
	g.transition(ctx, entity.GovernorChecking)

	launchCheck := g.launchCheckPending
	g.launchCheckPending = false

	if g.capability.CanWrite(ctx) {
		g.grant(ctx)
		return entity.DecisionGranted
	}

	budget := g.Budget(ctx)
	if !budget.CanPrompt(launchCheck) {
		logging.FromContext(ctx).Debug().
			Int("total_denials", budget.TotalDenials).
			Int("initial_launch_prompts", budget.InitialLaunchPrompts).
			Int("session_prompts", budget.SessionPrompts).
			Bool("launch_check", launchCheck).
			Msg("prompt budget exhausted")
		g.transition(ctx, entity.GovernorExhausted)
		return entity.DecisionExhausted
	}

	g.sessionPrompts++
	if launchCheck {
		if _, err := g.store.IncrementInitialLaunchPrompts(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to record launch prompt")
		}
	}

	g.transition(ctx, entity.GovernorPrompting)
	return entity.DecisionPrompt
}

// BeginExternalRequest records that the user left for the settings surface.
func (g *PermissionGovernor) BeginExternalRequest(ctx context.Context) error {
	if g.state != entity.GovernorPrompting {
		return g.invalidTransition(ctx, "begin external request")
	}
	g.transition(ctx, entity.GovernorAwaitingExternal)
	return nil
}

// CompleteExternalRequest handles the return from the settings surface. The
// capability is re-checked directly since the surface reports no result. A
// denial is counted exactly once before deciding whether to prompt again.
// Deliveries outside AWAITING_EXTERNAL_RESULT are rejected and change nothing.
func (g *PermissionGovernor) CompleteExternalRequest(ctx context.Context) (entity.PermissionDecision, error) {
	if g.state != entity.GovernorAwaitingExternal {
		return "", g.invalidTransition(ctx, "complete external request")
	}

	if g.capability.CanWrite(ctx) {
		g.grant(ctx)
		return entity.DecisionGranted, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("code", apperrors.CodePermissionExternalResultAmbiguous).
		Msg("returned from settings without capability, counting as denial")

	if _, err := g.store.IncrementTotalDenials(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to record denial")
	}
	return g.Check(ctx), nil
}

// Dismiss handles a prompt that went away without its action. It is not a
// denial: the lifetime count is left alone.
func (g *PermissionGovernor) Dismiss(ctx context.Context) (entity.PermissionDecision, error) {
	if g.state != entity.GovernorPrompting {
		return "", g.invalidTransition(ctx, "dismiss")
	}

	if g.capability.CanWrite(ctx) {
		g.grant(ctx)
		return entity.DecisionGranted, nil
	}

	g.transition(ctx, entity.GovernorExhausted)
	return entity.DecisionExhausted, nil
}

func (g *PermissionGovernor) grant(ctx context.Context) {
	g.sessionPrompts = 0
	if err := g.store.ResetCounters(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reset prompt counters")
	}
	g.transition(ctx, entity.GovernorGranted)
}

func (g *PermissionGovernor) invalidTransition(ctx context.Context, op string) error {
	logging.FromContext(ctx).Debug().
		Str("op", op).
		Str("state", string(g.state)).
		Msg("ignoring permission operation in current state")
	return apperrors.New(apperrors.CodePermissionInvalidTransition, op+" not allowed in state "+string(g.state))
}

func (g *PermissionGovernor) transition(ctx context.Context, next entity.GovernorState) {
	if g.state == next {
		return
	}
	logging.FromContext(ctx).Debug().
		Str("from", string(g.state)).
		Str("to", string(next)).
		Msg("permission state transition")
	g.state = next
}

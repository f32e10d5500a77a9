package port

import (
	"context"

	"github.com/bnema/darkscreen/internal/domain/entity"
)

// PermissionPromptPresenter shows the non-modal prompt asking the user to grant
// elevated brightness control.
type PermissionPromptPresenter interface {
	// ShowPrompt displays req. onResult is invoked at most once, with
	// entity.PromptActionGrant when the user picks the action or
	// entity.PromptActionDismissed when the prompt goes away without it.
	ShowPrompt(ctx context.Context, req entity.PromptRequest, onResult func(action entity.PromptAction))

	// HidePrompt removes a visible prompt without invoking its callback.
	HidePrompt(ctx context.Context)

	// IsPromptVisible reports whether a prompt is on screen.
	IsPromptVisible() bool
}

// SettingsNavigator opens the external surface where the user grants or
// denies the write capability.
type SettingsNavigator interface {
	// OpenWriteSettings navigates away. onReturn is invoked once when the user
	// comes back, whatever they chose there.
	OpenWriteSettings(ctx context.Context, onReturn func()) error
}

package entity_test

import (
	"testing"

	"github.com/bnema/darkscreen/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPromptBudget_CanPrompt(t *testing.T) {
	tests := []struct {
		name         string
		budget       entity.PromptBudget
		launchPrompt bool
		expected     bool
	}{
		{"fresh install launch prompt", entity.PromptBudget{}, true, true},
		{"session cap reached", entity.PromptBudget{SessionPrompts: 3}, false, false},
		{"lifetime cap reached", entity.PromptBudget{TotalDenials: 9}, false, false},
		{"lifetime cap reached on launch", entity.PromptBudget{TotalDenials: 9}, true, false},
		{"launch cap blocks launch prompt", entity.PromptBudget{InitialLaunchPrompts: 3}, true, false},
		{"launch cap ignored for reprompt", entity.PromptBudget{InitialLaunchPrompts: 3, SessionPrompts: 1}, false, true},
		{"one below every cap", entity.PromptBudget{TotalDenials: 8, InitialLaunchPrompts: 2, SessionPrompts: 2}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.budget.CanPrompt(tt.launchPrompt))
		})
	}
}

func TestPromptBudget_DenialsRemaining(t *testing.T) {
	assert.Equal(t, 9, entity.PromptBudget{}.DenialsRemaining())
	assert.Equal(t, 1, entity.PromptBudget{TotalDenials: 8}.DenialsRemaining())
	assert.Equal(t, 0, entity.PromptBudget{TotalDenials: 12}.DenialsRemaining())
}

func TestClampCounter(t *testing.T) {
	assert.Equal(t, 0, entity.ClampCounter(-4, entity.MaxTotalDenials))
	assert.Equal(t, 5, entity.ClampCounter(5, entity.MaxTotalDenials))
	assert.Equal(t, 9, entity.ClampCounter(40, entity.MaxTotalDenials))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
)

func noopHandler(_ context.Context, _ *domain.TextState) (domain.RuleOutcome, error) {
	return domain.RuleOutcome{Passed: true}, nil
}

func testRule(id string, cat domain.RuleCategory, rank int) domain.RuleDefinition {
	return domain.RuleDefinition{
		ID:        id,
		Category:  cat,
		OrderRank: rank,
		Enabled:   true,
		Handler:   noopHandler,
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testRule("a", domain.CategoryValidation, 10)))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testRule("a", domain.CategoryValidation, 10)))

	err := r.Register(testRule("a", domain.CategorySanitization, 20))
	assert.ErrorIs(t, err, domain.ErrDuplicateRule)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Register_UnknownCategory(t *testing.T) {
	r := NewRegistry()

	rule := testRule("a", domain.RuleCategory("postprocess"), 10)
	assert.ErrorIs(t, r.Register(rule), domain.ErrUnknownCategory)
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := NewRegistry()

	t.Run("empty id", func(t *testing.T) {
		err := r.Register(testRule("", domain.CategoryValidation, 10))
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("nil handler", func(t *testing.T) {
		rule := testRule("a", domain.CategoryValidation, 10)
		rule.Handler = nil
		assert.ErrorIs(t, r.Register(rule), domain.ErrInvalidConfig)
	})
}

func TestRegistry_OrderedRules(t *testing.T) {
	r := NewRegistry()

	// Registered out of order on purpose.
	require.NoError(t, r.Register(testRule("intent-1", domain.CategoryIntent, 10)))
	require.NoError(t, r.Register(testRule("san-2", domain.CategorySanitization, 20)))
	require.NoError(t, r.Register(testRule("san-1", domain.CategorySanitization, 10)))
	require.NoError(t, r.Register(testRule("val-1", domain.CategoryValidation, 10)))

	ids := make([]string, 0)
	for _, rule := range r.OrderedRules() {
		ids = append(ids, rule.ID)
	}
	assert.Equal(t, []string{"val-1", "san-1", "san-2", "intent-1"}, ids)
}

func TestRegistry_OrderedRules_SkipsDisabled(t *testing.T) {
	r := NewRegistry()

	disabled := testRule("off", domain.CategoryValidation, 10)
	disabled.Enabled = false
	require.NoError(t, r.Register(disabled))
	require.NoError(t, r.Register(testRule("on", domain.CategoryValidation, 20)))

	rules := r.OrderedRules()
	require.Len(t, rules, 1)
	assert.Equal(t, "on", rules[0].ID)
}

func TestRegistry_OrderedRules_CategoryFilter(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testRule("val-1", domain.CategoryValidation, 10)))
	require.NoError(t, r.Register(testRule("san-1", domain.CategorySanitization, 10)))

	rules := r.OrderedRules(domain.CategorySanitization)
	require.Len(t, rules, 1)
	assert.Equal(t, "san-1", rules[0].ID)
}

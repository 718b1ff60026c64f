package services

import (
	"fmt"
	"sort"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
)

// Registry holds the rule definitions for one pipeline configuration.
// Registration happens once at construction time; after that the
// registry is read-only and safe for concurrent readers.
type Registry struct {
	rules map[string]domain.RuleDefinition
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]domain.RuleDefinition)}
}

// Register adds a rule definition. It fails if the ID is already
// present, the category is not a member of the closed set, or the
// definition carries no handler.
func (r *Registry) Register(rule domain.RuleDefinition) error {
	if rule.ID == "" {
		return fmt.Errorf("%w: rule ID is empty", domain.ErrInvalidConfig)
	}
	if !rule.Category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, rule.Category)
	}
	if rule.Handler == nil {
		return fmt.Errorf("%w: rule %q has no handler", domain.ErrInvalidConfig, rule.ID)
	}
	if _, exists := r.rules[rule.ID]; exists {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateRule, rule.ID)
	}
	r.rules[rule.ID] = rule
	return nil
}

// Len returns the number of registered rules, enabled or not.
func (r *Registry) Len() int {
	return len(r.rules)
}

// OrderedRules returns the enabled rules in execution order: category
// phase first, then ascending order rank within the category. When
// categories are given, only rules in those categories are returned.
func (r *Registry) OrderedRules(categories ...domain.RuleCategory) []domain.RuleDefinition {
	wanted := func(domain.RuleCategory) bool { return true }
	if len(categories) > 0 {
		set := make(map[domain.RuleCategory]bool, len(categories))
		for _, c := range categories {
			set[c] = true
		}
		wanted = func(c domain.RuleCategory) bool { return set[c] }
	}

	out := make([]domain.RuleDefinition, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.Enabled && wanted(rule.Category) {
			out = append(out, rule)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category.Phase() < out[j].Category.Phase()
		}
		if out[i].OrderRank != out[j].OrderRank {
			return out[i].OrderRank < out[j].OrderRank
		}
		return out[i].ID < out[j].ID
	})
	return out
}

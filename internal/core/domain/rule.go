package domain

import "context"

// RuleCategory identifies the pipeline phase a rule belongs to.
// Categories execute in the fixed order returned by CategoryOrder,
// regardless of the order ranks of the rules inside them.
type RuleCategory string

const (
	// CategoryValidation checks preconditions on the raw text.
	CategoryValidation RuleCategory = "validation"
	// CategoryNormalization standardises unicode and whitespace.
	CategoryNormalization RuleCategory = "normalization"
	// CategorySanitization removes noise and masks sensitive content.
	CategorySanitization RuleCategory = "sanitization"
	// CategoryStructuring segments text into sentences.
	CategoryStructuring RuleCategory = "structuring"
	// CategoryChunking splits oversized text into token-bounded chunks.
	CategoryChunking RuleCategory = "chunking"
	// CategoryIntent detects questions and classifies their domain.
	CategoryIntent RuleCategory = "intent"
)

// categoryOrder fixes the pipeline phase sequence. Sanitizers must see
// normalised text, segmentation must see sanitised text, and chunking
// and intent detection run last on the structured text.
var categoryOrder = []RuleCategory{
	CategoryValidation,
	CategoryNormalization,
	CategorySanitization,
	CategoryStructuring,
	CategoryChunking,
	CategoryIntent,
}

// CategoryOrder returns the pipeline phases in execution order.
func CategoryOrder() []RuleCategory {
	out := make([]RuleCategory, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Phase returns the execution position of the category, or -1 if the
// category is unknown.
func (c RuleCategory) Phase() int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return -1
}

// Valid reports whether the category is a member of the closed set.
func (c RuleCategory) Valid() bool {
	return c.Phase() >= 0
}

// RuleHandler executes one rule against the current text state.
// Handlers are pure over the state they are given: they may replace
// state.Current but must not retain the state beyond the call.
// Every invocation yields exactly one outcome or an error; errors are
// infrastructure failures and abort the pipeline.
type RuleHandler func(ctx context.Context, state *TextState) (RuleOutcome, error)

// RuleDefinition describes a registered rule: its identity, where it
// sits in the pipeline, and the handler that implements it.
type RuleDefinition struct {
	// ID is the unique rule identifier (e.g., "non-empty", "mask-pii").
	ID string

	// Category is the pipeline phase this rule belongs to.
	Category RuleCategory

	// Description explains what the rule does, for trace output.
	Description string

	// OrderRank orders rules within their category, ascending.
	OrderRank int

	// Enabled excludes the rule from dispatch when false.
	Enabled bool

	// Fatal marks a rule whose failure short-circuits the pipeline.
	// Non-fatal failures are recorded and execution continues.
	Fatal bool

	// Handler implements the rule.
	Handler RuleHandler
}

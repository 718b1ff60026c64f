package driving

import (
	"context"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
)

// Pipeline runs raw text through the configured rule set and returns
// the full per-rule trace.
type Pipeline interface {
	// Run executes the pipeline on raw text. A fatal validation
	// failure is reported inside the result, not as an error; errors
	// are reserved for infrastructure failures and misconfiguration.
	Run(ctx context.Context, raw string) (*domain.PipelineResult, error)

	// Rules returns the enabled rules in execution order, for
	// inspection by drivers.
	Rules() []domain.RuleDefinition
}

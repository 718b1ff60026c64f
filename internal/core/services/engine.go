package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driving"
	"github.com/prepline-labs/prepline-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.Pipeline = (*Engine)(nil)

// Config carries the options recognised by the rule engine.
type Config struct {
	// MinWords is the word-count floor checked by the min-words rule.
	MinWords int

	// TokenLimit is the maximum tokens per chunk; text above this
	// limit is chunked.
	TokenLimit int

	// ChunkOverlap is the number of tokens shared between consecutive
	// chunks. Must stay below TokenLimit.
	ChunkOverlap int

	// DomainKeywords maps a domain name to the keywords that vote for
	// it during question classification.
	DomainKeywords map[string][]string
}

// Validate checks the configuration before any rule executes.
// Overlap-versus-limit bounds are deliberately left to the chunking
// phase, which reports them as a chunk configuration error.
func (c Config) Validate() error {
	if c.MinWords < 0 {
		return fmt.Errorf("%w: min words %d is negative", domain.ErrInvalidConfig, c.MinWords)
	}
	if c.TokenLimit <= 0 {
		return fmt.Errorf("%w: token limit %d must be positive", domain.ErrInvalidConfig, c.TokenLimit)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap %d is negative", domain.ErrInvalidConfig, c.ChunkOverlap)
	}
	return nil
}

// DefaultConfig returns the stock configuration: three-word minimum,
// 512-token chunks with 50 tokens of overlap, and the built-in
// finance/account/policy keyword table.
func DefaultConfig() Config {
	return Config{
		MinWords:     3,
		TokenLimit:   512,
		ChunkOverlap: 50,
		DomainKeywords: map[string][]string{
			"finance": {"refund", "payment", "pricing", "invoice"},
			"account": {"login", "password", "account", "signup"},
			"policy":  {"policy", "terms", "conditions", "privacy"},
		},
	}
}

// Dependencies bundles the text-primitive capabilities the engine
// consumes. All fields are required.
type Dependencies struct {
	// Whitespace normalises unicode and whitespace.
	Whitespace driven.Normaliser

	// URLs removes URLs and web artifacts.
	URLs driven.Stripper

	// HTML removes HTML and markup tags.
	HTML driven.Stripper

	// PII masks personally identifiable information.
	PII driven.Masker

	// Profanity masks offensive language.
	Profanity driven.Masker

	// Sentences segments text into sentences.
	Sentences driven.Segmenter

	// Tokenizer measures and splits text in model tokens.
	Tokenizer driven.Tokenizer
}

func (d Dependencies) validate() error {
	missing := ""
	switch {
	case d.Whitespace == nil:
		missing = "whitespace normaliser"
	case d.URLs == nil:
		missing = "URL stripper"
	case d.HTML == nil:
		missing = "HTML stripper"
	case d.PII == nil:
		missing = "PII masker"
	case d.Profanity == nil:
		missing = "profanity masker"
	case d.Sentences == nil:
		missing = "sentence segmenter"
	case d.Tokenizer == nil:
		missing = "tokenizer"
	}
	if missing != "" {
		return fmt.Errorf("%w: missing %s", domain.ErrInvalidConfig, missing)
	}
	return nil
}

// Engine is the rule orchestrator. It owns a registry built from its
// configuration and dispatches each Run invocation through the enabled
// rules in phase order.
type Engine struct {
	cfg        Config
	deps       Dependencies
	registry   *Registry
	chunker    *Chunker
	classifier *Classifier
}

// NewEngine validates the configuration and dependencies, then builds
// the engine with the built-in rule set registered. Configuration
// errors surface here, before any text is processed.
func NewEngine(cfg Config, deps Dependencies) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:        cfg,
		deps:       deps,
		registry:   NewRegistry(),
		chunker:    NewChunker(deps.Tokenizer),
		classifier: NewClassifier(),
	}
	if err := e.registerBuiltinRules(); err != nil {
		return nil, err
	}
	return e, nil
}

// Run executes the pipeline on raw text and returns the ordered rule
// trace. Fatal rule failures short-circuit the remaining rules and are
// reported inside the result; errors are infrastructure failures.
func (e *Engine) Run(ctx context.Context, raw string) (*domain.PipelineResult, error) {
	state := domain.NewTextState(raw)
	result := &domain.PipelineResult{RunID: uuid.New().String()}

	logger.Section("pipeline run " + result.RunID)

	for _, rule := range e.registry.OrderedRules() {
		outcome, err := rule.Handler(ctx, state)
		if err != nil {
			logger.Error("rule %s: %v", rule.ID, err)
			return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
		}

		result.Outcomes = append(result.Outcomes, outcome)
		liftOutcome(result, outcome)
		logger.Debug("rule %s: passed=%v", rule.ID, outcome.Passed)

		if !outcome.Passed {
			if rule.Fatal {
				logger.Info("rule %s failed fatally, short-circuiting", rule.ID)
				break
			}
			logger.Warn("rule %s failed, continuing", rule.ID)
		}
	}

	result.FinalText = state.Current
	return result, nil
}

// Rules returns the enabled rules in execution order.
func (e *Engine) Rules() []domain.RuleDefinition {
	return e.registry.OrderedRules()
}

// liftOutcome promotes typed metadata values onto the result, so
// callers get chunks and classification without digging through maps.
func liftOutcome(result *domain.PipelineResult, outcome domain.RuleOutcome) {
	if chunks, ok := outcome.Metadata[metaChunks].([]domain.Chunk); ok {
		result.Chunks = chunks
	}
	if cls, ok := outcome.Metadata[metaClassification].(domain.DomainClassification); ok {
		result.Classification = &cls
	}
}

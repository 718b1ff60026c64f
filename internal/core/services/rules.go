package services

import (
	"context"
	"strings"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Built-in rule IDs, in pipeline order.
const (
	RuleNonEmpty            = "non-empty"
	RuleMinWords            = "min-words"
	RuleNormalizeWhitespace = "normalize-whitespace"
	RuleStripURLs           = "strip-urls"
	RuleStripHTML           = "strip-html"
	RuleMaskPII             = "mask-pii"
	RuleMaskProfanity       = "mask-profanity"
	RuleSplitSentences      = "split-sentences"
	RuleChunkByTokens       = "chunk-by-tokens"
	RuleClassifyDomain      = "classify-domain"
)

// Metadata keys shared between rule handlers and result consumers.
const (
	metaError          = "error"
	metaWordCount      = "word_count"
	metaMinWords       = "min_words"
	metaChanged        = "changed"
	metaSentences      = "sentences"
	metaSentenceCount  = "sentence_count"
	metaTokenCount     = "token_count"
	metaTokenLimit     = "token_limit"
	metaChunked        = "chunked"
	metaChunkCount     = "chunk_count"
	metaChunks         = "chunks"
	metaIsQuestion     = "is_question"
	metaDomain         = "domain"
	metaClassification = "classification"
)

// registerBuiltinRules installs the standard rule set. The sanitization
// sub-order is mandatory: URL and markup removal run before the
// maskers so masked spans are never embedded inside tags or link text,
// and everything runs on normalised whitespace.
func (e *Engine) registerBuiltinRules() error {
	rules := []domain.RuleDefinition{
		{
			ID:          RuleNonEmpty,
			Category:    domain.CategoryValidation,
			Description: "Text must contain at least one non-whitespace character",
			OrderRank:   10,
			Enabled:     true,
			Fatal:       true,
			Handler:     e.ruleNonEmpty,
		},
		{
			ID:          RuleMinWords,
			Category:    domain.CategoryValidation,
			Description: "Text should meet the configured minimum word count",
			OrderRank:   20,
			Enabled:     true,
			Handler:     e.ruleMinWords,
		},
		{
			ID:          RuleNormalizeWhitespace,
			Category:    domain.CategoryNormalization,
			Description: "Normalise unicode, invisible characters, and whitespace",
			OrderRank:   10,
			Enabled:     true,
			Handler:     e.normaliseRule(RuleNormalizeWhitespace, e.deps.Whitespace),
		},
		{
			ID:          RuleStripURLs,
			Category:    domain.CategorySanitization,
			Description: "Remove URLs and web artifacts",
			OrderRank:   10,
			Enabled:     true,
			Handler:     e.stripRule(RuleStripURLs, e.deps.URLs),
		},
		{
			ID:          RuleStripHTML,
			Category:    domain.CategorySanitization,
			Description: "Remove HTML and markup tags",
			OrderRank:   20,
			Enabled:     true,
			Handler:     e.stripRule(RuleStripHTML, e.deps.HTML),
		},
		{
			ID:          RuleMaskPII,
			Category:    domain.CategorySanitization,
			Description: "Mask emails and phone numbers",
			OrderRank:   30,
			Enabled:     true,
			Handler:     e.maskRule(RuleMaskPII, e.deps.PII),
		},
		{
			ID:          RuleMaskProfanity,
			Category:    domain.CategorySanitization,
			Description: "Mask offensive and abusive words",
			OrderRank:   40,
			Enabled:     true,
			Handler:     e.maskRule(RuleMaskProfanity, e.deps.Profanity),
		},
		{
			ID:          RuleSplitSentences,
			Category:    domain.CategoryStructuring,
			Description: "Segment into sentences and normalise boundaries",
			OrderRank:   10,
			Enabled:     true,
			Handler:     e.ruleSplitSentences,
		},
		{
			ID:          RuleChunkByTokens,
			Category:    domain.CategoryChunking,
			Description: "Split text exceeding the token limit into overlapping chunks",
			OrderRank:   10,
			Enabled:     true,
			Handler:     e.ruleChunkByTokens,
		},
		{
			ID:          RuleClassifyDomain,
			Category:    domain.CategoryIntent,
			Description: "Classify question intent into a keyword domain",
			OrderRank:   10,
			Enabled:     true,
			Handler:     e.ruleClassifyDomain,
		},
	}

	for _, rule := range rules {
		if err := e.registry.Register(rule); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) ruleNonEmpty(_ context.Context, state *domain.TextState) (domain.RuleOutcome, error) {
	if strings.TrimSpace(state.Current) == "" {
		return domain.RuleOutcome{
			RuleID:   RuleNonEmpty,
			Passed:   false,
			Metadata: map[string]any{metaError: domain.ErrEmptyText.Error()},
		}, nil
	}
	return domain.RuleOutcome{RuleID: RuleNonEmpty, Passed: true}, nil
}

func (e *Engine) ruleMinWords(_ context.Context, state *domain.TextState) (domain.RuleOutcome, error) {
	count := state.WordCount()
	return domain.RuleOutcome{
		RuleID: RuleMinWords,
		Passed: count >= e.cfg.MinWords,
		Metadata: map[string]any{
			metaWordCount: count,
			metaMinWords:  e.cfg.MinWords,
		},
	}, nil
}

// normaliseRule adapts a Normaliser into a transformation rule handler.
func (e *Engine) normaliseRule(id string, normaliser driven.Normaliser) domain.RuleHandler {
	return e.transformRule(id, func(ctx context.Context, text string) (string, error) {
		return normaliser.Normalise(ctx, text)
	})
}

// stripRule adapts a Stripper into a transformation rule handler.
func (e *Engine) stripRule(id string, stripper driven.Stripper) domain.RuleHandler {
	return e.transformRule(id, func(ctx context.Context, text string) (string, error) {
		return stripper.Strip(ctx, text)
	})
}

// maskRule adapts a Masker into a transformation rule handler.
func (e *Engine) maskRule(id string, masker driven.Masker) domain.RuleHandler {
	return e.transformRule(id, func(ctx context.Context, text string) (string, error) {
		return masker.Mask(ctx, text)
	})
}

// transformRule wraps a text transformation as a rule handler: the
// output replaces the working text and the outcome records whether
// anything changed.
func (e *Engine) transformRule(id string, fn func(ctx context.Context, text string) (string, error)) domain.RuleHandler {
	return func(ctx context.Context, state *domain.TextState) (domain.RuleOutcome, error) {
		out, err := fn(ctx, state.Current)
		if err != nil {
			return domain.RuleOutcome{}, err
		}
		changed := out != state.Current
		state.Current = out
		return domain.RuleOutcome{
			RuleID:     id,
			Passed:     true,
			OutputText: out,
			Metadata:   map[string]any{metaChanged: changed},
		}, nil
	}
}

func (e *Engine) ruleSplitSentences(ctx context.Context, state *domain.TextState) (domain.RuleOutcome, error) {
	sentences, err := e.deps.Sentences.Segment(ctx, state.Current)
	if err != nil {
		return domain.RuleOutcome{}, err
	}

	normalised := make([]string, len(sentences))
	for i, s := range sentences {
		normalised[i] = ensureTerminalPunctuation(strings.TrimSpace(s))
	}
	state.Current = strings.Join(normalised, " ")

	return domain.RuleOutcome{
		RuleID:     RuleSplitSentences,
		Passed:     true,
		OutputText: state.Current,
		Metadata: map[string]any{
			metaSentences:     normalised,
			metaSentenceCount: len(normalised),
		},
	}, nil
}

// ensureTerminalPunctuation standardises sentence boundaries: every
// sentence ends in '.', '!' or '?'.
func ensureTerminalPunctuation(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func (e *Engine) ruleChunkByTokens(ctx context.Context, state *domain.TextState) (domain.RuleOutcome, error) {
	count, err := e.deps.Tokenizer.Count(ctx, state.Current)
	if err != nil {
		return domain.RuleOutcome{}, err
	}
	state.TokenCount = count

	metadata := map[string]any{
		metaTokenCount: count,
		metaTokenLimit: e.cfg.TokenLimit,
		metaChunked:    false,
	}

	if count <= e.cfg.TokenLimit {
		return domain.RuleOutcome{RuleID: RuleChunkByTokens, Passed: true, Metadata: metadata}, nil
	}

	chunks, err := e.chunker.Chunk(ctx, state.Current, e.cfg.TokenLimit, e.cfg.ChunkOverlap)
	if err != nil {
		return domain.RuleOutcome{}, err
	}

	metadata[metaChunked] = true
	metadata[metaChunkCount] = len(chunks)
	metadata[metaChunks] = chunks

	return domain.RuleOutcome{RuleID: RuleChunkByTokens, Passed: true, Metadata: metadata}, nil
}

func (e *Engine) ruleClassifyDomain(_ context.Context, state *domain.TextState) (domain.RuleOutcome, error) {
	if !state.IsQuestion() {
		return domain.RuleOutcome{
			RuleID:   RuleClassifyDomain,
			Passed:   true,
			Metadata: map[string]any{metaIsQuestion: false},
		}, nil
	}

	cls := e.classifier.Classify(state.Current, e.cfg.DomainKeywords)
	return domain.RuleOutcome{
		RuleID: RuleClassifyDomain,
		Passed: true,
		Metadata: map[string]any{
			metaIsQuestion:     true,
			metaDomain:         cls.Domain,
			metaClassification: cls,
		},
	}, nil
}

package driven

import (
	"context"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
)

// Tokenizer measures text the way the downstream model will see it.
// The chunker depends on spans carrying byte offsets so chunk text can
// be cut from the original string without inventing separators.
type Tokenizer interface {
	// Tokenize returns the token spans of the text, in order. For
	// every span s, text[s.Start:s.End] is the exact source of the
	// token. Spans are ordered and non-overlapping; text between
	// consecutive spans (e.g. whitespace) belongs to neither token.
	Tokenize(ctx context.Context, text string) ([]domain.TokenSpan, error)

	// Count returns the number of tokens in the text.
	Count(ctx context.Context, text string) (int, error)
}

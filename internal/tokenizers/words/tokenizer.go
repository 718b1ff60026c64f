// Package words provides a deterministic, dependency-free Tokenizer
// that treats each whitespace-separated word as one token. It is the
// offline default and the reference tokenizer for tests; token counts
// are word counts, not model-accurate BPE counts.
package words

import (
	"context"
	"strings"
	"unicode"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Tokenizer implements the interface.
var _ driven.Tokenizer = (*Tokenizer)(nil)

// Tokenizer splits text into word tokens with byte offsets.
type Tokenizer struct{}

// New creates a word tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns one span per whitespace-separated word. For every
// span s, text[s.Start:s.End] == s.Text.
func (t *Tokenizer) Tokenize(_ context.Context, text string) ([]domain.TokenSpan, error) {
	var spans []domain.TokenSpan
	start := -1

	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, domain.TokenSpan{Text: text[start:i], Start: start, End: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, domain.TokenSpan{Text: text[start:], Start: start, End: len(text)})
	}
	return spans, nil
}

// Count returns the number of word tokens.
func (t *Tokenizer) Count(_ context.Context, text string) (int, error) {
	return len(strings.Fields(text)), nil
}

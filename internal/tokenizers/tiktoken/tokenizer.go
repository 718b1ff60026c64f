// Package tiktoken provides a Tokenizer implementation backed by the
// tiktoken BPE vocabularies, so chunk boundaries line up with the
// tokens an OpenAI-family model will actually see.
package tiktoken

import (
	"context"
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Tokenizer implements the interface.
var _ driven.Tokenizer = (*Tokenizer)(nil)

// DefaultEncoding is the BPE vocabulary used unless overridden.
const DefaultEncoding = "cl100k_base"

// Tokenizer adapts a tiktoken encoding to the Tokenizer port.
type Tokenizer struct {
	encoding string
	enc      *tiktoken.Tiktoken
}

// New creates a tokenizer with the default encoding. The vocabulary is
// loaded (and cached) by tiktoken-go; construction fails when it is
// unavailable.
func New() (*Tokenizer, error) {
	return NewWithEncoding(DefaultEncoding)
}

// NewWithEncoding creates a tokenizer for a named tiktoken encoding.
func NewWithEncoding(encoding string) (*Tokenizer, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &Tokenizer{encoding: encoding, enc: enc}, nil
}

// Encoding returns the name of the loaded BPE vocabulary.
func (t *Tokenizer) Encoding() string {
	return t.encoding
}

// Tokenize encodes the text and decodes each token id individually to
// recover byte offsets. BPE token byte sequences concatenate to the
// original text exactly, so offsets are exact substring boundaries.
func (t *Tokenizer) Tokenize(_ context.Context, text string) ([]domain.TokenSpan, error) {
	ids := t.enc.Encode(text, nil, nil)
	spans := make([]domain.TokenSpan, 0, len(ids))

	offset := 0
	for _, id := range ids {
		piece := t.enc.Decode([]int{id})
		end := offset + len(piece)
		spans = append(spans, domain.TokenSpan{Text: piece, Start: offset, End: end})
		offset = end
	}

	if offset != len(text) {
		return nil, fmt.Errorf("token spans cover %d of %d bytes", offset, len(text))
	}
	return spans, nil
}

// Count returns the BPE token count of the text.
func (t *Tokenizer) Count(_ context.Context, text string) (int, error) {
	return len(t.enc.Encode(text, nil, nil)), nil
}

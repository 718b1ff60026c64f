package services

import (
	"context"
	"fmt"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Chunker splits text into overlapping, token-boundary-aligned chunks.
// It is tokenizer-agnostic: chunk boundaries come from the spans the
// configured tokenizer reports, and chunk text is always cut from the
// original string, never re-joined with invented separators.
type Chunker struct {
	tokenizer driven.Tokenizer
}

// NewChunker creates a chunker backed by the given tokenizer.
func NewChunker(tokenizer driven.Tokenizer) *Chunker {
	return &Chunker{tokenizer: tokenizer}
}

// Chunk splits text into chunks of at most tokenLimit tokens, with
// overlap tokens shared between consecutive chunks. Requires
// 0 <= overlap < tokenLimit.
//
// Text of tokenLimit tokens or fewer comes back as a single chunk
// equal to the whole input. The final chunk may be shorter than
// tokenLimit and is emitted exactly once.
func (c *Chunker) Chunk(ctx context.Context, text string, tokenLimit, overlap int) ([]domain.Chunk, error) {
	if tokenLimit <= 0 {
		return nil, fmt.Errorf("%w: token limit %d must be positive", domain.ErrInvalidChunkConfig, tokenLimit)
	}
	if overlap < 0 || overlap >= tokenLimit {
		return nil, fmt.Errorf("%w: overlap %d must be in [0, %d)", domain.ErrInvalidChunkConfig, overlap, tokenLimit)
	}

	spans, err := c.tokenizer.Tokenize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	if len(spans) <= tokenLimit {
		return []domain.Chunk{{Index: 0, Text: text, StartToken: 0, EndToken: len(spans)}}, nil
	}

	stride := tokenLimit - overlap
	chunks := make([]domain.Chunk, 0, len(spans)/stride+1)

	start := 0
	for start < len(spans) {
		end := start + tokenLimit
		if end > len(spans) {
			end = len(spans)
		}

		chunks = append(chunks, domain.Chunk{
			Index:      len(chunks),
			Text:       text[spans[start].Start:spans[end-1].End],
			StartToken: start,
			EndToken:   end,
		})

		if end == len(spans) {
			break
		}
		start = end - overlap
	}

	return chunks, nil
}

// Package sentences provides a Segmenter implementation that splits
// text into sentences on terminal punctuation.
package sentences

import (
	"context"
	"regexp"
	"strings"

	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Segmenter implements the interface.
var _ driven.Segmenter = (*Segmenter)(nil)

// boundary matches a run of terminal punctuation followed by
// whitespace. The punctuation belongs to the preceding sentence; the
// whitespace is consumed.
var boundary = regexp.MustCompile(`([.!?]+)\s+`)

// Segmenter splits text into sentences using punctuation-based rules.
// Punctuation-only splitting misreads abbreviations ("e.g. this");
// acceptable for preprocessing, where a conservative over-split is
// harmless.
type Segmenter struct{}

// New creates a sentence segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Segment returns the sentences of the text in order. Whitespace is
// collapsed first, fragments are trimmed, and empty fragments are
// dropped. Text without terminal punctuation is one sentence.
func (s *Segmenter) Segment(_ context.Context, text string) ([]string, error) {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil, nil
	}

	var out []string
	start := 0
	for _, m := range boundary.FindAllStringSubmatchIndex(text, -1) {
		// m[3] is the end of the punctuation group; m[1] the end of
		// the consumed whitespace.
		if frag := strings.TrimSpace(text[start:m[3]]); frag != "" {
			out = append(out, frag)
		}
		start = m[1]
	}
	if frag := strings.TrimSpace(text[start:]); frag != "" {
		out = append(out, frag)
	}
	return out, nil
}

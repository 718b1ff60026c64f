package htmlstrip

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Stripper implements the interface.
var _ driven.Stripper = (*Stripper)(nil)

// Stripper removes HTML markup from text.
type Stripper struct{}

// New creates an HTML stripper.
func New() *Stripper {
	return &Stripper{}
}

// Strip tokenizes the input as HTML and keeps only text content.
// Script and style bodies are dropped entirely, entities are decoded,
// and whitespace left behind by removed tags is re-collapsed.
// Plain text without markup passes through unchanged apart from
// whitespace normalisation.
func (s *Stripper) Strip(_ context.Context, text string) (string, error) {
	tok := html.NewTokenizer(strings.NewReader(text))

	var b strings.Builder
	skipDepth := 0

	for {
		switch tok.Next() {
		case html.ErrorToken:
			// The tokenizer only stops on EOF for string input.
			return collapseWhitespace(b.String()), nil
		case html.StartTagToken:
			name, _ := tok.TagName()
			if isInvisible(string(name)) {
				skipDepth++
			}
			// Tags are word boundaries: <p>a</p><p>b</p> must not
			// fuse "a" and "b".
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := tok.TagName()
			if isInvisible(string(name)) && skipDepth > 0 {
				skipDepth--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tok.Text())
			}
		}
	}
}

// isInvisible reports whether an element's text content should be
// discarded rather than extracted.
func isInvisible(tag string) bool {
	return tag == "script" || tag == "style"
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

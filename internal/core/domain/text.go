package domain

import (
	"strings"
	"unicode"
)

// interrogatives are the leading words that mark a sentence as a
// question even without a terminal question mark.
var interrogatives = []string{"who", "what", "when", "where", "why", "how"}

// TextState is the mutable text owned by a single pipeline invocation.
// Raw never changes; Current is replaced by each transformation rule in
// sequence. TextState is never shared across concurrent invocations.
type TextState struct {
	// Raw is the original input text, kept for traceability.
	Raw string

	// Current is the working text after the rules applied so far.
	Current string

	// TokenCount caches the token count of Current once a tokenizer
	// has measured it. Zero until the chunking phase computes it.
	TokenCount int
}

// NewTextState creates the state for one pipeline invocation.
func NewTextState(raw string) *TextState {
	return &TextState{Raw: raw, Current: raw}
}

// WordCount returns the number of whitespace-separated words in the
// current text.
func (s *TextState) WordCount() int {
	return len(strings.Fields(s.Current))
}

// IsQuestion reports whether the current text is a question: it ends
// with a question mark or opens with an interrogative word.
func (s *TextState) IsQuestion() bool {
	trimmed := strings.TrimSpace(s.Current)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	first := strings.ToLower(firstWord(trimmed))
	for _, q := range interrogatives {
		if first == q {
			return true
		}
	}
	return false
}

// firstWord returns the leading run of letters, so "What's up" yields
// "What" and punctuation never hides an interrogative.
func firstWord(text string) string {
	end := 0
	for i, r := range text {
		if !unicode.IsLetter(r) {
			break
		}
		end = i + len(string(r))
	}
	return text[:end]
}

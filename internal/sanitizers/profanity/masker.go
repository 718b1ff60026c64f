// Package profanity provides a Masker implementation that censors
// offensive and abusive words from a configurable wordlist.
package profanity

import (
	"context"
	"regexp"
	"strings"

	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Masker implements the interface.
var _ driven.Masker = (*Masker)(nil)

// CensorToken replaces each matched word.
const CensorToken = "****"

// defaultWords is the built-in censor list. Matching is whole-word and
// case-insensitive.
var defaultWords = []string{
	"arse",
	"asshole",
	"bastard",
	"bitch",
	"bollocks",
	"bullshit",
	"crap",
	"damn",
	"dickhead",
	"dumbass",
	"idiot",
	"jackass",
	"moron",
	"piss",
	"prick",
	"scumbag",
	"shit",
	"stupid",
	"twat",
	"wanker",
}

// Masker censors offensive words. The censor token contains no letters,
// so masking already-censored text changes nothing.
type Masker struct {
	pattern *regexp.Regexp
}

// Option configures the masker.
type Option func(*[]string)

// WithWords replaces the built-in censor list.
func WithWords(words []string) Option {
	return func(list *[]string) {
		if len(words) > 0 {
			*list = words
		}
	}
}

// New creates a profanity masker with the built-in wordlist unless
// overridden by options.
func New(opts ...Option) *Masker {
	words := defaultWords
	for _, opt := range opts {
		opt(&words)
	}

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(w))
	}

	return &Masker{
		pattern: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// Mask returns the text with every listed word replaced by CensorToken.
func (m *Masker) Mask(_ context.Context, text string) (string, error) {
	return m.pattern.ReplaceAllString(text, CensorToken), nil
}

// Package urls provides a Stripper implementation that removes URLs
// and web artifacts (links, tracking parameters) from text.
package urls

import (
	"context"
	"regexp"
	"strings"

	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Stripper implements the interface.
var _ driven.Stripper = (*Stripper)(nil)

var urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// Stripper removes URLs from text.
type Stripper struct{}

// New creates a URL stripper.
func New() *Stripper {
	return &Stripper{}
}

// Strip removes http(s) and www URLs, then re-collapses the whitespace
// the removal leaves behind.
func (s *Stripper) Strip(_ context.Context, text string) (string, error) {
	text = urlPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " "), nil
}

// Package whitespace provides a Normaliser implementation that
// standardises unicode forms, removes invisible characters, and
// collapses whitespace so later detectors operate on consistent text.
package whitespace

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser applies NFKC normalisation, strips zero-width characters,
// and collapses runs of whitespace to single spaces.
type Normaliser struct{}

// New creates a whitespace normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise returns the cleaned text: NFKC-normalised, free of
// zero-width and BOM characters, whitespace collapsed and trimmed.
func (n *Normaliser) Normalise(_ context.Context, text string) (string, error) {
	text = norm.NFKC.String(text)
	text = strings.Map(dropInvisible, text)
	return strings.Join(strings.Fields(text), " "), nil
}

// dropInvisible removes zero-width spaces, joiners, and the BOM.
func dropInvisible(r rune) rune {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff':
		return -1
	}
	return r
}

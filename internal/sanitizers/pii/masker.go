// Package pii provides a Masker implementation that replaces common
// personally identifiable information — email addresses and phone
// numbers — with placeholder tokens before further processing.
package pii

import (
	"context"
	"regexp"

	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
)

// Ensure Masker implements the interface.
var _ driven.Masker = (*Masker)(nil)

// EmailToken replaces matched email addresses.
const EmailToken = "[EMAIL]"

// PhoneToken replaces matched phone numbers.
const PhoneToken = "[PHONE]"

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// 10-digit numbers with an optional country prefix and flexible
	// separators.
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[\s-]?)?\d{10}\b`)
)

// Masker masks emails and phone numbers by regular expression.
// Masking is idempotent: the placeholder tokens match neither pattern.
type Masker struct{}

// New creates a PII masker.
func New() *Masker {
	return &Masker{}
}

// Mask returns the text with emails and phone numbers replaced by
// EmailToken and PhoneToken.
func (m *Masker) Mask(_ context.Context, text string) (string, error) {
	text = emailPattern.ReplaceAllString(text, EmailToken)
	text = phonePattern.ReplaceAllString(text, PhoneToken)
	return text, nil
}

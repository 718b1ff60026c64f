package driven

import "context"

// Masker replaces sensitive spans of text with placeholder tokens.
// Implementations exist for PII and for offensive language.
// Masking must be idempotent: masking already-masked text is a no-op.
type Masker interface {
	// Mask returns the text with sensitive spans replaced.
	Mask(ctx context.Context, text string) (string, error)
}

// Stripper removes non-linguistic artifacts from text.
// Implementations exist for HTML markup and for URLs.
type Stripper interface {
	// Strip returns the text with the artifact class removed and
	// leftover whitespace re-collapsed.
	Strip(ctx context.Context, text string) (string, error)
}

// Normaliser standardises unicode and whitespace so that later
// detectors operate on consistent text.
type Normaliser interface {
	// Normalise returns the normalised text.
	Normalise(ctx context.Context, text string) (string, error)
}

// Segmenter splits text into well-formed sentences.
type Segmenter interface {
	// Segment returns the sentences in order. Empty fragments are
	// dropped; sentence text is trimmed.
	Segment(ctx context.Context, text string) ([]string, error)
}

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyText indicates the input contained no non-whitespace
	// characters. Fatal: the pipeline short-circuits.
	ErrEmptyText = errors.New("text is empty")

	// ErrDuplicateRule indicates a rule ID is already registered.
	ErrDuplicateRule = errors.New("duplicate rule")

	// ErrUnknownCategory indicates a rule names a category outside the
	// closed category set.
	ErrUnknownCategory = errors.New("unknown rule category")

	// ErrInvalidConfig indicates the pipeline configuration is
	// malformed. Raised before any rule executes.
	ErrInvalidConfig = errors.New("invalid pipeline configuration")

	// ErrInvalidChunkConfig indicates the chunk parameters are out of
	// range (overlap negative or not below the token limit). Raised
	// only when the chunking phase is reached.
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")
)

// Package domain defines the core business entities for Prepline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RuleDefinition: A named, orderable transformation or predicate over text
//   - TextState: The per-invocation text being processed
//   - RuleOutcome: The recorded result of one rule execution
//   - PipelineResult: The ordered trace of a full pipeline run
//   - Chunk: A token-aligned substring produced under a token ceiling
//   - DomainClassification: The keyword-based domain assigned to a question
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

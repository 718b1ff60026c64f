// Package driven defines the interfaces that core calls OUT to
// text-primitive implementations.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces; the sanitizer, tokenizer,
// and config adapters implement them. The rule engine never sees a
// regex pattern, a BPE table, or a file path — only these contracts.
//
// # Required Interfaces
//
//   - Tokenizer: token spans and token counts for chunking
//   - Masker: PII and offensive-language masking
//   - Stripper: HTML and URL removal
//   - Normaliser: unicode/whitespace normalisation
//   - Segmenter: sentence segmentation
//   - ConfigStore: pipeline configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any sanitizer, tokenizer, or adapter package
package driven

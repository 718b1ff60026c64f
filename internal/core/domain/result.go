package domain

// TokenSpan is one token produced by a tokenizer, with byte offsets
// into the text it was produced from. For every span s over text t,
// t[s.Start:s.End] is the exact source of the token.
type TokenSpan struct {
	// Text is the token as decoded by the tokenizer.
	Text string `json:"text"`

	// Start is the byte offset of the token in the source (inclusive).
	Start int `json:"start"`

	// End is the byte offset past the token in the source (exclusive).
	End int `json:"end"`
}

// RuleOutcome records the result of one rule execution. Outcomes are
// immutable once produced and are collected in execution order.
type RuleOutcome struct {
	// RuleID identifies the rule that produced this outcome.
	RuleID string `json:"rule_id"`

	// Passed reports whether the rule succeeded. A false value on a
	// non-fatal rule is informational; on a fatal rule it ends the run.
	Passed bool `json:"passed"`

	// OutputText is the text the rule produced, when it transforms
	// text. Empty for pure predicates.
	OutputText string `json:"output_text,omitempty"`

	// Metadata carries rule-specific details (masked-span counts,
	// chunk boundaries, matched domain, ...).
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Chunk is a token-aligned substring of the processed text, produced
// when the text exceeds the configured token limit.
//
// Offset invariant: Text is the exact substring covered by tokens
// [StartToken, EndToken) of the chunked text; consecutive chunks
// satisfy next.StartToken == prev.EndToken - overlap, and the last
// chunk ends exactly at the total token count.
type Chunk struct {
	// Index is the 0-based, sequential chunk number.
	Index int `json:"index"`

	// Text is the chunk content.
	Text string `json:"text"`

	// StartToken is the index of the first token in the chunk.
	StartToken int `json:"start_token"`

	// EndToken is the index past the last token in the chunk.
	EndToken int `json:"end_token"`
}

// DomainUnknown is the classification returned when no domain matches
// or when two or more domains tie for the highest keyword count.
const DomainUnknown = "unknown"

// ConfidenceKeywordCount is the only confidence basis the classifier
// produces: the winner is the domain with the most keyword matches.
const ConfidenceKeywordCount = "keyword-count"

// DomainClassification is the result of classifying a question into a
// topical domain by keyword matching.
type DomainClassification struct {
	// Domain is the winning domain, or DomainUnknown.
	Domain string `json:"domain"`

	// MatchedKeywords lists the keywords that matched, sorted. On an
	// ambiguous tie it is the union across the tied domains, so the
	// ambiguity stays traceable.
	MatchedKeywords []string `json:"matched_keywords"`

	// TiedDomains lists the domains that tied for the highest count.
	// Empty unless the classification was ambiguous.
	TiedDomains []string `json:"tied_domains,omitempty"`

	// ConfidenceBasis names how the winner was chosen.
	ConfidenceBasis string `json:"confidence_basis"`
}

// PipelineResult is the full trace of one pipeline run: every rule
// outcome in execution order plus the final text and, when produced,
// the chunks and domain classification.
type PipelineResult struct {
	// RunID uniquely identifies this invocation.
	RunID string `json:"run_id"`

	// Outcomes holds one entry per executed rule, in execution order.
	Outcomes []RuleOutcome `json:"outcomes"`

	// FinalText is the processed text after all rules ran.
	FinalText string `json:"final_text"`

	// Chunks is set only when the chunking phase split the text.
	Chunks []Chunk `json:"chunks,omitempty"`

	// Classification is set only when the text was a question.
	Classification *DomainClassification `json:"classification,omitempty"`
}

// Outcome returns the outcome recorded for the given rule ID, or nil.
func (r *PipelineResult) Outcome(ruleID string) *RuleOutcome {
	for i := range r.Outcomes {
		if r.Outcomes[i].RuleID == ruleID {
			return &r.Outcomes[i]
		}
	}
	return nil
}

// Passed reports whether every recorded outcome passed.
func (r *PipelineResult) Passed() bool {
	for i := range r.Outcomes {
		if !r.Outcomes[i].Passed {
			return false
		}
	}
	return true
}

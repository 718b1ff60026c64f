package services

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
)

// Classifier assigns a topical domain to a question by counting
// case-insensitive, word-boundary keyword matches. Ambiguity is never
// silently resolved: a tie for the highest count yields "unknown" with
// the tied domains recorded. Keyword patterns are compiled once and
// cached across calls.
type Classifier struct {
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

// NewClassifier creates a keyword classifier.
func NewClassifier() *Classifier {
	return &Classifier{patterns: make(map[string]*regexp.Regexp)}
}

// Classify counts occurrences of each domain's keywords in the text.
// The domain with the strictly highest non-zero count wins. On a tie
// the result is DomainUnknown with the tied domains and the union of
// their matched keywords recorded; with no matches at all the result
// is DomainUnknown with an empty keyword set.
func (c *Classifier) Classify(text string, domainKeywords map[string][]string) domain.DomainClassification {
	lower := strings.ToLower(text)

	counts := make(map[string]int, len(domainKeywords))
	matched := make(map[string][]string, len(domainKeywords))

	for name, keywords := range domainKeywords {
		for _, keyword := range keywords {
			n := c.countWord(lower, strings.ToLower(keyword))
			if n == 0 {
				continue
			}
			counts[name] += n
			matched[name] = append(matched[name], keyword)
		}
	}

	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	if best == 0 {
		return domain.DomainClassification{
			Domain:          domain.DomainUnknown,
			MatchedKeywords: []string{},
			ConfidenceBasis: domain.ConfidenceKeywordCount,
		}
	}

	var winners []string
	for name, n := range counts {
		if n == best {
			winners = append(winners, name)
		}
	}
	sort.Strings(winners)

	if len(winners) == 1 {
		keywords := matched[winners[0]]
		sort.Strings(keywords)
		return domain.DomainClassification{
			Domain:          winners[0],
			MatchedKeywords: keywords,
			ConfidenceBasis: domain.ConfidenceKeywordCount,
		}
	}

	// Ambiguous: record every tied domain and keyword for traceability.
	seen := make(map[string]bool)
	union := []string{}
	for _, name := range winners {
		for _, keyword := range matched[name] {
			if !seen[keyword] {
				seen[keyword] = true
				union = append(union, keyword)
			}
		}
	}
	sort.Strings(union)

	return domain.DomainClassification{
		Domain:          domain.DomainUnknown,
		MatchedKeywords: union,
		TiedDomains:     winners,
		ConfidenceBasis: domain.ConfidenceKeywordCount,
	}
}

// countWord counts word-boundary occurrences of keyword in text.
// Both arguments are expected in lower case.
func (c *Classifier) countWord(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	return len(c.pattern(keyword).FindAllStringIndex(text, -1))
}

// pattern returns the compiled word-boundary pattern for keyword,
// compiling it on first use. Safe for concurrent callers.
func (c *Classifier) pattern(keyword string) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()

	re, ok := c.patterns[keyword]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		c.patterns[keyword] = re
	}
	return re
}

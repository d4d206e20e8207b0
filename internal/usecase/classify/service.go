// Package classify derives a keyword set and coarse categories for a
// single ad document.
package classify

import (
	"sort"
	"strings"

	"github.com/base234/hyper-privacy-backend/internal/domain"
	"github.com/base234/hyper-privacy-backend/internal/tfidf"
)

// topKeywords caps the classified keyword list per ad.
const topKeywords = 10

// fallbackCategory is assigned when no vocabulary entry matches.
const fallbackCategory = "general"

// Service classifies ads against a fixed category vocabulary. Keyword
// extraction uses single-document term frequency; term-rank ties break
// lexicographically so repeated calls yield identical output.
type Service struct {
	categories []string
}

// New creates a classifier over the given category vocabulary.
func New(categories []string) *Service {
	return &Service{categories: categories}
}

// Classify derives the lexical identity of one ad. Deterministic within a
// run and, because the ad id is content-addressed, across restarts too.
func (s *Service) Classify(adContent string) domain.AdClassification {
	keywords := topTerms(adContent, topKeywords)

	lowerContent := strings.ToLower(adContent)
	var categories []string
	for _, category := range s.categories {
		if strings.Contains(lowerContent, category) || anyContains(keywords, category) {
			categories = append(categories, category)
		}
	}
	if len(categories) == 0 {
		categories = []string{fallbackCategory}
	}

	return domain.AdClassification{
		Categories: categories,
		Keywords:   keywords,
		AdID:       domain.AdID(adContent),
	}
}

// topTerms ranks the document's terms by frequency, highest first.
func topTerms(text string, k int) []string {
	counts := make(map[string]int)
	for _, tok := range tfidf.Tokenize(text) {
		counts[tok]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > k {
		terms = terms[:k]
	}
	return terms
}

// anyContains reports whether any keyword carries the category string as
// a substring. Permissive on purpose: recall over precision.
func anyContains(keywords []string, category string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, category) {
			return true
		}
	}
	return false
}

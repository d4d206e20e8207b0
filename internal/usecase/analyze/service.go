// Package analyze extracts lexical features from raw text: keywords,
// named entities, noun phrases, and topic candidates.
package analyze

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"

	"github.com/base234/hyper-privacy-backend/internal/domain"
	"github.com/base234/hyper-privacy-backend/internal/stopwords"
)

// summaryLimit is the maximum number of characters kept in TextSummary.
const summaryLimit = 200

// Service turns raw text into ContentFeatures. Analyze is a pure function
// of its input; all language resources are loaded once in New.
type Service struct {
	lemmatizer *golem.Lemmatizer
	stops      stopwords.Set
}

// New loads the English language resources. Failure here is fatal for the
// process: callers must not retry per request.
func New() (*Service, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("%w: load lemmatizer: %v", domain.ErrModelUnavailable, err)
	}

	// Exercise the tagger/NER model once so a broken install surfaces at
	// startup instead of on the first request.
	if _, err := prose.NewDocument("startup check"); err != nil {
		return nil, fmt.Errorf("%w: load tagging model: %v", domain.ErrModelUnavailable, err)
	}

	return &Service{lemmatizer: lem, stops: stopwords.Default()}, nil
}

// Analyze extracts features from text. Empty or whitespace-only input
// yields empty sequences and WordCount 0, never an error.
func (s *Service) Analyze(text string) (domain.ContentFeatures, error) {
	features := domain.ContentFeatures{TextSummary: summarize(text)}
	if strings.TrimSpace(text) == "" {
		return features, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return domain.ContentFeatures{}, fmt.Errorf("parse document: %w", err)
	}

	tokens := doc.Tokens()
	features.WordCount = len(tokens)

	for _, tok := range tokens {
		if !isAlpha(tok.Text) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if s.stops.Contains(lower) {
			continue
		}
		lemma := strings.ToLower(s.lemmatizer.Lemma(tok.Text))
		features.Keywords = append(features.Keywords, lemma)
		if isNounTag(tok.Tag) {
			features.TopicCandidates = append(features.TopicCandidates, lemma)
		}
	}

	for _, ent := range doc.Entities() {
		features.Entities = append(features.Entities, domain.Entity{Text: ent.Text, Label: ent.Label})
	}

	features.NounPhrases = nounPhrases(tokens)
	return features, nil
}

// summarize keeps the first summaryLimit characters, marking truncation.
func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return string(runes[:summaryLimit]) + "..."
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isNounTag matches Penn Treebank noun and proper-noun tags.
func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isAdjTag(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}

// nounPhrases collects multi-word adjective/noun runs that contain at
// least one noun, in document order. Single-word runs are dropped.
func nounPhrases(tokens []prose.Token) []string {
	var phrases []string
	var run []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) >= 2 {
			phrases = append(phrases, strings.Join(run, " "))
		}
		run = nil
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case isNounTag(tok.Tag):
			run = append(run, tok.Text)
			hasNoun = true
		case isAdjTag(tok.Tag):
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()
	return phrases
}

package privacy

import (
	"regexp"
	"unicode/utf8"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// sensitiveEntityTypes are entity labels dropped wholesale by the
// sanitize stage.
var sensitiveEntityTypes = map[string]struct{}{
	"PERSON":      {},
	"EMAIL":       {},
	"PHONE":       {},
	"CREDIT_CARD": {},
	"SSN":         {},
	"ADDRESS":     {},
}

// piiDetector pairs a redaction label with its pattern. The slice keeps
// detector order fixed so overlapping matches redact deterministically.
type piiDetector struct {
	label   string
	pattern *regexp.Regexp
}

var piiDetectors = []piiDetector{
	{"EMAIL", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{"PHONE", regexp.MustCompile(`\b(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)},
	{"SSN", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{"CREDIT_CARD", regexp.MustCompile(`\b(?:\d{4}[- ]?){3}\d{4}\b`)},
	{"IP_ADDRESS", regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
}

// minTokenLength is the k-anonymity approximation: tokens this short are
// considered too identifying to release.
const minTokenLength = 3

// sanitize drops sensitive entities, redacts PII from the summary, and
// filters short keywords and topics.
func (p *Pipeline) sanitize(f *domain.PrivateFeatures) {
	kept := f.Entities[:0]
	for _, ent := range f.Entities {
		if _, sensitive := sensitiveEntityTypes[ent.Label]; sensitive {
			continue
		}
		kept = append(kept, ent)
	}
	f.Entities = kept

	for _, d := range piiDetectors {
		f.TextSummary = d.pattern.ReplaceAllString(f.TextSummary, "[REDACTED "+d.label+"]")
	}

	f.Keywords = filterShort(f.Keywords)
	f.TopicCandidates = filterShort(f.TopicCandidates)
}

func filterShort(items []string) []string {
	kept := items[:0]
	for _, item := range items {
		if utf8.RuneCountInString(item) <= minTokenLength {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

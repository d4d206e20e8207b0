package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// hashedKeywordCount is how many keywords get hashed into the minimized
// profile.
const hashedKeywordCount = 10

// Word-count buckets for the reduced-fidelity length category.
const (
	veryShortLimit = 50
	shortLimit     = 200
	mediumLimit    = 500
	longLimit      = 1000
)

// minimize attaches the reduced-fidelity profile. The raw feature fields
// are retained alongside it: matching quality is preserved and consumers
// wanting stronger privacy read only the minimized profile. See DESIGN.md
// for the trade-off.
func (p *Pipeline) minimize(f *domain.PrivateFeatures) {
	f.Minimized = &domain.MinimizedProfile{
		TopicCategories:       topicCategories(f.TopicCandidates),
		ContentLengthCategory: lengthCategory(f.WordCount),
		EntityTypes:           entityTypes(f.Entities),
		KeywordHashes:         keywordHashes(f.Keywords),
	}
}

// topicCategories keeps the first word of each multi-word topic,
// deduplicated in first-seen order.
func topicCategories(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	var out []string
	for _, topic := range topics {
		cat := topic
		if i := strings.IndexByte(topic, ' '); i >= 0 {
			cat = topic[:i]
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

func lengthCategory(wordCount int) string {
	switch {
	case wordCount < veryShortLimit:
		return "very_short"
	case wordCount < shortLimit:
		return "short"
	case wordCount < mediumLimit:
		return "medium"
	case wordCount < longLimit:
		return "long"
	default:
		return "very_long"
	}
}

func entityTypes(entities []domain.Entity) []string {
	seen := make(map[string]struct{}, len(entities))
	var out []string
	for _, ent := range entities {
		if _, ok := seen[ent.Label]; ok {
			continue
		}
		seen[ent.Label] = struct{}{}
		out = append(out, ent.Label)
	}
	return out
}

func keywordHashes(keywords []string) []string {
	n := len(keywords)
	if n > hashedKeywordCount {
		n = hashedKeywordCount
	}
	out := make([]string, 0, n)
	for _, kw := range keywords[:n] {
		sum := sha256.Sum256([]byte(kw))
		out = append(out, hex.EncodeToString(sum[:])[:8])
	}
	return out
}

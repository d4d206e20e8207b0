package match

import (
	"strings"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// reasonItemLimit caps how many shared keywords or topics a reason names.
const reasonItemLimit = 3

// matchReason explains a hit, by preference: shared keywords, then topics
// matching ad categories, then a generic similarity note. Items appear in
// feature order so the reason is deterministic.
func matchReason(ad domain.AdRecord, features domain.PrivateFeatures) string {
	adKeywords := toSet(ad.Classification.Keywords)
	var shared []string
	seen := make(map[string]struct{})
	for _, kw := range features.Keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		if _, ok := adKeywords[kw]; ok {
			shared = append(shared, kw)
			if len(shared) == reasonItemLimit {
				break
			}
		}
	}
	if len(shared) > 0 {
		return "Matched based on keywords: " + strings.Join(shared, ", ")
	}

	var matched []string
	seen = make(map[string]struct{})
	for _, topic := range features.TopicCandidates {
		if _, dup := seen[topic]; dup {
			continue
		}
		seen[topic] = struct{}{}
		for _, cat := range ad.Classification.Categories {
			if strings.Contains(topic, cat) {
				matched = append(matched, topic)
				break
			}
		}
		if len(matched) == reasonItemLimit {
			break
		}
	}
	if len(matched) > 0 {
		return "Matched based on topics: " + strings.Join(matched, ", ")
	}

	return "Matched based on content similarity"
}

// Package match ranks the ad inventory against privacy-adjusted content
// features.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// Composite score weights. Category relevance is unbounded, so the final
// score is not confined to [0,1]; that is an accepted property of this
// scoring, not a defect.
const (
	similarityWeight = 0.5
	keywordWeight    = 0.3
	categoryWeight   = 0.2
)

// defaultMaxResults caps the ranked result list.
const defaultMaxResults = 5

// Service scores and ranks ads. Scoring policy: weighted blend of TF-IDF
// cosine similarity, keyword overlap, and category relevance. The plain
// integer-count variant is deliberately not supported.
type Service struct {
	inventory  Inventory
	classifier Classifier
	maxResults int
}

// New creates a matching engine over the given inventory.
func New(inventory Inventory, classifier Classifier) *Service {
	return &Service{
		inventory:  inventory,
		classifier: classifier,
		maxResults: defaultMaxResults,
	}
}

// WithMaxResults overrides the result cap.
func (s *Service) WithMaxResults(n int) *Service {
	if n > 0 {
		s.maxResults = n
	}
	return s
}

// AddAd classifies the content and stores the record. Classification runs
// before any inventory mutation, so a failure leaves the store untouched.
func (s *Service) AddAd(content string, metadata map[string]string) (domain.AdRecord, error) {
	if metadata == nil {
		metadata = map[string]string{}
	}
	rec := domain.AdRecord{
		Content:        content,
		Metadata:       metadata,
		Classification: s.classifier.Classify(content),
	}
	if err := s.inventory.Add(rec); err != nil {
		return domain.AdRecord{}, fmt.Errorf("add ad: %w", err)
	}
	return rec, nil
}

// Match ranks the inventory against the features. Returns at most
// maxResults hits sorted by relevance descending; ties keep insertion
// order. An empty inventory yields an empty slice, never an error.
func (s *Service) Match(features domain.PrivateFeatures) ([]domain.MatchResult, error) {
	ads := s.inventory.All()
	if len(ads) == 0 {
		return nil, nil
	}

	sims, err := s.inventory.Similarities(buildQuery(features))
	if err != nil {
		return nil, fmt.Errorf("similarity scores: %w", err)
	}

	contentKeywords := toSet(features.Keywords)
	contentTopics := toSet(features.TopicCandidates)

	results := make([]domain.MatchResult, 0, len(ads))
	for i, ad := range ads {
		overlap := keywordOverlap(contentKeywords, ad.Classification.Keywords)
		relevance := categoryRelevance(contentTopics, ad.Classification.Categories)

		score := similarityWeight*sims[i] +
			keywordWeight*float64(overlap)/float64(maxInt(1, len(contentKeywords))) +
			categoryWeight*float64(relevance)

		results = append(results, domain.MatchResult{
			Ad:             ad,
			RelevanceScore: score,
			MatchFactors: domain.MatchFactors{
				ContentSimilarity: sims[i],
				KeywordOverlap:    overlap,
				CategoryRelevance: relevance,
			},
			MatchReason: matchReason(ad, features),
		})
	}

	// Stable: equal scores keep insertion order, the only tie-break
	// signal available.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	return results, nil
}

// buildQuery concatenates keywords, topic candidates, and entity texts
// into one query document. Missing fields contribute nothing.
func buildQuery(features domain.PrivateFeatures) string {
	parts := make([]string, 0, len(features.Keywords)+len(features.TopicCandidates)+len(features.Entities))
	parts = append(parts, features.Keywords...)
	parts = append(parts, features.TopicCandidates...)
	for _, ent := range features.Entities {
		parts = append(parts, ent.Text)
	}
	return strings.Join(parts, " ")
}

func keywordOverlap(contentKeywords map[string]struct{}, adKeywords []string) int {
	count := 0
	seen := make(map[string]struct{}, len(adKeywords))
	for _, kw := range adKeywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		if _, ok := contentKeywords[kw]; ok {
			count++
		}
	}
	return count
}

// categoryRelevance counts (topic, category) pairs where the category is
// a literal substring of the topic. A topic matching several categories
// counts once per category.
func categoryRelevance(contentTopics map[string]struct{}, categories []string) int {
	count := 0
	for topic := range contentTopics {
		for _, cat := range categories {
			if strings.Contains(topic, cat) {
				count++
			}
		}
	}
	return count
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

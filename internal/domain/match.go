package domain

// MatchFactors breaks a relevance score into its explainable components.
type MatchFactors struct {
	ContentSimilarity float64 `json:"content_similarity"`
	KeywordOverlap    int     `json:"keyword_overlap"`
	CategoryRelevance int     `json:"category_relevance"`
}

// MatchResult is one ranked hit from the matching engine. Produced fresh
// on every match call, never persisted.
type MatchResult struct {
	Ad             AdRecord     `json:"ad"`
	RelevanceScore float64      `json:"relevance_score"`
	MatchFactors   MatchFactors `json:"match_factors"`
	MatchReason    string       `json:"match_reason"`
}

// PrivacyMetrics reports which privacy stages were enabled for a request,
// regardless of whether any transform actually altered a field.
type PrivacyMetrics struct {
	AnonymizationApplied       bool `json:"anonymization_applied"`
	DifferentialPrivacyApplied bool `json:"differential_privacy_applied"`
	LocalProcessingSimulated   bool `json:"local_processing_simulated"`
}

// ProcessResult is the full response of one Process call.
type ProcessResult struct {
	RecommendedAds []MatchResult  `json:"recommended_ads"`
	ContentTopics  []string       `json:"content_topics"`
	PrivacyMetrics PrivacyMetrics `json:"privacy_metrics"`
}

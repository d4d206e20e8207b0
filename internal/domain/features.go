package domain

// Entity is a recognized span of text paired with a coarse type label
// (e.g. PERSON, GPE). Duplicates are preserved in document order.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// ContentFeatures is the lexical profile extracted from one document.
// All sequences derive deterministically from the same parse of the same
// input; randomized privacy transforms happen downstream, never here.
type ContentFeatures struct {
	Keywords        []string `json:"keywords"`
	Entities        []Entity `json:"entities"`
	NounPhrases     []string `json:"noun_phrases"`
	TopicCandidates []string `json:"topic_candidates"`
	WordCount       int      `json:"word_count"`
	TextSummary     string   `json:"text_summary"`
}

// MinimizedProfile is the reduced-fidelity summary produced by the
// local-processing stage of the privacy pipeline.
type MinimizedProfile struct {
	TopicCategories       []string `json:"topic_categories"`
	ContentLengthCategory string   `json:"content_length_category"`
	EntityTypes           []string `json:"entity_types"`
	KeywordHashes         []string `json:"keyword_hashes"`
}

// PrivateFeatures is ContentFeatures after zero or more privacy transforms.
// Any field may have been emptied by a transform; consumers must treat
// empty slices as "no signal", not as an error. Minimized is nil unless
// the local-processing stage ran.
type PrivateFeatures struct {
	ContentFeatures
	Minimized *MinimizedProfile `json:"minimized,omitempty"`
}

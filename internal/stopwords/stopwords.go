// Package stopwords holds the English stopword set shared by the content
// analyzer, the ad classifier, and the TF-IDF index. All three must agree
// on what a stopword is, otherwise keyword overlap counts drift.
package stopwords

// Set holds lower-cased stopword tokens.
type Set map[string]struct{}

// New builds a Set from the given words.
func New(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether tok is a stopword. Callers lower-case first.
func (s Set) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Default returns the standard English stopword list.
func Default() Set {
	return New([]string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "s", "t", "can", "will", "just", "don", "should",
		"now", "d", "ll", "m", "o", "re", "ve", "y",
	})
}

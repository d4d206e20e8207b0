// Package tfidf implements a corpus-fit TF-IDF vectorizer with cosine
// similarity. The vocabulary is rebuilt from scratch on every Fit call;
// incremental updates are a known non-goal for inventory sizes in scope.
package tfidf

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/base234/hyper-privacy-backend/internal/stopwords"
)

// ErrNotFitted is returned by Transform before the first successful Fit.
var ErrNotFitted = errors.New("tfidf: vectorizer not fitted")

var (
	tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
	stops        = stopwords.Default()
)

// Tokenize extracts lower-cased alphabetic tokens, dropping stopwords and
// single letters. Shared with the ad classifier so keyword sets line up.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) <= 1 || stops.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Vectorizer builds L2-normalized TF-IDF vectors over a fixed corpus
// vocabulary. Not safe for concurrent use with Fit; callers serialize
// Fit against Transform.
type Vectorizer struct {
	maxFeatures int
	vocab       map[string]int
	idf         []float64
	fitted      bool
}

// New creates an unfitted vectorizer. maxFeatures caps the vocabulary to
// the most frequent corpus terms; zero or negative means unlimited.
func New(maxFeatures int) *Vectorizer {
	return &Vectorizer{
		maxFeatures: maxFeatures,
		vocab:       make(map[string]int),
	}
}

// Fitted reports whether Fit has succeeded at least once.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// Dimension returns the vocabulary size after fitting.
func (v *Vectorizer) Dimension() int { return len(v.vocab) }

// Fit rebuilds the vocabulary and IDF table from the corpus. The previous
// vocabulary is discarded entirely. Cost is linear in total corpus size.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("tfidf: empty corpus")
	}

	// Document frequencies and total term counts in one pass.
	df := make(map[string]int)
	tfTotal := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(text) {
			tfTotal[tok]++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return errors.New("tfidf: no usable tokens in corpus")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	// Cap to the most frequent terms, ties broken lexicographically so the
	// vocabulary stays deterministic run to run.
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			if tfTotal[terms[i]] != tfTotal[terms[j]] {
				return tfTotal[terms[i]] > tfTotal[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.maxFeatures]
		sort.Strings(terms)
	}

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF, always positive.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.fitted = true
	return nil
}

// Transform computes the L2-normalized TF-IDF vector for text. Terms
// outside the fitted vocabulary are ignored; a text with no known terms
// yields the zero vector.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	vec := make([]float64, len(v.vocab))
	tf := make(map[int]int)
	total := 0
	for _, tok := range Tokenize(text) {
		if idx, ok := v.vocab[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// Cosine returns the cosine similarity of two equal-length vectors,
// in [0,1] for non-negative inputs. Zero vectors score 0.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

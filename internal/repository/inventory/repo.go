// Package inventory is the in-memory ad store. It owns the AdRecords and
// the corpus-fit TF-IDF index over their texts. Records are append-only:
// there is no removal operation, so the store never returns to empty.
package inventory

import (
	"fmt"
	"sync"

	"github.com/base234/hyper-privacy-backend/internal/domain"
	"github.com/base234/hyper-privacy-backend/internal/tfidf"
)

// Repo guards the records and index with a read-write lock: Add is the
// single writer, Similarities/All are concurrent readers.
type Repo struct {
	mu         sync.RWMutex
	ads        []domain.AdRecord
	vectorizer *tfidf.Vectorizer
	adVectors  [][]float64
}

// New creates an empty inventory. maxFeatures bounds the index vocabulary.
func New(maxFeatures int) *Repo {
	return &Repo{vectorizer: tfidf.New(maxFeatures)}
}

// Add appends a record and synchronously rebuilds the index so subsequent
// matches see the new ad. All-or-nothing: a rebuild failure rolls the
// append back and leaves the previous index intact. Cost is linear in
// inventory size.
func (r *Repo) Add(rec domain.AdRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ads = append(r.ads, rec)
	if err := r.rebuildLocked(); err != nil {
		r.ads = r.ads[:len(r.ads)-1]
		return fmt.Errorf("rebuild index: %w", err)
	}
	return nil
}

// rebuildLocked refits the vectorizer over all ad texts and re-vectorizes
// every ad. Caller holds the write lock.
func (r *Repo) rebuildLocked() error {
	corpus := make([]string, len(r.ads))
	for i, ad := range r.ads {
		corpus[i] = ad.Content
	}
	if err := r.vectorizer.Fit(corpus); err != nil {
		return err
	}

	vectors := make([][]float64, len(r.ads))
	for i, ad := range r.ads {
		vec, err := r.vectorizer.Transform(ad.Content)
		if err != nil {
			return err
		}
		vectors[i] = vec
	}
	r.adVectors = vectors
	return nil
}

// Len returns the number of stored ads.
func (r *Repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ads)
}

// All returns a snapshot of the records in insertion order.
func (r *Repo) All() []domain.AdRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.AdRecord(nil), r.ads...)
}

// Similarities scores the query text against every ad, in insertion
// order. An empty inventory yields an empty slice, never an error.
func (r *Repo) Similarities(query string) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.ads) == 0 {
		return nil, nil
	}

	queryVec, err := r.vectorizer.Transform(query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	sims := make([]float64, len(r.adVectors))
	for i, adVec := range r.adVectors {
		sims[i] = tfidf.Cosine(queryVec, adVec)
	}
	return sims, nil
}

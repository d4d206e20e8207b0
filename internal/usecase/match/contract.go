package match

import "github.com/base234/hyper-privacy-backend/internal/domain"

// Inventory is the storage contract for the matching engine.
type Inventory interface {
	// Add appends a classified record and rebuilds the lexical index
	// before returning. All-or-nothing.
	Add(rec domain.AdRecord) error
	// All returns the records in insertion order.
	All() []domain.AdRecord
	// Similarities scores the query text against every ad in insertion
	// order; empty inventory yields an empty slice.
	Similarities(query string) ([]float64, error)
	// Len reports the inventory size.
	Len() int
}

// Classifier derives the lexical identity of an ad.
type Classifier interface {
	Classify(adContent string) domain.AdClassification
}

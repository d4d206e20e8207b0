package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// AdClassification is the derived lexical identity of a single ad.
type AdClassification struct {
	Categories []string `json:"categories"`
	Keywords   []string `json:"keywords"`
	AdID       int      `json:"ad_id"`
}

// AdRecord is an inventory entry. Classification is computed once when the
// ad is added and the record is immutable afterwards.
type AdRecord struct {
	Content        string            `json:"content"`
	Metadata       map[string]string `json:"metadata"`
	Classification AdClassification  `json:"classification"`
}

// AdID derives a content-addressed identifier for an ad: xxhash64 of the
// lower-cased, whitespace-collapsed text, reduced mod 10000. Stable across
// process restarts. Collisions are possible and acceptable — this is a
// demo-grade identity, not a uniqueness guarantee.
func AdID(content string) int {
	norm := strings.Join(strings.Fields(strings.ToLower(content)), " ")
	return int(xxhash.Sum64String(norm) % 10000)
}

// Package privacy applies best-effort privacy transforms to content
// features before they reach the matching engine. Stages run in a fixed
// order: sanitize, noise-inject, minimize. A disabled stage passes its
// input through unchanged.
//
// The noise stage is a coarse single-query heuristic. It carries no formal
// multi-query composition guarantee and must not be sold as differential
// privacy proper.
package privacy

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// Config toggles the pipeline stages.
type Config struct {
	Anonymization       bool
	DifferentialPrivacy bool
	Epsilon             float64
	LocalProcessing     bool
}

// DefaultEpsilon is used when the configured epsilon is not positive.
const DefaultEpsilon = 0.5

// Pipeline applies the configured transforms. The random source feeds the
// Laplace draw and the keyword shuffle; tests inject a seeded source.
type Pipeline struct {
	cfg Config
	rng *rand.Rand
}

// New creates a pipeline. A nil source is replaced with a time-seeded one.
func New(cfg Config, src rand.Source) *Pipeline {
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Pipeline{cfg: cfg, rng: rand.New(src)}
}

// Apply runs the enabled stages over a copy of features. The input is
// never mutated.
func (p *Pipeline) Apply(features domain.ContentFeatures) domain.PrivateFeatures {
	private := domain.PrivateFeatures{ContentFeatures: cloneFeatures(features)}

	if p.cfg.Anonymization {
		p.sanitize(&private)
	}
	if p.cfg.DifferentialPrivacy {
		p.injectNoise(&private)
	}
	if p.cfg.LocalProcessing {
		p.minimize(&private)
	}

	return private
}

// Metrics reports which stages are enabled, independent of whether any
// transform changed a field.
func (p *Pipeline) Metrics() domain.PrivacyMetrics {
	return domain.PrivacyMetrics{
		AnonymizationApplied:       p.cfg.Anonymization,
		DifferentialPrivacyApplied: p.cfg.DifferentialPrivacy,
		LocalProcessingSimulated:   p.cfg.LocalProcessing,
	}
}

func cloneFeatures(f domain.ContentFeatures) domain.ContentFeatures {
	out := f
	out.Keywords = append([]string(nil), f.Keywords...)
	out.Entities = append([]domain.Entity(nil), f.Entities...)
	out.NounPhrases = append([]string(nil), f.NounPhrases...)
	out.TopicCandidates = append([]string(nil), f.TopicCandidates...)
	return out
}

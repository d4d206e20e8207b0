package recommend

import (
	"context"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// Analyzer extracts lexical features from raw text.
type Analyzer interface {
	Analyze(text string) (domain.ContentFeatures, error)
}

// PrivacyPipeline applies the configured transforms and reports which
// stages are enabled.
type PrivacyPipeline interface {
	Apply(features domain.ContentFeatures) domain.PrivateFeatures
	Metrics() domain.PrivacyMetrics
}

// Matcher ranks the inventory and accepts new ads.
type Matcher interface {
	Match(features domain.PrivateFeatures) ([]domain.MatchResult, error)
	AddAd(content string, metadata map[string]string) (domain.AdRecord, error)
}

// ResultCache is an optional content-keyed cache of ProcessResults.
// Implementations handle their own errors; a miss and a failure look the
// same to the caller.
type ResultCache interface {
	Get(ctx context.Context, content string) (*domain.ProcessResult, bool)
	Set(ctx context.Context, content string, result *domain.ProcessResult)
}

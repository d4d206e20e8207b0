// Package recommend wires feature extraction, the privacy pipeline, and
// the matching engine into a single Process call.
package recommend

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// maxTopics caps the content_topics list in the response.
const maxTopics = 5

// BootstrapAd is one entry of the fixed startup inventory.
type BootstrapAd struct {
	Content  string
	Metadata map[string]string
}

// Service is the orchestrator: one Process call runs extraction, privacy
// transforms, and matching to completion before returning.
type Service struct {
	analyzer Analyzer
	privacy  PrivacyPipeline
	matcher  Matcher
	cache    ResultCache
	logger   *zap.Logger
}

// New creates the orchestrator.
func New(analyzer Analyzer, privacy PrivacyPipeline, matcher Matcher, logger *zap.Logger) *Service {
	return &Service{
		analyzer: analyzer,
		privacy:  privacy,
		matcher:  matcher,
		logger:   logger,
	}
}

// WithCache attaches an optional result cache. Note that caching replays
// the first (possibly noise-perturbed) result for repeated content.
func (s *Service) WithCache(cache ResultCache) *Service {
	s.cache = cache
	return s
}

// Bootstrap loads the fixed startup ad list. Called once before serving;
// any failure is fatal for the process.
func (s *Service) Bootstrap(ads []BootstrapAd) error {
	for _, ad := range ads {
		rec, err := s.matcher.AddAd(ad.Content, ad.Metadata)
		if err != nil {
			return fmt.Errorf("bootstrap ad %q: %w", ad.Content, err)
		}
		s.logger.Debug("Loaded bootstrap ad",
			zap.Int("ad_id", rec.Classification.AdID),
			zap.Strings("categories", rec.Classification.Categories),
		)
	}
	s.logger.Info("Ad inventory bootstrapped", zap.Int("ads", len(ads)))
	return nil
}

// AddAd classifies and stores a new ad.
func (s *Service) AddAd(_ context.Context, content string, metadata map[string]string) (domain.AdRecord, error) {
	if !utf8.ValidString(content) {
		return domain.AdRecord{}, fmt.Errorf("%w: ad content is not valid UTF-8", domain.ErrInvalidInput)
	}
	return s.matcher.AddAd(content, metadata)
}

// Process runs the full pipeline for one content string. Empty content is
// valid input and yields a well-formed (if weak) result; invalid UTF-8 is
// rejected with ErrInvalidInput.
func (s *Service) Process(ctx context.Context, content string) (domain.ProcessResult, error) {
	if !utf8.ValidString(content) {
		return domain.ProcessResult{}, fmt.Errorf("%w: content is not valid UTF-8", domain.ErrInvalidInput)
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, content); ok {
			return *cached, nil
		}
	}

	features, err := s.analyzer.Analyze(content)
	if err != nil {
		return domain.ProcessResult{}, fmt.Errorf("analyze content: %w", err)
	}

	private := s.privacy.Apply(features)

	matches, err := s.matcher.Match(private)
	if err != nil {
		return domain.ProcessResult{}, fmt.Errorf("match ads: %w", err)
	}

	result := domain.ProcessResult{
		RecommendedAds: matches,
		ContentTopics:  contentTopics(private),
		PrivacyMetrics: s.privacy.Metrics(),
	}

	if s.cache != nil {
		s.cache.Set(ctx, content, &result)
	}
	return result, nil
}

// contentTopics picks whichever topic field survived the privacy
// pipeline: raw topic candidates first, else the minimized categories.
func contentTopics(private domain.PrivateFeatures) []string {
	topics := private.TopicCandidates
	if len(topics) == 0 && private.Minimized != nil {
		topics = private.Minimized.TopicCategories
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

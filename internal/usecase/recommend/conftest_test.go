package recommend

import (
	"context"

	"github.com/base234/hyper-privacy-backend/internal/domain"
)

// --- Mocks ---

type mockAnalyzer struct {
	features domain.ContentFeatures
	err      error
	calls    int
}

func (m *mockAnalyzer) Analyze(_ string) (domain.ContentFeatures, error) {
	m.calls++
	return m.features, m.err
}

type mockPrivacy struct {
	metrics domain.PrivacyMetrics
}

func (m *mockPrivacy) Apply(f domain.ContentFeatures) domain.PrivateFeatures {
	return domain.PrivateFeatures{ContentFeatures: f}
}

func (m *mockPrivacy) Metrics() domain.PrivacyMetrics { return m.metrics }

type mockMatcher struct {
	results []domain.MatchResult
	err     error
	added   []string
	addErr  error
}

func (m *mockMatcher) Match(_ domain.PrivateFeatures) ([]domain.MatchResult, error) {
	return m.results, m.err
}

func (m *mockMatcher) AddAd(content string, metadata map[string]string) (domain.AdRecord, error) {
	if m.addErr != nil {
		return domain.AdRecord{}, m.addErr
	}
	m.added = append(m.added, content)
	return domain.AdRecord{Content: content, Metadata: metadata}, nil
}

type mockCache struct {
	data map[string]*domain.ProcessResult
	hits int
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string]*domain.ProcessResult{}}
}

func (m *mockCache) Get(_ context.Context, content string) (*domain.ProcessResult, bool) {
	res, ok := m.data[content]
	if ok {
		m.hits++
	}
	return res, ok
}

func (m *mockCache) Set(_ context.Context, content string, result *domain.ProcessResult) {
	m.sets++
	m.data[content] = result
}

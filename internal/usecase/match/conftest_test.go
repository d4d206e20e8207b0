package match

import "github.com/base234/hyper-privacy-backend/internal/domain"

// --- Mocks ---

type mockInventory struct {
	ads       []domain.AdRecord
	sims      []float64
	simsErr   error
	added     []domain.AdRecord
	addErr    error
	lastQuery string
}

func (m *mockInventory) Add(rec domain.AdRecord) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, rec)
	m.ads = append(m.ads, rec)
	return nil
}

func (m *mockInventory) All() []domain.AdRecord { return m.ads }

func (m *mockInventory) Similarities(query string) ([]float64, error) {
	m.lastQuery = query
	if m.simsErr != nil {
		return nil, m.simsErr
	}
	return m.sims, nil
}

func (m *mockInventory) Len() int { return len(m.ads) }

type mockClassifier struct {
	result domain.AdClassification
}

func (m *mockClassifier) Classify(_ string) domain.AdClassification { return m.result }

func adWith(content string, keywords []string, categories []string) domain.AdRecord {
	return domain.AdRecord{
		Content:  content,
		Metadata: map[string]string{},
		Classification: domain.AdClassification{
			Categories: categories,
			Keywords:   keywords,
			AdID:       domain.AdID(content),
		},
	}
}

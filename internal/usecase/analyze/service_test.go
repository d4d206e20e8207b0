package analyze

import (
	"strings"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func TestAnalyze_EmptyInput(t *testing.T) {
	svc := newTestService(t)

	for _, input := range []string{"", "   ", "\n\t  "} {
		features, err := svc.Analyze(input)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", input, err)
		}
		if features.WordCount != 0 {
			t.Errorf("WordCount = %d, want 0", features.WordCount)
		}
		if len(features.Keywords) != 0 || len(features.Entities) != 0 ||
			len(features.TopicCandidates) != 0 || len(features.NounPhrases) != 0 {
			t.Errorf("expected empty sequences for input %q", input)
		}
	}
}

func TestAnalyze_KeywordsExcludeStopwords(t *testing.T) {
	svc := newTestService(t)

	features, err := svc.Analyze("The future of artificial intelligence is transforming technology.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(features.Keywords) == 0 {
		t.Fatal("expected non-empty keywords")
	}
	for _, kw := range features.Keywords {
		switch kw {
		case "the", "of", "is":
			t.Errorf("stopword %q leaked into keywords", kw)
		}
		if kw != strings.ToLower(kw) {
			t.Errorf("keyword %q is not lower-cased", kw)
		}
	}
	if features.WordCount == 0 {
		t.Error("WordCount should be positive")
	}
}

func TestAnalyze_KeywordsAreAlphabetic(t *testing.T) {
	svc := newTestService(t)

	features, err := svc.Analyze("Get 50% off gadgets! Visit shop-24 today.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, kw := range features.Keywords {
		for _, r := range kw {
			if r >= '0' && r <= '9' {
				t.Errorf("keyword %q contains a digit", kw)
			}
		}
	}
}

func TestAnalyze_TopicCandidatesSubsetOfKeywords(t *testing.T) {
	svc := newTestService(t)

	features, err := svc.Analyze("Gaming laptops deliver powerful graphics for modern games.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	kws := make(map[string]struct{}, len(features.Keywords))
	for _, kw := range features.Keywords {
		kws[kw] = struct{}{}
	}
	for _, topic := range features.TopicCandidates {
		if _, ok := kws[topic]; !ok {
			t.Errorf("topic %q not present in keywords", topic)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	svc := newTestService(t)
	text := "Healthy organic food delivered to your door every week."

	a, err := svc.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := svc.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if strings.Join(a.Keywords, "|") != strings.Join(b.Keywords, "|") {
		t.Error("keywords differ between identical calls")
	}
	if a.WordCount != b.WordCount {
		t.Error("word counts differ between identical calls")
	}
}

func TestSummarize(t *testing.T) {
	short := "short text"
	if got := summarize(short); got != short {
		t.Errorf("summarize(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("a", 300)
	got := summarize(long)
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis suffix on truncated summary")
	}
	if len([]rune(got)) != summaryLimit+3 {
		t.Errorf("summary length = %d, want %d", len([]rune(got)), summaryLimit+3)
	}

	exact := strings.Repeat("b", summaryLimit)
	if got := summarize(exact); got != exact {
		t.Error("text at exactly the limit must not be truncated")
	}
}

func TestNounPhrases_MultiWordOnly(t *testing.T) {
	svc := newTestService(t)

	features, err := svc.Analyze("Smart home devices automate your daily routines.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, np := range features.NounPhrases {
		if !strings.Contains(np, " ") {
			t.Errorf("noun phrase %q is not multi-word", np)
		}
	}
}

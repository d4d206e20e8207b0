package classify

import (
	"testing"

	"github.com/base234/hyper-privacy-backend/internal/sampledata"
)

func TestClassify_CategoryFromContent(t *testing.T) {
	svc := New(sampledata.Categories())

	c := svc.Classify("Travel packages to exotic destinations. Book now and save!")
	if len(c.Categories) != 1 || c.Categories[0] != "travel" {
		t.Errorf("categories = %v, want [travel]", c.Categories)
	}
}

func TestClassify_CategorySubstringOfKeyword(t *testing.T) {
	svc := New([]string{"pet"})

	// "pet" is a strict substring of the keyword "pets".
	c := svc.Classify("Toys your pets will love, guaranteed.")
	if len(c.Categories) != 1 || c.Categories[0] != "pet" {
		t.Errorf("categories = %v, want [pet]", c.Categories)
	}
}

func TestClassify_GeneralFallback(t *testing.T) {
	svc := New(sampledata.Categories())

	c := svc.Classify("Quarterly report available upon request.")
	if len(c.Categories) != 1 || c.Categories[0] != "general" {
		t.Errorf("categories = %v, want [general]", c.Categories)
	}
}

func TestClassify_KeywordCap(t *testing.T) {
	svc := New(sampledata.Categories())

	c := svc.Classify("alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima mike november")
	if len(c.Keywords) != topKeywords {
		t.Errorf("keyword count = %d, want %d", len(c.Keywords), topKeywords)
	}
}

func TestClassify_KeywordsRankedByFrequency(t *testing.T) {
	svc := New(sampledata.Categories())

	c := svc.Classify("coffee coffee coffee beans beans roast")
	if len(c.Keywords) < 3 {
		t.Fatalf("keywords = %v, want 3 terms", c.Keywords)
	}
	if c.Keywords[0] != "coffee" || c.Keywords[1] != "beans" || c.Keywords[2] != "roast" {
		t.Errorf("keywords = %v, want [coffee beans roast ...]", c.Keywords)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	svc := New(sampledata.Categories())
	content := "Gaming PCs built for maximum performance. Experience games like never before!"

	a := svc.Classify(content)
	b := svc.Classify(content)

	if a.AdID != b.AdID {
		t.Errorf("ad ids differ: %d vs %d", a.AdID, b.AdID)
	}
	if len(a.Keywords) != len(b.Keywords) {
		t.Fatal("keyword lists differ in length")
	}
	for i := range a.Keywords {
		if a.Keywords[i] != b.Keywords[i] {
			t.Errorf("keyword[%d] differs: %q vs %q", i, a.Keywords[i], b.Keywords[i])
		}
	}
	for i := range a.Categories {
		if a.Categories[i] != b.Categories[i] {
			t.Errorf("category[%d] differs: %q vs %q", i, a.Categories[i], b.Categories[i])
		}
	}
}

func TestClassify_AdIDRange(t *testing.T) {
	svc := New(sampledata.Categories())

	for _, ad := range sampledata.Ads() {
		c := svc.Classify(ad.Content)
		if c.AdID < 0 || c.AdID >= 10000 {
			t.Errorf("ad id %d out of [0,10000) for %q", c.AdID, ad.Content)
		}
	}
}

package sampledata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAds_NonEmpty(t *testing.T) {
	ads := Ads()
	if len(ads) == 0 {
		t.Fatal("built-in inventory is empty")
	}
	for i, ad := range ads {
		if ad.Content == "" {
			t.Errorf("ad %d has empty content", i)
		}
		if _, ok := ad.Metadata["category"]; !ok {
			t.Errorf("ad %d missing category metadata", i)
		}
	}
}

func TestLoadAds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ads.yaml")
	content := []byte(`
- content: "First ad"
  metadata:
    category: technology
- content: "Second ad"
  metadata:
    category: travel
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	ads, err := LoadAds(path)
	if err != nil {
		t.Fatalf("LoadAds: %v", err)
	}
	if len(ads) != 2 {
		t.Fatalf("got %d ads, want 2", len(ads))
	}
	if ads[0].Content != "First ad" || ads[0].Metadata["category"] != "technology" {
		t.Errorf("unexpected first ad: %+v", ads[0])
	}
}

func TestLoadAds_MissingFile(t *testing.T) {
	if _, err := LoadAds("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAds_EmptyList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ads.yaml")
	if err := os.WriteFile(path, []byte("[]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAds(path); err == nil {
		t.Fatal("expected error for empty ad list")
	}
}

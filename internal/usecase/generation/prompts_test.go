package generation

import (
	"strings"
	"testing"
)

func TestMarketTier(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{5_000_000, "Affordable"},
		{10_000_000, "Affordable"},
		{10_000_001, "Mid-range"},
		{20_000_000, "Mid-range"},
		{20_000_001, "Luxury"},
		{95_000_000, "Luxury"},
	}
	for _, tt := range tests {
		if got := marketTier(tt.price); got != tt.want {
			t.Errorf("marketTier(%d) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    int64
		currency string
		want     string
	}{
		{500, "", "500"},
		{1500, "", "1,500"},
		{12_500_000, "IDR", "12,500,000 IDR"},
		{1_000_000_000, "IDR", "1,000,000,000 IDR"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.price, tt.currency); got != tt.want {
			t.Errorf("formatPrice(%d, %q) = %q, want %q", tt.price, tt.currency, got, tt.want)
		}
	}
}

func TestBuildImagePrompt(t *testing.T) {
	basic := buildImagePrompt(false)
	detailed := buildImagePrompt(true)

	for _, c := range characteristics {
		if !strings.Contains(basic, c) {
			t.Errorf("basic prompt missing characteristic %q", c)
		}
	}
	if strings.Contains(basic, "observation") {
		t.Error("basic prompt should not ask for an observation")
	}
	if !strings.Contains(detailed, "observation") {
		t.Error("detailed prompt should ask for an observation")
	}
}

func TestBuildContentPromptIncludesMetadata(t *testing.T) {
	meta := &ListingMetadata{
		Location: "Kemang, South Jakarta",
		Price:    25_000_000,
		Size:     "120",
		Currency: "IDR",
	}

	prompt := buildContentPrompt("Bright living room.\n", map[string]int{"modern": 8}, meta)

	for _, want := range []string{
		"Kemang, South Jakarta",
		"120m²",
		"25,000,000 IDR",
		"Luxury",
		"Bright living room.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildContentPromptNilMetadata(t *testing.T) {
	prompt := buildContentPrompt("", map[string]int{}, nil)
	if strings.Contains(prompt, "Property details") {
		t.Error("nil metadata should omit the property details block")
	}
}

func TestFallbackContent(t *testing.T) {
	meta := &ListingMetadata{
		Location: "Kemang, South Jakarta",
		Size:     "85",
	}

	got := fallbackContent(meta)
	if got.Title != "Beautiful 85m² Property in Kemang" {
		t.Errorf("title: got %q", got.Title)
	}
	if !strings.Contains(got.Description, "Kemang") {
		t.Errorf("description missing short location: %q", got.Description)
	}
	if len(got.Highlights) != 4 {
		t.Errorf("highlights: got %d, want 4", len(got.Highlights))
	}

	// Identical inputs produce identical output.
	again := fallbackContent(meta)
	if again.Title != got.Title || again.Description != got.Description {
		t.Error("fallback content is not deterministic")
	}
}

func TestFallbackContentNoComma(t *testing.T) {
	got := fallbackContent(&ListingMetadata{Location: "Bandung", Size: "60"})
	if got.Title != "Beautiful 60m² Property in Bandung" {
		t.Errorf("title: got %q", got.Title)
	}
}

func TestFallbackContentNilMetadata(t *testing.T) {
	got := fallbackContent(nil)
	if got == nil || got.Title == "" || len(got.Highlights) == 0 {
		t.Errorf("nil metadata should still produce full content: %+v", got)
	}
}

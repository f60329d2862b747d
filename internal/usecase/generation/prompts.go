package generation

import (
	"fmt"
	"strings"
)

// The ten visual characteristics rated for every listing photo.
var characteristics = []string{
	"modern",
	"cozy",
	"luxurious",
	"minimalist",
	"colorful",
	"spacious",
	"natural_light",
	"urban",
	"rustic",
	"elegant",
}

// ListingMetadata is the structured context passed alongside images when
// marketing copy should be generated.
type ListingMetadata struct {
	Location string
	Price    int64
	Size     string
	Currency string
}

// buildImagePrompt returns the per-image analysis prompt. When detailed is
// set the model is additionally asked for a longer observation used later by
// the content-synthesis step.
func buildImagePrompt(detailed bool) string {
	var sb strings.Builder
	sb.WriteString("You are analyzing a photo of a rental property.\n\n")
	sb.WriteString("Rate each of the following visual characteristics of the space on an integer scale from 1 (not at all) to 10 (very much):\n")
	for _, c := range characteristics {
		sb.WriteString("- ")
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	sb.WriteString("\nAlso write a one-sentence \"description\" of what the photo shows.\n")
	if detailed {
		sb.WriteString("Additionally write a detailed \"observation\" (2-3 sentences) covering materials, furniture, lighting and anything a prospective tenant would notice.\n")
	}
	sb.WriteString("\nRespond with a single JSON object containing the ten ratings as integer fields plus \"description\"")
	if detailed {
		sb.WriteString(" and \"observation\"")
	}
	sb.WriteString(". No other text.")
	return sb.String()
}

// buildContentPrompt returns the content-synthesis prompt embedding the
// concatenated per-image observations, the aggregated characteristic scores
// and the supplied listing metadata.
func buildContentPrompt(observations string, ratings map[string]int, meta *ListingMetadata) string {
	var sb strings.Builder
	sb.WriteString("You are writing a marketing listing for a rental property.\n\n")

	sb.WriteString("Photo observations:\n")
	sb.WriteString(observations)
	sb.WriteString("\n\nAggregated visual characteristic scores (1-10):\n")
	for _, c := range characteristics {
		fmt.Fprintf(&sb, "- %s: %d\n", c, ratings[c])
	}

	if meta != nil {
		sb.WriteString("\nProperty details:\n")
		if meta.Location != "" {
			fmt.Fprintf(&sb, "- Location: %s\n", meta.Location)
		}
		if meta.Size != "" {
			fmt.Fprintf(&sb, "- Size: %sm²\n", meta.Size)
		}
		if meta.Price > 0 {
			fmt.Fprintf(&sb, "- Monthly price: %s\n", formatPrice(meta.Price, meta.Currency))
			fmt.Fprintf(&sb, "- Market tier: %s\n", marketTier(meta.Price))
		}
	}

	sb.WriteString(`
Task: Write an appealing listing title (max 60 characters), a description (2-3 paragraphs) and 4 to 6 short highlight tags.

Respond with a single JSON object: {"title": "...", "description": "...", "highlights": ["...", "..."]}. No other text.`)
	return sb.String()
}

// marketTier buckets a monthly price into a coarse label used to set the
// tone of the generated copy.
func marketTier(price int64) string {
	switch {
	case price > 20_000_000:
		return "Luxury"
	case price > 10_000_000:
		return "Mid-range"
	default:
		return "Affordable"
	}
}

// formatPrice renders the price with thousands separators, followed by the
// currency code when one is supplied.
func formatPrice(price int64, currency string) string {
	grouped := groupThousands(price)
	if currency == "" {
		return grouped
	}
	return grouped + " " + currency
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

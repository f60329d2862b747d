package generation

import (
	"fmt"
	"strings"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

// fallbackDescription marks a per-image record whose analysis call failed.
const fallbackDescription = "Unable to analyze image"

// neutralRating substitutes for a characteristic the model did not rate.
const neutralRating = 5

// fallbackImageAnalysis is the neutral record substituted when a single
// image's analysis fails. Every characteristic is rated 5 so the aggregate
// stays unbiased.
func fallbackImageAnalysis() domain.ImageAnalysis {
	ratings := make(map[string]int, len(characteristics))
	for _, c := range characteristics {
		ratings[c] = neutralRating
	}
	return domain.ImageAnalysis{
		Ratings:     ratings,
		Description: fallbackDescription,
	}
}

// fallbackContent is the deterministic template substituted when content
// synthesis fails, so an upload can always complete.
func fallbackContent(meta *ListingMetadata) *domain.GeneratedContent {
	location := ""
	size := ""
	if meta != nil {
		location = meta.Location
		size = meta.Size
	}

	locationShort := location
	if idx := strings.Index(location, ","); idx >= 0 {
		locationShort = location[:idx]
	}
	locationShort = strings.TrimSpace(locationShort)

	return &domain.GeneratedContent{
		Title: fmt.Sprintf("Beautiful %sm² Property in %s", size, locationShort),
		Description: fmt.Sprintf(
			"This %sm² property in %s offers comfortable living in a convenient location. Contact the owner for more details and to arrange a viewing.",
			size, locationShort,
		),
		Highlights: []string{
			"Prime Location",
			"Ready to Move In",
			"Well Maintained",
			"Contact for Viewing",
		},
	}
}

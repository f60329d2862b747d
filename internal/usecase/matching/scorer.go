package matching

import (
	"math"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

// Dimension weights for the overall score.
const (
	weightStyle      = 0.40
	weightColor      = 0.25
	weightActivities = 0.25
	weightPrice      = 0.10
)

// Score computes the compatibility of a listing against a seeker's
// preferences. It is pure and never fails: an unknown or missing vibe simply
// zeroes the three categorical dimensions.
func Score(listing *domain.Listing, prefs *domain.Preferences) domain.MatchScore {
	vibe := ""
	if listing.Vibe != nil {
		vibe = *listing.Vibe
	}

	breakdown := domain.ScoreBreakdown{
		Style:      overlapScore(prefs.Styles, vibeStyles[vibe]),
		Color:      overlapScore(prefs.Colors, vibeColors[vibe]),
		Activities: overlapScore(prefs.Activities, vibeActivities[vibe]),
		Price:      priceScore(listing.Price, prefs.PriceRange),
	}

	overall := int(math.Round(
		weightStyle*float64(breakdown.Style) +
			weightColor*float64(breakdown.Color) +
			weightActivities*float64(breakdown.Activities) +
			weightPrice*float64(breakdown.Price),
	))

	return domain.MatchScore{
		Overall:   overall,
		Breakdown: breakdown,
	}
}

// overlapScore measures how much of the seeker's tag list the vibe covers.
// The divisor is clamped to 1 so empty preferences score 0 instead of
// dividing by zero.
func overlapScore(wanted, vibeTags []string) int {
	if len(vibeTags) == 0 {
		return 0
	}

	tagSet := make(map[string]struct{}, len(vibeTags))
	for _, t := range vibeTags {
		tagSet[t] = struct{}{}
	}

	common := 0
	for _, w := range wanted {
		if _, ok := tagSet[w]; ok {
			common++
		}
	}

	divisor := len(wanted)
	if divisor < 1 {
		divisor = 1
	}

	score := int(math.Round(100 * float64(common) / float64(divisor)))
	if score > 100 {
		score = 100
	}
	return score
}

// priceScore is 100 inside the budget range. Outside it the penalty is
// relative to the nearer bound: (min-price)/min below the range and
// (price-max)/max above it. The two sides therefore fall off at different
// rates; that asymmetry is long-standing behavior that ranking tests pin
// down, so keep it.
func priceScore(price int64, r domain.PriceRange) int {
	if r.Contains(price) {
		return 100
	}

	p := float64(price)
	var score float64
	if p < float64(r.Min) {
		score = 100 - 100*(float64(r.Min)-p)/float64(r.Min)
	} else {
		score = 100 - 100*(p-float64(r.Max))/float64(r.Max)
	}

	if math.IsNaN(score) || score < 0 {
		return 0
	}
	return int(math.Round(score))
}

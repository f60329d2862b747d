package matching

// The five listing vibes. A listing carries at most one of them, and it keys
// the lookup tables below when scoring against a seeker's preferences.
const (
	VibeUrbanSanctuary = "Urban Sanctuary"
	VibeCozyRetreat    = "Cozy Retreat"
	VibeModernLuxe     = "Modern Luxe"
	VibeBohemianHaven  = "Bohemian Haven"
	VibeCoastalCalm    = "Coastal Calm"
)

var vibeStyles = map[string][]string{
	VibeUrbanSanctuary: {"modern", "industrial", "minimalist"},
	VibeCozyRetreat:    {"cozy", "rustic"},
	VibeModernLuxe:     {"modern", "luxurious", "elegant"},
	VibeBohemianHaven:  {"bohemian", "eclectic", "vintage"},
	VibeCoastalCalm:    {"coastal", "airy"},
}

var vibeColors = map[string][]string{
	VibeUrbanSanctuary: {"monochrome", "grey", "black"},
	VibeCozyRetreat:    {"warm", "earth-tones"},
	VibeModernLuxe:     {"neutral", "gold", "cream"},
	VibeBohemianHaven:  {"vibrant", "jewel-tones", "terracotta"},
	VibeCoastalCalm:    {"blue", "white", "sand"},
}

var vibeActivities = map[string][]string{
	VibeUrbanSanctuary: {"nightlife", "dining", "coworking"},
	VibeCozyRetreat:    {"reading", "cooking"},
	VibeModernLuxe:     {"entertaining", "fitness", "dining"},
	VibeBohemianHaven:  {"art", "music", "gardening"},
	VibeCoastalCalm:    {"beach", "yoga", "surfing"},
}

// KnownVibes returns the vibe names the scorer understands.
func KnownVibes() []string {
	return []string{
		VibeUrbanSanctuary,
		VibeCozyRetreat,
		VibeModernLuxe,
		VibeBohemianHaven,
		VibeCoastalCalm,
	}
}

// IsKnownVibe reports whether name is one of the five scored vibes.
func IsKnownVibe(name string) bool {
	_, ok := vibeStyles[name]
	return ok
}

package domain

// PriceRange is an inclusive monthly budget range in minor-unit-free currency units.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r PriceRange) IsValid() bool {
	return r.Min >= 0 && r.Max >= 0 && r.Min <= r.Max
}

func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// Preferences captures a seeker's housing preferences collected by the
// onboarding questionnaire. They live on the client for the duration of a
// browsing session and arrive with each feed request; there is no canonical
// server-side copy.
type Preferences struct {
	Styles     []string   `json:"styles"`
	Colors     []string   `json:"colors"`
	Activities []string   `json:"activities"`
	PriceRange PriceRange `json:"price_range"`
	Size       string     `json:"size"`
	Locations  []string   `json:"locations"`
	MoveInDate string     `json:"move_in_date"`
}

package types

type BasePageData struct {
	Title string
}

type DonationPageData struct {
	BasePageData
	Amount         int
	Name           string
	Postcode       string
	MinAmount      int
	MaxAmount      int
	AmountStep     int
	SupportedCount int
	Error          string
}

type MapPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type ImpactPageData struct {
	BasePageData
	Donation       DonationRecord
	SupportedCount int
	Reference      MapPoint
	Zoom           int
	TileURL        string
	Markers        []*CharityMarker
	Notice         string
}

// CharityMarker is one pin on the impact map.
type CharityMarker struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	DistanceKM float64 `json:"distance_km"`
	Rank       int     `json:"rank"`
	Supported  bool    `json:"supported"`
	Tooltip    string  `json:"tooltip"`
}

type MarkersResponse struct {
	Reference      MapPoint         `json:"reference"`
	ReferenceLabel string           `json:"reference_label"`
	SupportedCount int              `json:"supported_count"`
	Markers        []*CharityMarker `json:"markers"`
}

type CharityStoryPageData struct {
	BasePageData
	Charity *CharityWithStories
	Story   *CharityStory
}

type SuggestionPageData struct {
	BasePageData
	UserName    string
	Email       string
	CharityName string
	Reason      string
	Submitted   bool
	ReturnURL   string
	Error       string
}

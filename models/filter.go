package models

// ExploreFilter carries the client's filter state for the explore feed.
// Empty slices/zero values mean "no constraint".
type ExploreFilter struct {
	Styles   []string `json:"styles" form:"styles"`
	City     string   `json:"city" form:"city"`
	Types    []string `json:"types" form:"types"`
	Weekdays []int    `json:"weekdays" form:"weekdays"`
	PriceMax *float64 `json:"priceMax" form:"priceMax"`
	Query    string   `json:"query" form:"query"`
	Limit    int      `json:"limit" form:"limit"`
}

// IsZero reports whether the filter constrains nothing, i.e. the request is
// for the default feed.
func (f ExploreFilter) IsZero() bool {
	return len(f.Styles) == 0 && f.City == "" && len(f.Types) == 0 &&
		len(f.Weekdays) == 0 && f.PriceMax == nil && f.Query == "" && f.Limit == 0
}

// ExploreItem is one dated row in the explore feed: an event projected onto a
// concrete occurrence date, with its attendance count attached.
type ExploreItem struct {
	Event     Event  `json:"event"`
	Date      string `json:"date"`  // "2006-01-02"
	Index     int    `json:"index"` // position within the source event's expansion
	Attendees int64  `json:"attendees"`
}

package explore

import (
	"ritmo/models"
	"ritmo/services/schedule"
)

// ExploreService materializes recurring and one-off rows into the dated,
// chronologically sorted feed the client renders.
type ExploreService interface {
	// Explore returns upcoming occurrences matching the filter, globally sorted
	// by date then start time, with attendance counts attached.
	Explore(filter models.ExploreFilter) ([]models.ExploreItem, error)
	// DefaultFeed serves the unfiltered feed, preferring the cached copy.
	DefaultFeed() ([]models.ExploreItem, error)
	// RefreshDefaultFeed rebuilds the unfiltered feed and caches it.
	RefreshDefaultFeed() ([]models.ExploreItem, error)
	// UpcomingForEvent projects one event's next occurrences.
	UpcomingForEvent(eventID string, lookahead int) ([]schedule.Occurrence, error)
}

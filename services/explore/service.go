package explore

import (
	"fmt"
	"sort"
	"time"

	eventRepo "ritmo/database/repository/event"
	"ritmo/models"
	"ritmo/services/attendance"
	"ritmo/services/schedule"
)

// DefaultFeedLimit caps the assembled feed when the client sends no limit.
const DefaultFeedLimit = 100

// candidateFetchLimit bounds how many rows are pulled from the database before
// expansion; each row expands to a handful of occurrences at most.
const candidateFetchLimit = 500

// DefaultExploreService implements ExploreService.
type DefaultExploreService struct {
	Repo       eventRepo.EventRepository
	Attendance attendance.AttendanceService
	Cache      *schedule.ExpansionCache
	// Feed holds the materialized default feed; nil disables feed caching.
	Feed      FeedStore
	Lookahead int
	// Now is injectable for deterministic tests; nil means the system clock.
	Now func() time.Time
}

func (s *DefaultExploreService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultExploreService) lookahead() int {
	if s.Lookahead > 0 {
		return s.Lookahead
	}
	return schedule.DefaultLookahead
}

// sourceFromEvent maps a stored row's raw scheduling fields onto the boundary
// shape the schedule package resolves.
func sourceFromEvent(e models.Event) schedule.Source {
	return schedule.Source{
		Date:        e.Date,
		Weekday:     e.Weekday,
		Weekdays:    e.Weekdays,
		WeekdayName: e.WeekdayName,
		StartTime:   e.StartTime,
	}
}

func (s *DefaultExploreService) expand(e models.Event, now time.Time, lookahead int) []schedule.Occurrence {
	spec := schedule.Resolve(sourceFromEvent(e))
	if s.Cache != nil {
		return s.Cache.Expand(spec, e.ID, now, lookahead)
	}
	return schedule.Expand(spec, e.ID, now, lookahead)
}

// Explore builds the dated feed: fetch candidate rows, project each onto
// concrete occurrence dates, merge into one chronologically sorted list, then
// attach attendance counts.
func (s *DefaultExploreService) Explore(filter models.ExploreFilter) ([]models.ExploreItem, error) {
	now := s.now()
	loc := schedule.ReferenceLocation()
	todayKey := schedule.DateKey(schedule.TodayIn(loc, now))

	events, err := s.Repo.Find(BuildFilter(filter, todayKey), candidateFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch explore candidates: %w", err)
	}

	weekdaySet := make(map[int]struct{}, len(filter.Weekdays))
	for _, wd := range filter.Weekdays {
		weekdaySet[wd] = struct{}{}
	}

	var items []models.ExploreItem
	for _, event := range events {
		for _, occ := range s.expand(event, now, s.lookahead()) {
			// One-off rows bypass the weekday predicate at the query; enforce it
			// on the concrete occurrence date instead.
			if len(weekdaySet) > 0 && !occurrenceOnWeekday(occ, weekdaySet, loc) {
				continue
			}
			items = append(items, models.ExploreItem{
				Event: event,
				Date:  occ.Date,
				Index: occ.Index,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		left := schedule.ParseTimeOfDay(items[i].Event.StartTime).Minutes()
		right := schedule.ParseTimeOfDay(items[j].Event.StartTime).Minutes()
		if left != right {
			return left < right
		}
		return items[i].Event.Title < items[j].Event.Title
	})

	limit := filter.Limit
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}

	occurrences := make([]schedule.Occurrence, 0, len(items))
	for _, item := range items {
		occurrences = append(occurrences, schedule.Occurrence{
			Date: item.Date, Index: item.Index, SourceID: item.Event.ID,
		})
	}

	counts, err := s.Attendance.Counts(occurrences)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attendance counts: %w", err)
	}
	for i := range items {
		items[i].Attendees = counts[attendance.CountKey(items[i].Event.ID, items[i].Date)]
	}

	return items, nil
}

func occurrenceOnWeekday(occ schedule.Occurrence, weekdays map[int]struct{}, loc *time.Location) bool {
	day, err := time.ParseInLocation("2006-01-02", occ.Date, loc)
	if err != nil {
		return false
	}
	_, ok := weekdays[int(day.Weekday())]
	return ok
}

// UpcomingForEvent projects one event's next occurrences.
func (s *DefaultExploreService) UpcomingForEvent(eventID string, lookahead int) ([]schedule.Occurrence, error) {
	event, err := s.Repo.GetByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", eventID, err)
	}
	if event == nil {
		return nil, NewNotFoundError(eventID)
	}

	if lookahead <= 0 {
		lookahead = s.lookahead()
	}
	return s.expand(*event, s.now(), lookahead), nil
}

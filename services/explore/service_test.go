package explore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ritmo/models"
	"ritmo/services/attendance"
	"ritmo/services/schedule"
	"ritmo/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeEventRepo struct {
	events []models.Event
}

func (f *fakeEventRepo) GetByID(id string) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) GetByAcademy(academyID string) ([]models.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) Find(filter bson.M, limit int64) ([]models.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) Create(event *models.Event) error { return nil }
func (f *fakeEventRepo) Update(event *models.Event) error { return nil }
func (f *fakeEventRepo) Delete(id string) error           { return nil }

type fakeAttendance struct {
	counts map[string]int64
}

func (f *fakeAttendance) Attend(userID, eventID, date string) error   { return nil }
func (f *fakeAttendance) Unattend(userID, eventID, date string) error { return nil }

func (f *fakeAttendance) Count(eventID, date string) (int64, error) {
	return f.counts[attendance.CountKey(eventID, date)], nil
}

func (f *fakeAttendance) Counts(occurrences []schedule.Occurrence) (map[string]int64, error) {
	counts := make(map[string]int64, len(occurrences))
	for _, occ := range occurrences {
		counts[attendance.CountKey(occ.SourceID, occ.Date)] = f.counts[attendance.CountKey(occ.SourceID, occ.Date)]
	}
	return counts, nil
}

func (f *fakeAttendance) ListForUser(userID string) ([]models.Attendance, error) {
	return nil, nil
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// Thursday morning in the reference zone.
func fixedNow() time.Time {
	return time.Date(2024, 1, 4, 10, 0, 0, 0, schedule.ReferenceLocation())
}

func newService(events []models.Event, counts map[string]int64) *DefaultExploreService {
	return &DefaultExploreService{
		Repo:       &fakeEventRepo{events: events},
		Attendance: &fakeAttendance{counts: counts},
		Now:        fixedNow,
	}
}

func TestExploreMergesAndSortsAcrossRows(t *testing.T) {
	events := []models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
		{ID: "mon-class", Title: "Salsa", Weekday: intPtr(1), StartTime: "20:00"},
		{ID: "one-off", Title: "Gala", Date: strPtr("2024-01-12"), StartTime: "22:00"},
	}

	items, err := newService(events, nil).Explore(models.ExploreFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, items)

	// 4 per weekly row + 1 one-off.
	assert.Len(t, items, 9)

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Date == cur.Date {
			prevStart := schedule.ParseTimeOfDay(prev.Event.StartTime).Minutes()
			curStart := schedule.ParseTimeOfDay(cur.Event.StartTime).Minutes()
			assert.LessOrEqual(t, prevStart, curStart)
		} else {
			assert.Less(t, prev.Date, cur.Date)
		}
	}

	assert.Equal(t, "mon-class", items[0].Event.ID)
	assert.Equal(t, "2024-01-08", items[0].Date)
}

func TestExploreAttachesAttendanceCounts(t *testing.T) {
	events := []models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
	}
	counts := map[string]int64{
		attendance.CountKey("wed-class", "2024-01-10"): 12,
	}

	items, err := newService(events, counts).Explore(models.ExploreFilter{})
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, int64(12), items[0].Attendees)
	assert.Equal(t, int64(0), items[1].Attendees)
}

func TestExploreWeekdayPostFilterDropsOneOffs(t *testing.T) {
	events := []models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
		// 2024-01-12 is a Friday; must not survive a Wednesday filter.
		{ID: "fri-gala", Title: "Gala", Date: strPtr("2024-01-12"), StartTime: "22:00"},
	}

	items, err := newService(events, nil).Explore(models.ExploreFilter{Weekdays: []int{3}})
	require.NoError(t, err)
	require.Len(t, items, 4)

	for _, item := range items {
		assert.Equal(t, "wed-class", item.Event.ID)
	}
}

func TestExploreHonorsLimit(t *testing.T) {
	events := []models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
		{ID: "mon-class", Title: "Salsa", Weekday: intPtr(1), StartTime: "20:00"},
	}

	items, err := newService(events, nil).Explore(models.ExploreFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestExploreExpiredSameDayRowIsExcluded(t *testing.T) {
	events := []models.Event{
		// Today at 09:00, reference now is 10:00: expired.
		{ID: "morning", Title: "Rueda", Date: strPtr("2024-01-04"), StartTime: "09:00"},
	}

	items, err := newService(events, nil).Explore(models.ExploreFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExploreIsDeterministicForFixedNow(t *testing.T) {
	events := []models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
		{ID: "multi", Title: "Kizomba", Weekdays: []int{1, 5}, StartTime: "21:00"},
	}
	svc := newService(events, nil)

	first, err := svc.Explore(models.ExploreFilter{})
	require.NoError(t, err)
	second, err := svc.Explore(models.ExploreFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpcomingForEvent(t *testing.T) {
	events := []models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
	}
	svc := newService(events, nil)

	occurrences, err := svc.UpcomingForEvent("wed-class", 2)
	require.NoError(t, err)
	require.Len(t, occurrences, 2)
	assert.Equal(t, "2024-01-10", occurrences[0].Date)
	assert.Equal(t, "2024-01-17", occurrences[1].Date)
}

func TestUpcomingForEventNotFound(t *testing.T) {
	svc := newService(nil, nil)

	_, err := svc.UpcomingForEvent("missing", 2)
	require.Error(t, err)
	var exploreErr *ExploreError
	assert.ErrorAs(t, err, &exploreErr)
}

type fakeFeedStore struct {
	data map[string]string
	sets int
}

func newFakeFeedStore() *fakeFeedStore {
	return &fakeFeedStore{data: make(map[string]string)}
}

func (f *fakeFeedStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errors.New("missing key")
	}
	return v, nil
}

func (f *fakeFeedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.data[key] = string(value)
	f.sets++
	return nil
}

func TestDefaultFeedServesCachedCopy(t *testing.T) {
	cached := []models.ExploreItem{
		{Event: models.Event{ID: "cached-event", Title: "Cached"}, Date: "2024-01-09"},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	store := newFakeFeedStore()
	store.data[utils.FeedCacheKey] = string(payload)

	svc := newService([]models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
	}, nil)
	svc.Feed = store

	items, err := svc.DefaultFeed()
	require.NoError(t, err)
	assert.Equal(t, cached, items)
	assert.Zero(t, store.sets, "a cache hit must not rebuild the feed")
}

func TestDefaultFeedMissRebuildsAndCaches(t *testing.T) {
	store := newFakeFeedStore()
	svc := newService([]models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
	}, nil)
	svc.Feed = store

	items, err := svc.DefaultFeed()
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, 1, store.sets)

	var cached []models.ExploreItem
	require.NoError(t, json.Unmarshal([]byte(store.data[utils.FeedCacheKey]), &cached))
	assert.Equal(t, items, cached)

	again, err := svc.DefaultFeed()
	require.NoError(t, err)
	assert.Equal(t, items, again)
	assert.Equal(t, 1, store.sets, "the second request is a cache hit")
}

func TestDefaultFeedMalformedPayloadRebuilds(t *testing.T) {
	store := newFakeFeedStore()
	store.data[utils.FeedCacheKey] = "{not json"

	svc := newService([]models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
	}, nil)
	svc.Feed = store

	items, err := svc.DefaultFeed()
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, 1, store.sets, "a malformed payload is replaced")
}

func TestRefreshDefaultFeedOverwritesCache(t *testing.T) {
	store := newFakeFeedStore()
	store.data[utils.FeedCacheKey] = `[{"date":"1999-01-01"}]`

	svc := newService([]models.Event{
		{ID: "wed-class", Title: "Bachata", Weekday: intPtr(3), StartTime: "19:00"},
	}, nil)
	svc.Feed = store

	items, err := svc.RefreshDefaultFeed()
	require.NoError(t, err)
	require.Len(t, items, 4)

	var cached []models.ExploreItem
	require.NoError(t, json.Unmarshal([]byte(store.data[utils.FeedCacheKey]), &cached))
	assert.Equal(t, items, cached)
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wednesday19h() TimeOfDay {
	return TimeOfDay{Hour: 19, Minute: 0}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeOfDay
	}{
		{"padded", "19:00", TimeOfDay{19, 0}},
		{"with seconds", "09:30:00", TimeOfDay{9, 30}},
		{"unpadded", "9:5", TimeOfDay{9, 5}},
		{"surrounding space", " 21:15 ", TimeOfDay{21, 15}},
		{"empty falls back", "", DefaultTimeOfDay()},
		{"garbage falls back", "evening", DefaultTimeOfDay()},
		{"hour out of range", "25:00", DefaultTimeOfDay()},
		{"minute out of range", "12:61", DefaultTimeOfDay()},
		{"missing minute", "12", DefaultTimeOfDay()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeOfDay(tt.input))
		})
	}
}

func TestNextOccurrenceRejectsInvalidWeekday(t *testing.T) {
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, ReferenceLocation())

	for _, weekday := range []int{-1, 7, 100, -100} {
		_, err := NextOccurrence(weekday, wednesday19h(), now)
		assert.Error(t, err, "weekday %d must be rejected", weekday)
	}
}

func TestNextOccurrenceOnLaterWeekday(t *testing.T) {
	loc := ReferenceLocation()
	// Thursday; next Wednesday is six days out.
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	got, err := NextOccurrence(3, wednesday19h(), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 19, 0, 0, 0, loc), got)
	assert.Equal(t, time.Wednesday, got.Weekday())
}

func TestNextOccurrenceSameDayBeforeStart(t *testing.T) {
	loc := ReferenceLocation()
	// Wednesday 18:00, class at 19:00: today still counts.
	now := time.Date(2024, 1, 3, 18, 0, 0, 0, loc)

	got, err := NextOccurrence(3, wednesday19h(), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 19, 0, 0, 0, loc), got)
}

func TestNextOccurrenceSameDayAfterStart(t *testing.T) {
	loc := ReferenceLocation()
	// Wednesday 20:00, class at 19:00: already passed, next week.
	now := time.Date(2024, 1, 3, 20, 0, 0, 0, loc)

	got, err := NextOccurrence(3, wednesday19h(), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 19, 0, 0, 0, loc), got)
}

func TestNextOccurrenceAtExactStartMinute(t *testing.T) {
	loc := ReferenceLocation()
	// Exactly 19:00 is not yet passed: the occurrence equals now.
	now := time.Date(2024, 1, 3, 19, 0, 0, 0, loc)

	got, err := NextOccurrence(3, wednesday19h(), now)
	require.NoError(t, err)
	assert.Equal(t, now, got)
}

// The returned occurrence must be the smallest instant at or after now matching
// the requested weekday and time: one week earlier must precede now.
func TestNextOccurrenceIsSoonestMatch(t *testing.T) {
	loc := ReferenceLocation()
	reference := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	for weekday := 0; weekday <= 6; weekday++ {
		for _, tod := range []TimeOfDay{{0, 0}, {9, 59}, {10, 0}, {10, 1}, {23, 59}} {
			got, err := NextOccurrence(weekday, tod, reference)
			require.NoError(t, err)

			assert.Equal(t, time.Weekday(weekday), got.Weekday())
			assert.False(t, got.Before(reference), "occurrence %v precedes now for weekday=%d tod=%v", got, weekday, tod)
			assert.True(t, got.AddDate(0, 0, -7).Before(reference), "occurrence %v is not the soonest match for weekday=%d tod=%v", got, weekday, tod)
		}
	}
}

func TestWeeklyOccurrencesSpacingAndCount(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	occurrences, err := WeeklyOccurrences(3, wednesday19h(), now, 4)
	require.NoError(t, err)
	require.Len(t, occurrences, 4)

	want := []string{"2024-01-10", "2024-01-17", "2024-01-24", "2024-01-31"}
	for i, occ := range occurrences {
		assert.Equal(t, want[i], DateKey(occ))
	}
	for i := 1; i < len(occurrences); i++ {
		assert.Equal(t, 7*24*time.Hour, occurrences[i].Sub(occurrences[i-1]))
	}
}

func TestWeeklyOccurrencesUntilStaysWithinWindow(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)
	limit := now.AddDate(0, 1, 0)

	occurrences, err := WeeklyOccurrencesUntil(3, wednesday19h(), now, 1)
	require.NoError(t, err)
	require.NotEmpty(t, occurrences)

	for _, occ := range occurrences {
		assert.False(t, occ.After(limit), "occurrence %v exceeds the window", occ)
	}
	for i := 1; i < len(occurrences); i++ {
		assert.Equal(t, 7*24*time.Hour, occurrences[i].Sub(occurrences[i-1]))
	}
}

func TestUnionWeekdayOccurrences(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	union, err := UnionWeekdayOccurrences([]int{1, 3}, wednesday19h(), now, 1)
	require.NoError(t, err)
	require.NotEmpty(t, union)

	seen := make(map[string]struct{})
	for i, occ := range union {
		key := DateKey(occ)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate date %s", key)
		seen[key] = struct{}{}

		weekday := int(occ.Weekday())
		assert.Contains(t, []int{1, 3}, weekday)

		if i > 0 {
			assert.True(t, union[i-1].Before(occ), "union not sorted at index %d", i)
		}
	}
}

func TestUnionWeekdayOccurrencesPropagatesInvalidWeekday(t *testing.T) {
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, ReferenceLocation())

	_, err := UnionWeekdayOccurrences([]int{1, 9}, wednesday19h(), now, 1)
	assert.Error(t, err)
}

func TestTodayInResolvesAcrossZones(t *testing.T) {
	loc := ReferenceLocation()

	// 23:30 UTC on Jan 3 is already Jan 4 in Madrid (UTC+1 in winter).
	instant := time.Date(2024, 1, 3, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-04", DateKey(TodayIn(loc, instant)))

	local := NowIn(loc, instant)
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, 30, local.Minute())
}

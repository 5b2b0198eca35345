package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestExpandWeeklyRow(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc) // Thursday

	spec := Resolve(Source{Weekday: intPtr(3), StartTime: "19:00"})
	occurrences := Expand(spec, "class-1", now, 4)

	require.Len(t, occurrences, 4)
	want := []string{"2024-01-10", "2024-01-17", "2024-01-24", "2024-01-31"}
	for i, occ := range occurrences {
		assert.Equal(t, want[i], occ.Date)
		assert.Equal(t, i, occ.Index)
		assert.Equal(t, "class-1", occ.SourceID)
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)
	spec := Resolve(Source{Weekday: intPtr(3), StartTime: "19:00"})

	first := Expand(spec, "class-1", now, 4)
	second := Expand(spec, "class-1", now, 4)
	assert.Equal(t, first, second)
}

func TestExpandExplicitDate(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Date: strPtr("2024-02-14"), StartTime: "21:00"})
	occurrences := Expand(spec, "social-7", now, 4)

	require.Len(t, occurrences, 1)
	assert.Equal(t, Occurrence{Date: "2024-02-14", Index: 0, SourceID: "social-7"}, occurrences[0])
}

func TestExpandExplicitDateExpiredSameDay(t *testing.T) {
	loc := ReferenceLocation()
	// Today at 10:00, event started at 09:00: expired for display.
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Date: strPtr("2024-01-03"), StartTime: "09:00"})
	occurrences := Expand(spec, "social-7", now, 4)

	assert.Empty(t, occurrences)
}

func TestExpandExplicitDateSameDayStillUpcoming(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Date: strPtr("2024-01-03"), StartTime: "22:00"})
	occurrences := Expand(spec, "social-7", now, 4)

	require.Len(t, occurrences, 1)
	assert.Equal(t, "2024-01-03", occurrences[0].Date)
}

func TestExpandExplicitDateWithTimeComponent(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Date: strPtr("2024-03-09T22:30:00"), StartTime: "22:30"})
	occurrences := Expand(spec, "festival-2", now, 4)

	require.Len(t, occurrences, 1)
	assert.Equal(t, "2024-03-09", occurrences[0].Date)
}

func TestExpandMalformedDateDegradesToEmpty(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Date: strPtr("next friday"), StartTime: "21:00"})
	occurrences := Expand(spec, "social-7", now, 4)

	assert.Empty(t, occurrences)
}

func TestExpandUnscheduledRow(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	occurrences := Expand(Resolve(Source{}), "row-0", now, 4)
	assert.Empty(t, occurrences)
}

func TestExpandMultiWeekdayRow(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc) // Thursday

	spec := Resolve(Source{Weekdays: []int{1, 3}, StartTime: "19:00"})
	occurrences := Expand(spec, "class-2", now, 4)

	// Mondays Jan 8/15 interleave with Wednesdays Jan 10/17; the four soonest win.
	require.Len(t, occurrences, 4)
	want := []string{"2024-01-08", "2024-01-10", "2024-01-15", "2024-01-17"}
	for i, occ := range occurrences {
		assert.Equal(t, want[i], occ.Date)
		assert.Equal(t, i, occ.Index)
	}
}

func TestExpandDefaultLookahead(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Weekday: intPtr(5), StartTime: "20:30"})
	occurrences := Expand(spec, "class-3", now, 0)

	assert.Len(t, occurrences, DefaultLookahead)
}

func TestExpandStrictlyAscendingWithExactSpacing(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	spec := Resolve(Source{Weekday: intPtr(0), StartTime: "12:00"})
	occurrences := Expand(spec, "class-4", now, 6)
	require.Len(t, occurrences, 6)

	for i := 1; i < len(occurrences); i++ {
		prev, err := time.ParseInLocation("2006-01-02", occurrences[i-1].Date, loc)
		require.NoError(t, err)
		cur, err := time.ParseInLocation("2006-01-02", occurrences[i].Date, loc)
		require.NoError(t, err)
		assert.Equal(t, 7, int(cur.Sub(prev).Hours()/24))
	}
}

func TestExpandPanicsOnHandBuiltInvalidWeekday(t *testing.T) {
	loc := ReferenceLocation()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, loc)

	assert.Panics(t, func() {
		Expand(Spec{Kind: WeeklySingle, Weekday: 9, Start: TimeOfDay{20, 0}}, "bad-row", now, 4)
	})
	assert.Panics(t, func() {
		Expand(Spec{Kind: WeeklyMultiple, Weekdays: []int{1, 9}, Start: TimeOfDay{20, 0}}, "bad-row", now, 4)
	})
}

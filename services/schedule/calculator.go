package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision. Comparisons are done in
// minutes-since-midnight so no floating point is involved.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// DefaultTimeOfDay is used when a row's start time is missing or unparseable.
// Most socials and classes in the catalogue start in the evening, so 20:00 keeps
// a sane default cutoff for rows with bad data.
func DefaultTimeOfDay() TimeOfDay {
	return TimeOfDay{Hour: 20, Minute: 0}
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" (zero-padded or not). Malformed
// input falls back to DefaultTimeOfDay rather than failing: start times are
// frequently absent in upstream rows and a default preserves usability.
func ParseTimeOfDay(s string) TimeOfDay {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return DefaultTimeOfDay()
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return DefaultTimeOfDay()
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return DefaultTimeOfDay()
	}
	return TimeOfDay{Hour: hour, Minute: minute}
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func validWeekday(weekday int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("weekday %d out of range [0,6]", weekday)
	}
	return nil
}

// NextOccurrence returns the soonest instant at or after now that falls on the
// given weekday (0=Sunday..6=Saturday) at the given time of day, computed in
// now's location. If today matches the weekday but the time of day has already
// passed, the result is exactly one week out.
//
// An out-of-range weekday is a caller bug and returns an error; callers must
// validate upstream-sourced weekday values before calling.
func NextOccurrence(weekday int, tod TimeOfDay, now time.Time) (time.Time, error) {
	if err := validWeekday(weekday); err != nil {
		return time.Time{}, err
	}

	delta := (weekday - int(now.Weekday()) + 7) % 7
	if delta == 0 {
		nowMinutes := now.Hour()*60 + now.Minute()
		if nowMinutes > tod.Minutes() {
			delta = 7
		}
	}

	day := now.AddDate(0, 0, delta)
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, now.Location()), nil
}

// WeeklyOccurrences returns exactly count occurrences of the weekly slot,
// starting at the next occurrence relative to now and spaced exactly 7 days
// apart, in ascending order.
func WeeklyOccurrences(weekday int, tod TimeOfDay, now time.Time, count int) ([]time.Time, error) {
	first, err := NextOccurrence(weekday, tod, now)
	if err != nil {
		return nil, err
	}

	occurrences := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		occurrences = append(occurrences, first.AddDate(0, 0, 7*i))
	}
	return occurrences, nil
}

// WeeklyOccurrencesUntil returns all occurrences of the weekly slot from the
// next occurrence up to now + monthsAhead, spaced exactly 7 days apart.
func WeeklyOccurrencesUntil(weekday int, tod TimeOfDay, now time.Time, monthsAhead int) ([]time.Time, error) {
	first, err := NextOccurrence(weekday, tod, now)
	if err != nil {
		return nil, err
	}

	limit := now.AddDate(0, monthsAhead, 0)
	var occurrences []time.Time
	for cur := first; !cur.After(limit); cur = cur.AddDate(0, 0, 7) {
		occurrences = append(occurrences, cur)
	}
	return occurrences, nil
}

// UnionWeekdayOccurrences merges the occurrence sets of several weekdays within
// the months-ahead window, deduplicated by calendar date and sorted ascending.
func UnionWeekdayOccurrences(weekdays []int, tod TimeOfDay, now time.Time, monthsAhead int) ([]time.Time, error) {
	seen := make(map[string]struct{})
	var union []time.Time

	for _, weekday := range weekdays {
		occurrences, err := WeeklyOccurrencesUntil(weekday, tod, now, monthsAhead)
		if err != nil {
			return nil, err
		}
		for _, occ := range occurrences {
			key := DateKey(occ)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			union = append(union, occ)
		}
	}

	sort.Slice(union, func(i, j int) bool {
		return union[i].Before(union[j])
	})
	return union, nil
}

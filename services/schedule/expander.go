package schedule

import (
	"fmt"
	"sort"
	"time"

	"ritmo/utils"

	"go.uber.org/zap"
)

// DefaultLookahead is how many future occurrences a weekly row expands to when
// the caller does not say otherwise.
const DefaultLookahead = 4

// Occurrence is one concrete dated instance projected from a source row.
type Occurrence struct {
	Date     string `json:"date"` // "2006-01-02" in the reference timezone
	Index    int    `json:"index"`
	SourceID string `json:"sourceId"`
}

// Accepted layouts for explicit dates, most specific first. Rows commonly store
// a bare date; imported rows sometimes carry a time component or a full RFC3339
// timestamp.
var explicitDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseExplicitDate(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range explicitDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// Expand projects a resolved spec into at most lookahead dated occurrences,
// strictly ascending, relative to the injected now. It is a pure function of
// its inputs: the same spec and the same now always yield the same output.
//
// A malformed explicit date degrades to no occurrences with a logged warning
// instead of an error: expansion feeds bulk list rendering and one bad row must
// not abort the whole listing. Weekday specs must come from Resolve, which
// drops out-of-range weekdays; a hand-built spec carrying one is a caller bug
// and panics.
func Expand(spec Spec, sourceID string, now time.Time, lookahead int) []Occurrence {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	loc := ReferenceLocation()
	localNow := NowIn(loc, now)

	switch spec.Kind {
	case OneOff:
		day, ok := parseExplicitDate(spec.Date, loc)
		if !ok {
			utils.GetLogger().Warn("skipping row with unparseable date",
				zap.String("sourceId", sourceID), zap.String("date", spec.Date))
			return nil
		}
		// A same-day occurrence whose start time has already passed in the
		// reference zone is expired for display. Comparing minute-of-day on the
		// resolved reference-zone date avoids shifting the wall-clock numbers
		// through UTC twice.
		if DateKey(day) == DateKey(TodayIn(loc, now)) {
			nowMinutes := localNow.Hour()*60 + localNow.Minute()
			if nowMinutes > spec.Start.Minutes() {
				return nil
			}
		}
		return []Occurrence{{Date: DateKey(day), Index: 0, SourceID: sourceID}}

	case WeeklySingle:
		occurrences, err := WeeklyOccurrences(spec.Weekday, spec.Start, localNow, lookahead)
		if err != nil {
			// Resolve validates weekdays; reaching this is a caller bug.
			panic(fmt.Sprintf("expand %s: %v", sourceID, err))
		}
		return tagOccurrences(occurrences, sourceID)

	case WeeklyMultiple:
		seen := make(map[string]struct{})
		var merged []time.Time
		for _, weekday := range spec.Weekdays {
			occurrences, err := WeeklyOccurrences(weekday, spec.Start, localNow, lookahead)
			if err != nil {
				panic(fmt.Sprintf("expand %s: %v", sourceID, err))
			}
			for _, occ := range occurrences {
				key := DateKey(occ)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				merged = append(merged, occ)
			}
		}
		sort.Slice(merged, func(i, j int) bool {
			return merged[i].Before(merged[j])
		})
		if len(merged) > lookahead {
			merged = merged[:lookahead]
		}
		return tagOccurrences(merged, sourceID)

	default:
		return nil
	}
}

func tagOccurrences(dates []time.Time, sourceID string) []Occurrence {
	occurrences := make([]Occurrence, 0, len(dates))
	for i, d := range dates {
		occurrences = append(occurrences, Occurrence{
			Date:     DateKey(d),
			Index:    i,
			SourceID: sourceID,
		})
	}
	return occurrences
}

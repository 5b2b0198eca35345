package schedule

import "strings"

// Kind discriminates the closed set of recurrence shapes a row can resolve to.
type Kind int

const (
	// Unscheduled rows produce no occurrences.
	Unscheduled Kind = iota
	// OneOff rows carry a single explicit date.
	OneOff
	// WeeklySingle rows repeat on one weekday.
	WeeklySingle
	// WeeklyMultiple rows repeat on several weekdays.
	WeeklyMultiple
)

// Spec is the resolved recurrence of one source row. Raw rows arrive with many
// optional, overlapping fields (explicit date, numeric weekday, weekday list,
// legacy day-name strings); they are normalized here exactly once so the date
// math below only ever sees a closed, validated shape.
type Spec struct {
	Kind     Kind
	Date     string // OneOff: ISO date, optionally with a time component
	Weekday  int    // WeeklySingle: 0=Sunday..6=Saturday
	Weekdays []int  // WeeklyMultiple: validated, deduplicated
	Start    TimeOfDay
}

// Source is the raw scheduling shape of an upstream row.
type Source struct {
	Date        *string
	Weekday     *int
	Weekdays    []int
	WeekdayName string // legacy localized day name, e.g. "miércoles"
	StartTime   string // "HH:MM" or "HH:MM:SS"
}

// Legacy catalogue rows stored Spanish day names, accented or not.
var weekdayNames = map[string]int{
	"domingo":   0,
	"lunes":     1,
	"martes":    2,
	"miercoles": 3,
	"miércoles": 3,
	"jueves":    4,
	"viernes":   5,
	"sabado":    6,
	"sábado":    6,
}

// ParseWeekdayName maps a localized day name to its numeric weekday.
func ParseWeekdayName(name string) (int, bool) {
	weekday, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return weekday, ok
}

// Resolve normalizes a raw row into a Spec. Explicit dates win over weekday
// recurrences; weekday lists win over a single weekday; legacy day names are
// only consulted when no numeric weekday is present. Out-of-range weekday
// values are dropped here so the calculator never sees them.
func Resolve(src Source) Spec {
	start := ParseTimeOfDay(src.StartTime)

	if src.Date != nil && strings.TrimSpace(*src.Date) != "" {
		return Spec{Kind: OneOff, Date: strings.TrimSpace(*src.Date), Start: start}
	}

	if len(src.Weekdays) > 0 {
		seen := make(map[int]struct{})
		var weekdays []int
		for _, wd := range src.Weekdays {
			if wd < 0 || wd > 6 {
				continue
			}
			if _, ok := seen[wd]; ok {
				continue
			}
			seen[wd] = struct{}{}
			weekdays = append(weekdays, wd)
		}
		switch len(weekdays) {
		case 0:
			return Spec{Kind: Unscheduled}
		case 1:
			return Spec{Kind: WeeklySingle, Weekday: weekdays[0], Start: start}
		default:
			return Spec{Kind: WeeklyMultiple, Weekdays: weekdays, Start: start}
		}
	}

	if src.Weekday != nil {
		if *src.Weekday < 0 || *src.Weekday > 6 {
			return Spec{Kind: Unscheduled}
		}
		return Spec{Kind: WeeklySingle, Weekday: *src.Weekday, Start: start}
	}

	if src.WeekdayName != "" {
		if weekday, ok := ParseWeekdayName(src.WeekdayName); ok {
			return Spec{Kind: WeeklySingle, Weekday: weekday, Start: start}
		}
	}

	return Spec{Kind: Unscheduled}
}

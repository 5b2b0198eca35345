package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"ritmo/models"
	"ritmo/services/schedule"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// DefaultEventDuration is assumed when a row has no usable end time.
const DefaultEventDuration = 90 * time.Minute

// DefaultExportService implements ExportService.
type DefaultExportService struct{}

// NewDefaultExportService creates a new export service.
func NewDefaultExportService() ExportService {
	return &DefaultExportService{}
}

// Our weekday numbering is Sunday-based; rrule-go's is Monday-based.
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// ForOccurrence builds the ICS text and Google Calendar URL for one occurrence.
func (s *DefaultExportService) ForOccurrence(event models.Event, date string) (*CalendarExport, error) {
	loc := schedule.ReferenceLocation()

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid occurrence date %q: %w", date, err)
	}

	start, end := occurrenceWindow(event, day, loc)
	recur := weeklyRule(event)

	return &CalendarExport{
		FileName:  fmt.Sprintf("%s-%s.ics", slugify(event.Title), date),
		ICS:       buildICS(event, start, end, recur),
		GoogleURL: buildGoogleURL(event, start, end, recur),
	}, nil
}

// occurrenceWindow derives the concrete start/end pair for the occurrence from
// the row's time-of-day fields.
func occurrenceWindow(event models.Event, day time.Time, loc *time.Location) (time.Time, time.Time) {
	startTod := schedule.ParseTimeOfDay(event.StartTime)
	start := time.Date(day.Year(), day.Month(), day.Day(), startTod.Hour, startTod.Minute, 0, 0, loc)

	end := start.Add(DefaultEventDuration)
	if event.EndTime != "" {
		endTod := schedule.ParseTimeOfDay(event.EndTime)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), endTod.Hour, endTod.Minute, 0, 0, loc)
		if candidate.Before(start) {
			// Socials routinely run past midnight.
			candidate = candidate.AddDate(0, 0, 1)
		}
		end = candidate
	}
	return start, end
}

// weeklyRule returns the RRULE value for recurring rows, or "" for one-offs.
func weeklyRule(event models.Event) string {
	spec := schedule.Resolve(schedule.Source{
		Date:        event.Date,
		Weekday:     event.Weekday,
		Weekdays:    event.Weekdays,
		WeekdayName: event.WeekdayName,
		StartTime:   event.StartTime,
	})

	var weekdays []int
	switch spec.Kind {
	case schedule.WeeklySingle:
		weekdays = []int{spec.Weekday}
	case schedule.WeeklyMultiple:
		weekdays = spec.Weekdays
	default:
		return ""
	}

	byweekday := make([]rrule.Weekday, 0, len(weekdays))
	for _, wd := range weekdays {
		byweekday = append(byweekday, rruleWeekdays[wd])
	}

	option := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byweekday,
	}
	return option.RRuleString()
}

func buildICS(event models.Event, start, end time.Time, recur string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ritmo//EN")

	ve := cal.AddEvent(uuid.NewString() + "@ritmo")
	ve.SetDtStampTime(time.Now().UTC())
	ve.SetStartAt(start)
	ve.SetEndAt(end)
	ve.SetSummary(event.Title)
	if event.Description != "" {
		ve.SetDescription(event.Description)
	}
	if location := eventLocation(event); location != "" {
		ve.SetLocation(location)
	}
	if recur != "" {
		ve.AddRrule(recur)
	}

	return cal.Serialize()
}

func buildGoogleURL(event models.Event, start, end time.Time, recur string) string {
	const layout = "20060102T150405"

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", event.Title)
	params.Set("dates", start.Format(layout)+"/"+end.Format(layout))
	params.Set("ctz", schedule.ReferenceTimezone)
	if event.Description != "" {
		params.Set("details", event.Description)
	}
	if location := eventLocation(event); location != "" {
		params.Set("location", location)
	}
	if recur != "" {
		params.Set("recur", "RRULE:"+recur)
	}

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

func eventLocation(event models.Event) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{event.Venue, event.Address, event.City} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "event"
	}
	return slug
}

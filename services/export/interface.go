package export

import "ritmo/models"

// CalendarExport bundles everything a client needs to put one occurrence into
// an external calendar.
type CalendarExport struct {
	FileName  string `json:"fileName"`
	ICS       string `json:"ics"`
	GoogleURL string `json:"googleUrl"`
}

// ExportService builds calendar-export artifacts for a single occurrence.
type ExportService interface {
	// ForOccurrence builds the ICS text and Google Calendar URL for the given
	// event on the given occurrence date ("2006-01-02").
	ForOccurrence(event models.Event, date string) (*CalendarExport, error)
}

package attendance

import (
	"ritmo/models"
	"ritmo/services/schedule"
)

// AttendanceService manages per-occurrence RSVPs and their counts. Counts are
// served from Redis and backed by MongoDB; the cache key for one occurrence is
// attendance:<eventID>:<YYYY-MM-DD>.
type AttendanceService interface {
	// Attend records a user's RSVP for one occurrence.
	Attend(userID, eventID, date string) error
	// Unattend removes a user's RSVP for one occurrence.
	Unattend(userID, eventID, date string) error
	// Count returns the RSVP count for one occurrence.
	Count(eventID, date string) (int64, error)
	// Counts bulk-resolves RSVP counts for a set of occurrences, keyed by
	// "<eventID>:<date>".
	Counts(occurrences []schedule.Occurrence) (map[string]int64, error)
	// ListForUser returns all of a user's RSVPs.
	ListForUser(userID string) ([]models.Attendance, error)
}

// CountKey builds the map key used by Counts for one occurrence.
func CountKey(eventID, date string) string {
	return eventID + ":" + date
}

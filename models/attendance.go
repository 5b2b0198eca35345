package models

import "time"

// Attendance records one user's RSVP to a single dated occurrence of an event.
// The (EventID, Date) pair is the stable per-occurrence key used for counts.
type Attendance struct {
	ID      string `json:"id" bson:"id"`
	UserID  string `json:"userId" bson:"userId"`
	EventID string `json:"eventId" bson:"eventId"`
	Date    string `json:"date" bson:"date"` // "2006-01-02"

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

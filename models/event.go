package models

import "time"

// Event types as stored in the "type" field.
const (
	EventTypeClass    = "class"
	EventTypeSocial   = "social"
	EventTypeWorkshop = "workshop"
	EventTypeFestival = "festival"
)

// Event represents a class, social or one-off happening published on the platform.
// Scheduling is either a single explicit date or a weekly recurrence on one or
// more weekdays; the raw fields here are resolved into a closed schedule spec at
// the explore boundary before any date math happens.
type Event struct {
	ID          string   `json:"id" bson:"id"`
	Type        string   `json:"type" bson:"type"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Styles      []string `json:"styles" bson:"styles"`

	City    string `json:"city" bson:"city"`
	Venue   string `json:"venue,omitempty" bson:"venue,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	AcademyID   string `json:"academyId,omitempty" bson:"academyId,omitempty"`
	OrganizerID string `json:"organizerId,omitempty" bson:"organizerId,omitempty"`

	// One-off events carry an ISO date ("2006-01-02", optionally with a time
	// component). Recurring rows carry a numeric weekday (0=Sunday..6=Saturday)
	// or a weekday list. Legacy rows imported from the old catalogue may only
	// have a localized day name ("miércoles"); it is normalized at read time.
	Date        *string `json:"date,omitempty" bson:"date,omitempty"`
	Weekday     *int    `json:"weekday,omitempty" bson:"weekday,omitempty"`
	Weekdays    []int   `json:"weekdays,omitempty" bson:"weekdays,omitempty"`
	WeekdayName string  `json:"weekdayName,omitempty" bson:"weekdayName,omitempty"`

	StartTime string `json:"startTime,omitempty" bson:"startTime,omitempty"` // "HH:MM"
	EndTime   string `json:"endTime,omitempty" bson:"endTime,omitempty"`

	Price    float64 `json:"price" bson:"price"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`

	Published bool      `json:"published" bson:"published"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

package models

import "time"

// Academy represents a dance school offering recurring classes.
type Academy struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Styles      []string `json:"styles" bson:"styles"`
	City        string   `json:"city" bson:"city"`
	Address     string   `json:"address,omitempty" bson:"address,omitempty"`
	Phone       string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Website     string   `json:"website,omitempty" bson:"website,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Organizer represents an independent organizer of socials and festivals.
type Organizer struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Bio     string `json:"bio,omitempty" bson:"bio,omitempty"`
	City    string `json:"city" bson:"city"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

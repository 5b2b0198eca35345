package models

import "time"

// User represents a registered consumer account.
type User struct {
	ID           string   `json:"id" bson:"id"`
	Email        string   `json:"email" bson:"email"`
	Username     string   `json:"username" bson:"username"`
	PasswordHash string   `json:"-" bson:"passwordHash"`
	City         string   `json:"city,omitempty" bson:"city,omitempty"`
	Styles       []string `json:"styles,omitempty" bson:"styles,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

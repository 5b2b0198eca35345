package eventRepo

import (
	"ritmo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EventRepository defines methods for event data access.
type EventRepository interface {
	// GetByID retrieves an event by its unique ID.
	GetByID(id string) (*models.Event, error)
	// GetByAcademy retrieves all published events belonging to an academy.
	GetByAcademy(academyID string) ([]models.Event, error)
	// Find retrieves published events matching an arbitrary bson filter.
	Find(filter bson.M, limit int64) ([]models.Event, error)
	// Create inserts a new event record.
	Create(event *models.Event) error
	// Update modifies an existing event record.
	Update(event *models.Event) error
	// Delete removes an event record by its ID.
	Delete(id string) error
}

package academyRepo

import "ritmo/models"

// AcademyRepository defines methods for academy data access.
type AcademyRepository interface {
	// GetByID retrieves an academy by its unique ID.
	GetByID(id string) (*models.Academy, error)
	// GetByCity retrieves academies in a city, optionally filtered by style.
	GetByCity(city, style string) ([]models.Academy, error)
	// Create inserts a new academy record.
	Create(academy *models.Academy) error
	// Update modifies an existing academy record.
	Update(academy *models.Academy) error
	// Delete removes an academy record by its ID.
	Delete(id string) error
}

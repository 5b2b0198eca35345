package attendanceRepo

import "ritmo/models"

// AttendanceRepository defines methods for per-occurrence RSVP data access.
type AttendanceRepository interface {
	// Create inserts a new attendance record. Duplicate (userId, eventId, date)
	// records are rejected by a unique index.
	Create(att *models.Attendance) error
	// Delete removes a user's RSVP for one occurrence.
	Delete(userID, eventID, date string) error
	// Count returns the number of RSVPs for one occurrence.
	Count(eventID, date string) (int64, error)
	// GetByUser retrieves all RSVPs of one user.
	GetByUser(userID string) ([]models.Attendance, error)
}

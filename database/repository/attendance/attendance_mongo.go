package attendanceRepo

import (
	"context"
	"fmt"
	"time"

	"ritmo/database"
	"ritmo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAttendanceRepo implements AttendanceRepository using MongoDB.
type MongoAttendanceRepo struct {
	coll *mongo.Collection
}

// NewMongoAttendanceRepo creates a new instance of AttendanceRepository using MongoDB.
func NewMongoAttendanceRepo() AttendanceRepository {
	coll := database.Collection("attendance")
	repo := &MongoAttendanceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAttendanceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "eventId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "eventId", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new attendance document.
func (r *MongoAttendanceRepo) Create(att *models.Attendance) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	att.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, att)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("already attending event %s on %s", att.EventID, att.Date)
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

// Delete removes a user's RSVP for one occurrence.
func (r *MongoAttendanceRepo) Delete(userID, eventID, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "eventId": eventID, "date": date}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("attendance not found for event %s on %s", eventID, date)
	}
	return nil
}

// Count returns the number of RSVPs for one occurrence.
func (r *MongoAttendanceRepo) Count(eventID, date string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"eventId": eventID, "date": date})
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance for event %s on %s: %w", eventID, date, err)
	}
	return count, nil
}

// GetByUser retrieves all RSVPs of one user.
func (r *MongoAttendanceRepo) GetByUser(userID string) ([]models.Attendance, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve attendance for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	for cursor.Next(ctx) {
		var a models.Attendance
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, nil
}

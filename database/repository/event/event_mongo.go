package eventRepo

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

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in explore queries.
func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "published", Value: 1}}},
		{Keys: bson.D{{Key: "styles", Value: 1}}},
		{Keys: bson.D{{Key: "academyId", Value: 1}}},
		{Keys: bson.D{{Key: "weekday", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an event by its unique ID.
func (r *MongoEventRepo) GetByID(id string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// GetByAcademy retrieves all published events belonging to an academy.
func (r *MongoEventRepo) GetByAcademy(academyID string) ([]models.Event, error) {
	return r.Find(bson.M{"academyId": academyID}, 0)
}

// Find retrieves published events matching the given filter. A limit of 0 means
// no limit.
func (r *MongoEventRepo) Find(filter bson.M, limit int64) ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	filter["published"] = true

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	for cursor.Next(ctx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

// Create inserts a new event document.
func (r *MongoEventRepo) Create(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Update modifies an existing event document.
func (r *MongoEventRepo) Update(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	filter := bson.M{"id": event.ID}
	update := bson.M{"$set": event}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

// Delete removes an event document by its ID.
func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}

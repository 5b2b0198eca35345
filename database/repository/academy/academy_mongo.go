package academyRepo

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

// MongoAcademyRepo implements AcademyRepository using MongoDB.
type MongoAcademyRepo struct {
	coll *mongo.Collection
}

// NewMongoAcademyRepo creates a new instance of AcademyRepository using MongoDB.
func NewMongoAcademyRepo() AcademyRepository {
	coll := database.Collection("academies")
	repo := &MongoAcademyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAcademyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "styles", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an academy by its unique ID.
func (r *MongoAcademyRepo) GetByID(id string) (*models.Academy, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var academy models.Academy
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&academy); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch academy with id %s: %w", id, err)
	}
	return &academy, nil
}

// GetByCity retrieves academies in a city. An empty style matches all styles.
func (r *MongoAcademyRepo) GetByCity(city, style string) ([]models.Academy, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"city": city}
	if style != "" {
		filter["styles"] = style
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve academies: %w", err)
	}
	defer cursor.Close(ctx)

	var academies []models.Academy
	for cursor.Next(ctx) {
		var a models.Academy
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode academy: %w", err)
		}
		academies = append(academies, a)
	}
	return academies, nil
}

// Create inserts a new academy document.
func (r *MongoAcademyRepo) Create(academy *models.Academy) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	academy.CreatedAt = now
	academy.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, academy)
	if err != nil {
		return fmt.Errorf("failed to create academy: %w", err)
	}
	return nil
}

// Update modifies an existing academy document.
func (r *MongoAcademyRepo) Update(academy *models.Academy) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	academy.UpdatedAt = time.Now()
	filter := bson.M{"id": academy.ID}
	update := bson.M{"$set": academy}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update academy with id %s: %w", academy.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("academy with id %s not found", academy.ID)
	}
	return nil
}

// Delete removes an academy document by its ID.
func (r *MongoAcademyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete academy with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("academy with id %s not found", id)
	}
	return nil
}

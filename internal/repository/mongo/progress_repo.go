package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressCollectionName = "Progress"

// mongoProgressRepository implements repository.ProgressRepository.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a progress repository over the
// "Progress" collection.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// GetByUID retrieves the progress record for a user.
func (r *mongoProgressRepository) GetByUID(ctx context.Context, uid string) (*domain.ProgressRecord, error) {
	var record domain.ProgressRecord
	filter := bson.M{"user_id": uid}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a fresh zero-filled record. Two concurrent first-time
// logs can both reach this; the unique index on user_id rejects the
// second insert, which callers treat as success.
func (r *mongoProgressRepository) Create(ctx context.Context, record *domain.ProgressRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// IncrementDay adds calories to the single grid cell matching both the
// week and day labels. The array-filter update touches only that cell
// instead of rewriting the whole weeks array.
func (r *mongoProgressRepository) IncrementDay(ctx context.Context, uid, week, day string, calories int) error {
	filter := bson.M{
		"user_id":        uid,
		"weeks.week":     week,
		"weeks.days.day": day,
	}
	update := bson.M{
		"$inc": bson.M{"weeks.$[w].days.$[d].calories_burned": calories},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"w.week": week},
			bson.M{"d.day": day},
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetArrayFilters(arrayFilters))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrUpdateFailed
	}
	return nil
}

// EnsureProgressIndexes creates necessary indexes for the Progress
// collection. Call this once during application startup.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureProfileIndexes.
	}
}

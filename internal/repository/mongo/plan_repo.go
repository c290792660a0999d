package mongo

import (
	"context"
	"errors"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planCollectionName = "recommended_exercise"

// mongoPlanRepository implements repository.PlanRepository.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a plan repository over the
// "recommended_exercise" collection.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Upsert replaces the user's whole plan. A save always writes the full
// recomputed structure; there is no partial plan update.
func (r *mongoPlanRepository) Upsert(ctx context.Context, uid string, weeks []domain.WeekPlan) error {
	filter := bson.M{"uid": uid}
	update := bson.M{
		"$set": bson.M{"exercise_plan": weeks},
		"$setOnInsert": bson.M{
			"uid": uid,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByUID retrieves the stored plan for a user.
func (r *mongoPlanRepository) GetByUID(ctx context.Context, uid string) (*domain.ExercisePlan, error) {
	var plan domain.ExercisePlan
	filter := bson.M{"uid": uid}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// EnsurePlanIndexes creates necessary indexes for the
// recommended_exercise collection. Call this once during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureProfileIndexes.
	}
}

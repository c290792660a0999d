package mongo

import (
	"context"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const reviewCollectionName = "user_Reviews"

// mongoReviewRepository implements repository.ReviewRepository.
type mongoReviewRepository struct {
	collection *mongo.Collection
}

// NewMongoReviewRepository creates a review repository over the
// "user_Reviews" collection.
func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{
		collection: db.Collection(reviewCollectionName),
	}
}

// Create inserts a new review.
func (r *mongoReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	review.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, review)
	return err
}

// List returns every review in the collection.
func (r *mongoReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []domain.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

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

const questionnaireCollectionName = "questions"

// mongoQuestionnaireRepository implements repository.QuestionnaireRepository.
type mongoQuestionnaireRepository struct {
	collection *mongo.Collection
}

// NewMongoQuestionnaireRepository creates a questionnaire repository over
// the "questions" collection.
func NewMongoQuestionnaireRepository(db *mongo.Database) repository.QuestionnaireRepository {
	return &mongoQuestionnaireRepository{
		collection: db.Collection(questionnaireCollectionName),
	}
}

// GetByUID retrieves the questionnaire answers for a user.
func (r *mongoQuestionnaireRepository) GetByUID(ctx context.Context, uid string) (*domain.Questionnaire, error) {
	var q domain.Questionnaire
	filter := bson.M{"UID": uid}

	err := r.collection.FindOne(ctx, filter).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// EnsureQuestionnaireIndexes creates necessary indexes for the questions
// collection. Call this once during application startup.
func EnsureQuestionnaireIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "UID", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureProfileIndexes.
	}
}

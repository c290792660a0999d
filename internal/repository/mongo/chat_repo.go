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

const chatCollectionName = "chat_history"

// mongoChatRepository implements repository.ChatRepository.
type mongoChatRepository struct {
	collection *mongo.Collection
}

// NewMongoChatRepository creates a chat repository over the
// "chat_history" collection.
func NewMongoChatRepository(db *mongo.Database) repository.ChatRepository {
	return &mongoChatRepository{
		collection: db.Collection(chatCollectionName),
	}
}

// AppendMessage upserts the conversation and pushes the message.
// $setOnInsert guarantees uid and conversation_id are written exactly
// once, on the insert that creates the document; every later call only
// appends to the messages array.
func (r *mongoChatRepository) AppendMessage(ctx context.Context, uid, conversationID string, msg domain.ChatMessage) (bool, error) {
	filter := bson.M{"conversation_id": conversationID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"uid":             uid,
			"conversation_id": conversationID,
		},
		"$push": bson.M{"messages": msg},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedID != nil, nil
}

// GetByUID retrieves the single conversation owned by uid.
func (r *mongoChatRepository) GetByUID(ctx context.Context, uid string) (*domain.Conversation, error) {
	var convo domain.Conversation
	filter := bson.M{"uid": uid}

	err := r.collection.FindOne(ctx, filter).Decode(&convo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &convo, nil
}

// EnsureChatIndexes creates necessary indexes for the chat_history
// collection. Call this once during application startup.
func EnsureChatIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "conversation_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureProfileIndexes.
	}
}

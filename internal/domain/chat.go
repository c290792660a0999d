package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is a single entry in a conversation's message array.
type ChatMessage struct {
	Role      string    `bson:"role" json:"role"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Conversation is a chat_history document. Each user owns at most one
// conversation; uid and conversation_id are written exactly once (on the
// upsert that creates the document) and messages are only ever appended.
type Conversation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID            string             `bson:"uid" json:"uid"`
	ConversationID string             `bson:"conversation_id" json:"conversationId"`
	Messages       []ChatMessage      `bson:"messages" json:"messages"`
}

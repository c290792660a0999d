package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"github.com/google/uuid"
)

// ChatService persists and replays the per-user assistant conversation.
type ChatService interface {
	// SaveMessage appends a message to the conversation, creating the
	// conversation document on first use. Reports whether this call
	// created it.
	SaveMessage(ctx context.Context, uid, conversationID, role, text string, timestamp time.Time) (created bool, err error)
	// LoadChat returns the owner's messages sorted ascending by
	// timestamp. A user with no conversation gets an empty transcript,
	// not an error.
	LoadChat(ctx context.Context, uid string) ([]domain.ChatMessage, error)
	// ConversationID returns the owner's existing conversation id, or
	// mints a fresh one. A minted id is NOT persisted here; the document
	// appears when the first message is saved under it. Two racing first
	// calls may mint different ids, which is accepted.
	ConversationID(ctx context.Context, uid string) (string, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
}

// NewChatService creates a new chatService.
func NewChatService(chatRepo repository.ChatRepository) ChatService {
	return &chatService{chatRepo: chatRepo}
}

func (s *chatService) SaveMessage(ctx context.Context, uid, conversationID, role, text string, timestamp time.Time) (bool, error) {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	msg := domain.ChatMessage{
		Role:      role,
		Text:      text,
		Timestamp: timestamp,
	}
	return s.chatRepo.AppendMessage(ctx, uid, conversationID, msg)
}

func (s *chatService) LoadChat(ctx context.Context, uid string) ([]domain.ChatMessage, error) {
	convo, err := s.chatRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.ChatMessage{}, nil
		}
		return nil, err
	}

	messages := make([]domain.ChatMessage, len(convo.Messages))
	copy(messages, convo.Messages)
	// Storage preserves insertion order; display order is by timestamp.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (s *chatService) ConversationID(ctx context.Context, uid string) (string, error) {
	convo, err := s.chatRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.NewString(), nil
		}
		return "", err
	}
	return convo.ConversationID, nil
}

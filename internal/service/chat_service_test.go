package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMessageCreatesConversationOnce(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewChatService(repo)
	ctx := context.Background()

	created, err := svc.SaveMessage(ctx, "u1", "c1", "user", "hello", time.Now())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.SaveMessage(ctx, "u1", "c1", "assistant", "hi there", time.Now())
	require.NoError(t, err)
	assert.False(t, created)

	require.Len(t, repo.conversations, 1)
	convo := repo.conversations["c1"]
	assert.Equal(t, "u1", convo.UID)
	assert.Equal(t, "c1", convo.ConversationID)
	require.Len(t, convo.Messages, 2)
	assert.Equal(t, "hello", convo.Messages[0].Text)
	assert.Equal(t, "hi there", convo.Messages[1].Text)
}

func TestSaveMessageDefaultsZeroTimestamp(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewChatService(repo)

	_, err := svc.SaveMessage(context.Background(), "u1", "c1", "user", "hello", time.Time{})
	require.NoError(t, err)
	assert.False(t, repo.conversations["c1"].Messages[0].Timestamp.IsZero())
}

func TestLoadChatSortsByTimestamp(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewChatService(repo)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	// Inserted out of order on purpose.
	_, err := svc.SaveMessage(ctx, "u1", "c1", "assistant", "third", base.Add(2*time.Minute))
	require.NoError(t, err)
	_, err = svc.SaveMessage(ctx, "u1", "c1", "user", "first", base)
	require.NoError(t, err)
	_, err = svc.SaveMessage(ctx, "u1", "c1", "user", "second", base.Add(time.Minute))
	require.NoError(t, err)

	messages, err := svc.LoadChat(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "third", messages[2].Text)

	// Storage order is untouched.
	assert.Equal(t, "third", repo.conversations["c1"].Messages[0].Text)
}

func TestLoadChatEmptyWhenNoConversation(t *testing.T) {
	svc := NewChatService(newFakeChatRepo())

	messages, err := svc.LoadChat(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestConversationIDMintsWellFormedID(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewChatService(repo)

	id, err := svc.ConversationID(context.Background(), "u1")
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "minted id must be 8-4-4-4-12 hex groups")

	// Minting must not persist anything.
	assert.Empty(t, repo.conversations)
}

func TestConversationIDStableOnceConversationExists(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewChatService(repo)
	ctx := context.Background()

	_, err := svc.SaveMessage(ctx, "u1", "c1", "user", "hello", time.Now())
	require.NoError(t, err)

	first, err := svc.ConversationID(ctx, "u1")
	require.NoError(t, err)
	second, err := svc.ConversationID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", first)
	assert.Equal(t, first, second)
}

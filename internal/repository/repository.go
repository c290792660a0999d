package repository

import (
	"context"

	"fittrack/backend/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository reads user profiles created by the onboarding flow.
type ProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.UserProfile, error)
}

// QuestionnaireRepository reads questionnaire answers keyed by UID.
type QuestionnaireRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Questionnaire, error)
}

// ChatRepository manages per-user conversations.
type ChatRepository interface {
	// AppendMessage upserts the conversation document: owner and
	// conversation id are set only when the document is first created,
	// and the message is pushed onto the message array. It reports
	// whether the call created the conversation.
	AppendMessage(ctx context.Context, uid, conversationID string, msg domain.ChatMessage) (created bool, err error)
	// GetByUID returns the owner's single conversation, or ErrNotFound.
	GetByUID(ctx context.Context, uid string) (*domain.Conversation, error)
}

// PlanRepository stores the recomputed exercise plan per user.
type PlanRepository interface {
	// Upsert replaces the whole plan for the user, inserting if absent.
	Upsert(ctx context.Context, uid string, weeks []domain.WeekPlan) error
	GetByUID(ctx context.Context, uid string) (*domain.ExercisePlan, error)
}

// ProgressRepository manages the fixed 4x5 calorie-burn grid.
type ProgressRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.ProgressRecord, error)
	// Create inserts a fresh record. Concurrent first-time logs may both
	// attempt this; the unique index on user_id makes the loser fail with
	// a duplicate-key error the caller is expected to ignore.
	Create(ctx context.Context, record *domain.ProgressRecord) error
	// IncrementDay adds calories to the cell matching both the week and
	// day labels, via an array-filter update, and bumps updated_at.
	IncrementDay(ctx context.Context, uid, week, day string, calories int) error
}

// ReviewRepository is the append-only review collection.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
}

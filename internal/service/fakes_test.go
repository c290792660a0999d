package service

import (
	"context"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"
)

// In-memory repository fakes. They mimic only the store behavior the
// services rely on: ErrNotFound on misses, upsert-on-absent, and the
// array-filter increment.

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.UserProfile{}}
}

func (r *fakeProfileRepo) GetByUID(_ context.Context, uid string) (*domain.UserProfile, error) {
	if p, ok := r.profiles[uid]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

type fakeQuestionnaireRepo struct {
	questionnaires map[string]*domain.Questionnaire
}

func newFakeQuestionnaireRepo() *fakeQuestionnaireRepo {
	return &fakeQuestionnaireRepo{questionnaires: map[string]*domain.Questionnaire{}}
}

func (r *fakeQuestionnaireRepo) GetByUID(_ context.Context, uid string) (*domain.Questionnaire, error) {
	if q, ok := r.questionnaires[uid]; ok {
		return q, nil
	}
	return nil, repository.ErrNotFound
}

type fakeChatRepo struct {
	conversations map[string]*domain.Conversation // by conversation_id
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{conversations: map[string]*domain.Conversation{}}
}

func (r *fakeChatRepo) AppendMessage(_ context.Context, uid, conversationID string, msg domain.ChatMessage) (bool, error) {
	convo, ok := r.conversations[conversationID]
	if !ok {
		convo = &domain.Conversation{UID: uid, ConversationID: conversationID}
		r.conversations[conversationID] = convo
	}
	convo.Messages = append(convo.Messages, msg)
	return !ok, nil
}

func (r *fakeChatRepo) GetByUID(_ context.Context, uid string) (*domain.Conversation, error) {
	for _, convo := range r.conversations {
		if convo.UID == uid {
			return convo, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePlanRepo struct {
	plans map[string]*domain.ExercisePlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]*domain.ExercisePlan{}}
}

func (r *fakePlanRepo) Upsert(_ context.Context, uid string, weeks []domain.WeekPlan) error {
	r.plans[uid] = &domain.ExercisePlan{UID: uid, Weeks: weeks}
	return nil
}

func (r *fakePlanRepo) GetByUID(_ context.Context, uid string) (*domain.ExercisePlan, error) {
	if p, ok := r.plans[uid]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

type fakeProgressRepo struct {
	records map[string]*domain.ProgressRecord
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]*domain.ProgressRecord{}}
}

func (r *fakeProgressRepo) GetByUID(_ context.Context, uid string) (*domain.ProgressRecord, error) {
	if rec, ok := r.records[uid]; ok {
		return rec, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProgressRepo) Create(_ context.Context, record *domain.ProgressRecord) error {
	if _, ok := r.records[record.UserID]; ok {
		// Duplicate insert is swallowed, like the unique-index path.
		return nil
	}
	r.records[record.UserID] = record
	return nil
}

func (r *fakeProgressRepo) IncrementDay(_ context.Context, uid, week, day string, calories int) error {
	rec, ok := r.records[uid]
	if !ok {
		return repository.ErrUpdateFailed
	}
	for wi := range rec.Weeks {
		if rec.Weeks[wi].Week != week {
			continue
		}
		for di := range rec.Weeks[wi].Days {
			if rec.Weeks[wi].Days[di].Day == day {
				rec.Weeks[wi].Days[di].CaloriesBurned += calories
				return nil
			}
		}
	}
	return repository.ErrUpdateFailed
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) List(_ context.Context) ([]domain.Review, error) {
	return append([]domain.Review{}, r.reviews...), nil
}

// stubEstimator records its calls and returns a fixed value.
type stubEstimator struct {
	result float64
	calls  []estimatorCall
}

type estimatorCall struct {
	name   string
	sets   int
	reps   string
	weight float64
}

func (s *stubEstimator) Estimate(name string, sets int, reps string, weight float64) float64 {
	s.calls = append(s.calls, estimatorCall{name, sets, reps, weight})
	return s.result
}

func floatPtr(v float64) *float64 { return &v }

package api

import (
	"context"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/recommend"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Service stubs so handler tests exercise routing, binding and status
// mapping without a database.

type stubRecommendationService struct {
	meals []recommend.Meal
	plan  []domain.WeekPlan
	err   error
}

func (s *stubRecommendationService) RecommendMeals(_ context.Context, _ string) ([]recommend.Meal, error) {
	return s.meals, s.err
}

func (s *stubRecommendationService) RecommendExercises(_ context.Context, _ string) ([]domain.WeekPlan, error) {
	return s.plan, s.err
}

type savedMessage struct {
	uid, conversationID, role, text string
	timestamp                       time.Time
}

type stubChatService struct {
	created        bool
	messages       []domain.ChatMessage
	conversationID string
	err            error
	saved          []savedMessage
}

func (s *stubChatService) SaveMessage(_ context.Context, uid, conversationID, role, text string, timestamp time.Time) (bool, error) {
	s.saved = append(s.saved, savedMessage{uid, conversationID, role, text, timestamp})
	return s.created, s.err
}

func (s *stubChatService) LoadChat(_ context.Context, _ string) ([]domain.ChatMessage, error) {
	return s.messages, s.err
}

func (s *stubChatService) ConversationID(_ context.Context, _ string) (string, error) {
	return s.conversationID, s.err
}

type stubPlanService struct {
	saveErr     error
	savedWeeks  []domain.WeekPlan
	plan        *domain.ExercisePlan
	statusErr   error
	progress    []domain.CompletedExercise
	progressErr error
}

func (s *stubPlanService) SavePlan(_ context.Context, _ string, weeks []domain.WeekPlan) error {
	s.savedWeeks = weeks
	return s.saveErr
}

func (s *stubPlanService) GetStatus(_ context.Context, _ string) (*domain.ExercisePlan, error) {
	return s.plan, s.statusErr
}

func (s *stubPlanService) GetProgress(_ context.Context, _ string) ([]domain.CompletedExercise, error) {
	return s.progress, s.progressErr
}

type loggedCalories struct {
	uid, week, day string
	calories       int
}

type stubProgressService struct {
	logErr   error
	logged   []loggedCalories
	estimate *service.GoalEstimate
	estErr   error
}

func (s *stubProgressService) LogCalories(_ context.Context, uid, week, day string, calories int) error {
	s.logged = append(s.logged, loggedCalories{uid, week, day, calories})
	return s.logErr
}

func (s *stubProgressService) EstimateGoalDuration(_ context.Context, _ string) (*service.GoalEstimate, error) {
	return s.estimate, s.estErr
}

type stubReviewService struct {
	reviews   []domain.Review
	listErr   error
	submitErr error
	submitted []domain.Review
}

func (s *stubReviewService) List(_ context.Context) ([]domain.Review, error) {
	return s.reviews, s.listErr
}

func (s *stubReviewService) Submit(_ context.Context, name, review, rating string) error {
	s.submitted = append(s.submitted, domain.Review{Name: name, Review: review, Rating: rating})
	return s.submitErr
}

type stubs struct {
	recommendation *stubRecommendationService
	chat           *stubChatService
	plan           *stubPlanService
	progress       *stubProgressService
	review         *stubReviewService
}

func setupRouter() (*gin.Engine, *stubs) {
	gin.SetMode(gin.TestMode)
	s := &stubs{
		recommendation: &stubRecommendationService{},
		chat:           &stubChatService{},
		plan:           &stubPlanService{},
		progress:       &stubProgressService{},
		review:         &stubReviewService{},
	}
	router := gin.New()
	SetupRoutes(router, s.recommendation, s.chat, s.plan, s.progress, s.review)
	return router, s
}

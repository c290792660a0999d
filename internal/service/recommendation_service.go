package service

import (
	"context"
	"errors"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/recommend"
	"fittrack/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("User not found")
)

// MealPlanner computes a meal plan from a user profile.
type MealPlanner interface {
	MealPlan(profile *domain.UserProfile) []recommend.Meal
}

// ExercisePlanner computes an exercise plan from a user profile.
type ExercisePlanner interface {
	ExercisePlan(profile *domain.UserProfile) []domain.WeekPlan
}

// RecommendationService serves meal and exercise recommendations.
type RecommendationService interface {
	RecommendMeals(ctx context.Context, uid string) ([]recommend.Meal, error)
	RecommendExercises(ctx context.Context, uid string) ([]domain.WeekPlan, error)
}

type recommendationService struct {
	profileRepo repository.ProfileRepository
	meals       MealPlanner
	exercises   ExercisePlanner
}

// NewRecommendationService creates a new recommendationService.
func NewRecommendationService(profileRepo repository.ProfileRepository, meals MealPlanner, exercises ExercisePlanner) RecommendationService {
	return &recommendationService{
		profileRepo: profileRepo,
		meals:       meals,
		exercises:   exercises,
	}
}

// RecommendMeals looks up the profile and delegates to the meal planner.
func (s *recommendationService) RecommendMeals(ctx context.Context, uid string) ([]recommend.Meal, error) {
	profile, err := s.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.meals.MealPlan(profile), nil
}

// RecommendExercises looks up the profile and delegates to the exercise
// planner.
func (s *recommendationService) RecommendExercises(ctx context.Context, uid string) ([]domain.WeekPlan, error) {
	profile, err := s.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.exercises.ExercisePlan(profile), nil
}

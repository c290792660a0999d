package service

import (
	"context"
	"testing"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsForKnownUser(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.profiles["u1"] = &domain.UserProfile{UID: "u1", Weight: 70, Goal: "Weight Loss"}
	engine := recommend.NewEngine()
	svc := NewRecommendationService(profileRepo, engine, engine)
	ctx := context.Background()

	meals, err := svc.RecommendMeals(ctx, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, meals)

	plan, err := svc.RecommendExercises(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, plan, domain.ProgressWeeks)
}

func TestRecommendationsForUnknownUser(t *testing.T) {
	engine := recommend.NewEngine()
	svc := NewRecommendationService(newFakeProfileRepo(), engine, engine)
	ctx := context.Background()

	_, err := svc.RecommendMeals(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.RecommendExercises(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

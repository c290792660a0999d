package service

import (
	"context"
	"testing"

	"fittrack/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAndListReviews(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "Alex", "Great app", "4"))

	reviews, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Alex", reviews[0].Name)
	assert.Equal(t, "Great app", reviews[0].Review)
	assert.Equal(t, "4", reviews[0].Rating)
}

func TestListDefaultsMissingRating(t *testing.T) {
	repo := &fakeReviewRepo{reviews: []domain.Review{{Name: "Sam", Review: "ok"}}}
	svc := NewReviewService(repo)

	reviews, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "5", reviews[0].Rating)
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{})

	reviews, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

package service

import (
	"context"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"
)

// Rating assumed for legacy reviews stored without one.
const defaultRating = "5"

// ReviewService is the append-only review collection.
type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Submit(ctx context.Context, name, review, rating string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new reviewService.
func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	for i := range reviews {
		if reviews[i].Rating == "" {
			reviews[i].Rating = defaultRating
		}
	}
	return reviews, nil
}

func (s *reviewService) Submit(ctx context.Context, name, review, rating string) error {
	return s.reviewRepo.Create(ctx, &domain.Review{
		Name:   name,
		Review: review,
		Rating: rating,
	})
}

package service

import (
	"context"
	"errors"
	"fmt"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrQuestionnaireNotFound = errors.New("User questionnaire not found")
	ErrPlanNotFound          = errors.New("Exercise plan not found for user")
)

// MalformedEntryError reports which required key a submitted exercise
// entry is missing.
type MalformedEntryError struct {
	Key string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("Malformed exercise entry: missing %s", e.Key)
}

// CalorieEstimator computes calories burned for one exercise entry.
type CalorieEstimator interface {
	Estimate(name string, sets int, reps string, weight float64) float64
}

// PlanService stores exercise plans with server-derived calorie values
// and answers plan/progress reads.
type PlanService interface {
	// SavePlan validates every entry, recomputes its calories-burned from
	// the questionnaire weight, and replaces the user's stored plan.
	SavePlan(ctx context.Context, uid string, weeks []domain.WeekPlan) error
	// GetStatus returns the stored plan, or ErrPlanNotFound.
	GetStatus(ctx context.Context, uid string) (*domain.ExercisePlan, error)
	// GetProgress flattens completed entries with nonzero calories. A
	// missing plan degrades to an empty list, unlike GetStatus.
	GetProgress(ctx context.Context, uid string) ([]domain.CompletedExercise, error)
}

type planService struct {
	planRepo          repository.PlanRepository
	questionnaireRepo repository.QuestionnaireRepository
	estimator         CalorieEstimator
	logger            *zap.Logger
}

// NewPlanService creates a new planService.
func NewPlanService(planRepo repository.PlanRepository, questionnaireRepo repository.QuestionnaireRepository, estimator CalorieEstimator, logger *zap.Logger) PlanService {
	return &planService{
		planRepo:          planRepo,
		questionnaireRepo: questionnaireRepo,
		estimator:         estimator,
		logger:            logger,
	}
}

func (s *planService) SavePlan(ctx context.Context, uid string, weeks []domain.WeekPlan) error {
	q, err := s.questionnaireRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionnaireNotFound
		}
		return err
	}
	weight := q.WeightOrDefault()

	// Calories are always derived here; whatever the client sent in
	// calories_burned is discarded.
	for wi := range weeks {
		for di := range weeks[wi].Days {
			for ei := range weeks[wi].Days[di].Exercises {
				entry := &weeks[wi].Days[di].Exercises[ei]
				if key, ok := missingEntryKey(entry); !ok {
					s.logger.Error("malformed exercise entry in plan",
						zap.String("uid", uid),
						zap.String("missing", key),
						zap.String("week", weeks[wi].Week),
						zap.String("day", weeks[wi].Days[di].Day),
					)
					return &MalformedEntryError{Key: key}
				}
				entry.CaloriesBurned = s.estimator.Estimate(entry.Name, entry.Sets, entry.Repetition, weight)
			}
		}
	}

	if err := s.planRepo.Upsert(ctx, uid, weeks); err != nil {
		s.logger.Error("failed to save exercise plan", zap.String("uid", uid), zap.Error(err))
		return err
	}
	return nil
}

// missingEntryKey reports the first required key an entry lacks, keyed by
// the client-facing field names.
func missingEntryKey(entry *domain.ExerciseEntry) (string, bool) {
	switch {
	case entry.Name == "":
		return "Exercises", false
	case entry.Sets <= 0:
		return "Sets", false
	case entry.Repetition == "":
		return "Repetition", false
	}
	return "", true
}

func (s *planService) GetStatus(ctx context.Context, uid string) (*domain.ExercisePlan, error) {
	plan, err := s.planRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetProgress(ctx context.Context, uid string) ([]domain.CompletedExercise, error) {
	plan, err := s.planRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.CompletedExercise{}, nil
		}
		return nil, err
	}

	progress := []domain.CompletedExercise{}
	for _, week := range plan.Weeks {
		for _, day := range week.Days {
			for _, entry := range day.Exercises {
				if entry.Completed && entry.CaloriesBurned > 0 {
					progress = append(progress, domain.CompletedExercise{
						Week:           week.Week,
						Day:            day.Day,
						Exercise:       entry.Name,
						CaloriesBurned: entry.CaloriesBurned,
					})
				}
			}
		}
	}
	return progress, nil
}

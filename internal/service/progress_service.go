package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProgressNotFound    = errors.New("Progress not found")
	ErrNoEffectiveProgress = errors.New("No effective progress yet")
	ErrNoWeeklyProgress    = errors.New("No weekly progress detected")
)

// Assumed safe rate of weight change, in kg per week.
const kgPerWeek = 0.5

// goalDateLayout renders estimates as day and month, e.g. "14 November".
const goalDateLayout = "02 January"

// GoalEstimate is the result of a goal-duration projection. Date is nil
// when the user is already at their goal.
type GoalEstimate struct {
	Date    *string `json:"date"`
	Message string  `json:"message"`
}

// ProgressService accumulates calorie-burn logs and projects goal dates.
type ProgressService interface {
	// LogCalories adds calories to the week/day cell, lazily creating the
	// zero-filled grid for first-time users. Deliberately not idempotent:
	// repeated identical logs accumulate.
	LogCalories(ctx context.Context, uid, week, day string, calories int) error
	// EstimateGoalDuration projects when the user reaches their target
	// weight from their questionnaire and logged progress.
	EstimateGoalDuration(ctx context.Context, uid string) (*GoalEstimate, error)
}

type progressService struct {
	progressRepo      repository.ProgressRepository
	questionnaireRepo repository.QuestionnaireRepository
	now               func() time.Time
}

// NewProgressService creates a new progressService.
func NewProgressService(progressRepo repository.ProgressRepository, questionnaireRepo repository.QuestionnaireRepository) ProgressService {
	return &progressService{
		progressRepo:      progressRepo,
		questionnaireRepo: questionnaireRepo,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *progressService) LogCalories(ctx context.Context, uid, week, day string, calories int) error {
	_, err := s.progressRepo.GetByUID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		if err = s.progressRepo.Create(ctx, domain.NewProgressRecord(uid)); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return s.progressRepo.IncrementDay(ctx, uid, week, day, calories)
}

func (s *progressService) EstimateGoalDuration(ctx context.Context, uid string) (*GoalEstimate, error) {
	q, err := s.questionnaireRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	progress, err := s.progressRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	currentWeight := q.WeightOrDefault()
	targetWeight := currentWeight
	if q.TargetWeight != nil {
		targetWeight = *q.TargetWeight
	}

	weightDiff := math.Abs(currentWeight - targetWeight)
	if weightDiff == 0 || q.Goal == domain.GoalStayFit {
		return &GoalEstimate{
			Date:    nil,
			Message: "You're already at your goal. Maintain your progress!",
		}, nil
	}

	totalWeeksNeeded := weightDiff / kgPerWeek

	// A week counts fractionally by its share of days with any burn.
	completedWeeks := 0.0
	for _, week := range progress.Weeks {
		if len(week.Days) == 0 {
			continue
		}
		completedDays := 0
		for _, d := range week.Days {
			if d.CaloriesBurned > 0 {
				completedDays++
			}
		}
		completedWeeks += float64(completedDays) / float64(len(week.Days))
	}

	if completedWeeks == 0 {
		return nil, ErrNoEffectiveProgress
	}
	if len(progress.Weeks) > 0 && completedWeeks/float64(len(progress.Weeks)) == 0 {
		return nil, ErrNoWeeklyProgress
	}

	remainingWeeks := math.Max(totalWeeksNeeded-completedWeeks, 0)
	estimated := s.now().Add(weeksToDuration(remainingWeeks))
	formatted := estimated.Format(goalDateLayout)

	return &GoalEstimate{
		Date:    &formatted,
		Message: fmt.Sprintf("You will reach your goal by %s.", formatted),
	}, nil
}

func weeksToDuration(weeks float64) time.Duration {
	return time.Duration(weeks * 7 * 24 * float64(time.Hour))
}

package recommend

import (
	"fmt"

	"fittrack/backend/internal/domain"
)

// exerciseTemplate is one entry of a goal's rotating exercise pool.
type exerciseTemplate struct {
	name string
	sets int
	reps string
}

var exercisePoolByGoal = map[string][]exerciseTemplate{
	domain.GoalWeightLoss: {
		{"Jumping Jacks", 3, "30"},
		{"Burpees", 3, "12"},
		{"Mountain Climbers", 3, "20"},
		{"Squat", 3, "15"},
		{"Plank", 3, "45"},
		{"Lunges", 3, "12"},
	},
	domain.GoalMuscleGain: {
		{"Squat", 4, "8-12"},
		{"Bench Press", 4, "8-10"},
		{"Deadlift", 3, "6-8"},
		{"Pull Ups", 3, "8"},
		{"Shoulder Press", 3, "10"},
		{"Barbell Row", 3, "8-12"},
	},
	domain.GoalStayFit: {
		{"Push Ups", 3, "15"},
		{"Squat", 3, "12"},
		{"Plank", 3, "30"},
		{"Lunges", 3, "10"},
		{"Crunches", 3, "20"},
		{"Jumping Jacks", 3, "25"},
	},
}

// Entries per training day.
const exercisesPerDay = 3

// ExercisePlan builds a 4-week, 5-day plan matching the fixed progress
// grid. Days rotate through the goal's exercise pool so consecutive days
// do not repeat the same three entries.
func (e *Engine) ExercisePlan(profile *domain.UserProfile) []domain.WeekPlan {
	goal := resolveGoal(profile.Goal)
	pool := exercisePoolByGoal[goal]

	weeks := make([]domain.WeekPlan, 0, domain.ProgressWeeks)
	offset := 0
	for w := 1; w <= domain.ProgressWeeks; w++ {
		days := make([]domain.DayPlan, 0, domain.ProgressDaysPerWeek)
		for d := 1; d <= domain.ProgressDaysPerWeek; d++ {
			entries := make([]domain.ExerciseEntry, 0, exercisesPerDay)
			for i := 0; i < exercisesPerDay; i++ {
				t := pool[(offset+i)%len(pool)]
				entries = append(entries, domain.ExerciseEntry{
					Name:       t.name,
					Sets:       t.sets,
					Repetition: t.reps,
				})
			}
			offset++
			days = append(days, domain.DayPlan{
				Day:       fmt.Sprintf("Day %d", d),
				Exercises: entries,
			})
		}
		weeks = append(weeks, domain.WeekPlan{
			Week: fmt.Sprintf("Week %d", w),
			Days: days,
		})
	}
	return weeks
}

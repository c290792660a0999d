package recommend

import (
	"strings"

	"fittrack/backend/internal/domain"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Engine computes meal plans, exercise plans and calorie estimates from a
// user profile. Handlers treat it as a black box behind the small
// interfaces declared in the service package.
type Engine struct{}

// NewEngine creates a recommendation engine.
func NewEngine() *Engine {
	return &Engine{}
}

var goalCategories = []string{
	domain.GoalWeightLoss,
	domain.GoalMuscleGain,
	domain.GoalStayFit,
}

// minGoalScore is the fuzzy ratio below which a goal string is treated as
// unrecognized and falls back to Stay Fit.
const minGoalScore = 60

// resolveGoal maps a free-text goal answer onto one of the known
// categories. Questionnaire answers arrive with inconsistent casing and
// occasional typos ("weightloss", "musle gain"), so exact matching is not
// enough.
func resolveGoal(goal string) string {
	best := domain.GoalStayFit
	bestScore := 0
	for _, category := range goalCategories {
		score := fuzzy.Ratio(strings.ToLower(goal), strings.ToLower(category))
		if score > bestScore {
			bestScore = score
			best = category
		}
	}
	if bestScore < minGoalScore {
		return domain.GoalStayFit
	}
	return best
}

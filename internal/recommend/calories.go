package recommend

import (
	"math"
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MET values per exercise, from the compendium of physical activities.
// Lookup is fuzzy because plan entries carry client-typed names.
var metByExercise = map[string]float64{
	"Squat":             5.0,
	"Bench Press":       3.8,
	"Deadlift":          6.0,
	"Pull Ups":          8.0,
	"Push Ups":          3.8,
	"Shoulder Press":    4.0,
	"Barbell Row":       4.5,
	"Lunges":            4.0,
	"Plank":             3.3,
	"Crunches":          3.8,
	"Burpees":           8.0,
	"Jumping Jacks":     7.7,
	"Mountain Climbers": 8.0,
	"Running":           9.8,
	"Cycling":           7.5,
	"Walking":           3.5,
}

const (
	defaultMET      = 4.0
	minExerciseName = 55 // fuzzy ratio cutoff for name matching
	secondsPerRep   = 4.0
	restPerSetMin   = 1.0
)

// metFor resolves an exercise name to its MET value by best fuzzy ratio.
func metFor(name string) float64 {
	best := defaultMET
	bestScore := minExerciseName
	for known, met := range metByExercise {
		score := fuzzy.Ratio(strings.ToLower(name), strings.ToLower(known))
		if score > bestScore {
			bestScore = score
			best = met
		}
	}
	return best
}

// parseReps reads a repetition spec like "10" or "8-12"; ranges average
// to their midpoint. Unparseable specs count as 10.
func parseReps(reps string) float64 {
	reps = strings.TrimSpace(reps)
	if lo, hi, ok := strings.Cut(reps, "-"); ok {
		a, errA := strconv.Atoi(strings.TrimSpace(lo))
		b, errB := strconv.Atoi(strings.TrimSpace(hi))
		if errA == nil && errB == nil {
			return float64(a+b) / 2
		}
	}
	if n, err := strconv.Atoi(reps); err == nil {
		return float64(n)
	}
	return 10
}

// Estimate computes the calories burned for an exercise done for the
// given sets and reps at the given body weight, using the standard
// kcal/min = MET * 3.5 * kg / 200 rate over the working plus rest time.
func (e *Engine) Estimate(name string, sets int, reps string, weight float64) float64 {
	met := metFor(name)
	minutes := float64(sets)*parseReps(reps)*secondsPerRep/60 + float64(sets)*restPerSetMin
	kcal := met * 3.5 * weight / 200 * minutes
	return math.Round(kcal*10) / 10
}

package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseEntry is one exercise inside a day of the plan. Field casing
// follows the document format the mobile client already writes
// ("Exercises", "Sets", "Repetition"). CaloriesBurned is derived
// server-side on every save and never trusted from the client.
type ExerciseEntry struct {
	Name           string  `bson:"Exercises" json:"Exercises"`
	Sets           int     `bson:"Sets" json:"Sets"`
	Repetition     string  `bson:"Repetition" json:"Repetition"`
	Completed      bool    `bson:"Completed,omitempty" json:"Completed,omitempty"`
	CaloriesBurned float64 `bson:"calories_burned" json:"calories_burned"`
}

// DayPlan groups the exercises of a single labeled day ("Day 1"...).
type DayPlan struct {
	Day       string          `bson:"day" json:"day"`
	Exercises []ExerciseEntry `bson:"exercises" json:"exercises"`
}

// WeekPlan groups the days of a single labeled week ("Week 1"...).
type WeekPlan struct {
	Week string    `bson:"week" json:"week"`
	Days []DayPlan `bson:"days" json:"days"`
}

// ExercisePlan is a recommended_exercise document: the full plan for one
// user, replaced wholesale on every save.
type ExercisePlan struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID   string             `bson:"uid" json:"uid"`
	Weeks []WeekPlan         `bson:"exercise_plan" json:"exercise_plan"`
}

// CompletedExercise is one row of the flattened progress view: an
// exercise marked completed with a nonzero calorie value.
type CompletedExercise struct {
	Week           string  `json:"week"`
	Day            string  `json:"day"`
	Exercise       string  `json:"exercise"`
	CaloriesBurned float64 `json:"calories_burned"`
}

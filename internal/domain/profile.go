package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal categories as stored in the questionnaire "Goals" field.
const (
	GoalWeightLoss = "Weight Loss"
	GoalMuscleGain = "Muscle Gain"
	GoalStayFit    = "Stay Fit"
)

// UserProfile is the document the questionnaire flow creates in the
// "users" collection. This service only reads it; creation happens in the
// onboarding app.
type UserProfile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID    string             `bson:"UID" json:"uid"`
	Name   string             `bson:"Name,omitempty" json:"name,omitempty"`
	Age    int                `bson:"Age,omitempty" json:"age,omitempty"`
	Gender string             `bson:"Gender,omitempty" json:"gender,omitempty"`
	Weight float64            `bson:"Weight,omitempty" json:"weight,omitempty"`
	Height float64            `bson:"Height,omitempty" json:"height,omitempty"`
	Goal   string             `bson:"Goals,omitempty" json:"goal,omitempty"`
	Diet   string             `bson:"Diet,omitempty" json:"diet,omitempty"`
}

// Questionnaire holds the answers used for plan building and goal
// estimation. Field names mirror the questionnaire form, including the
// space in "Target Weight".
type Questionnaire struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID          string             `bson:"UID" json:"uid"`
	Weight       *float64           `bson:"Weight,omitempty" json:"weight,omitempty"`
	TargetWeight *float64           `bson:"Target Weight,omitempty" json:"targetWeight,omitempty"`
	Goal         string             `bson:"Goals,omitempty" json:"goal,omitempty"`
}

// DefaultWeight is assumed when a questionnaire has no weight answer.
const DefaultWeight = 70.0

// WeightOrDefault returns the answered weight, or DefaultWeight when the
// question was skipped.
func (q *Questionnaire) WeightOrDefault() float64 {
	if q.Weight == nil {
		return DefaultWeight
	}
	return *q.Weight
}

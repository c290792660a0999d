package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress grid dimensions. The tracking UI renders a fixed four-week
// program with five training days per week.
const (
	ProgressWeeks       = 4
	ProgressDaysPerWeek = 5
)

// DayProgress accumulates calories burned for one labeled day.
type DayProgress struct {
	Day            string `bson:"day" json:"day"`
	CaloriesBurned int    `bson:"calories_burned" json:"calories_burned"`
}

// WeekProgress holds one labeled week of day counters.
type WeekProgress struct {
	Week string        `bson:"week" json:"week"`
	Days []DayProgress `bson:"days" json:"days"`
}

// ProgressRecord is a Progress document. It is lazily created with every
// counter at zero on the first log event for a user and incremented in
// place afterwards, never replaced wholesale.
type ProgressRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"user_id" json:"userId"`
	Weeks     []WeekProgress     `bson:"weeks" json:"weeks"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NewProgressRecord builds the zero-filled 4x5 grid for a first-time user.
func NewProgressRecord(uid string) *ProgressRecord {
	weeks := make([]WeekProgress, 0, ProgressWeeks)
	for w := 1; w <= ProgressWeeks; w++ {
		days := make([]DayProgress, 0, ProgressDaysPerWeek)
		for d := 1; d <= ProgressDaysPerWeek; d++ {
			days = append(days, DayProgress{Day: fmt.Sprintf("Day %d", d)})
		}
		weeks = append(weeks, WeekProgress{Week: fmt.Sprintf("Week %d", w), Days: days})
	}
	return &ProgressRecord{
		UserID:    uid,
		Weeks:     weeks,
		UpdatedAt: time.Now().UTC(),
	}
}

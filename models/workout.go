package models

import "time"

type Workout struct {
	Entry
	Date         time.Time `gorm:"not null" json:"date"`
	ExerciseType string    `gorm:"size:100" json:"exercise_type"`
	Sets         *int      `json:"sets"`
	Reps         *int      `json:"reps"`
	Weight       *float64  `json:"weight"` // kg lifted
}

package models

import "time"

type ExerciseLog struct {
	Entry
	Date           time.Time `gorm:"not null" json:"date"`
	CaloriesBurned *float64  `json:"calories_burned"`
	Duration       *int      `json:"duration"` // minutes
}

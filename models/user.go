package models

import "time"

// User is an account holder. Password always holds a bcrypt hash.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Height    *float64  `json:"height"`
	Weight    *float64  `json:"weight"`
	CreatedAt time.Time `json:"created_at"`

	// Deleting a user removes every log it owns.
	Workouts     []Workout     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DietLogs     []DietLog     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ExerciseLogs []ExerciseLog `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HealthGoals  []HealthGoal  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

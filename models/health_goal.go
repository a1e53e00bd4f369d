package models

import "time"

// HealthGoal holds a body-weight target the user wants to hit by TargetDate.
type HealthGoal struct {
	Entry
	TargetWeight *float64   `json:"target_weight"`
	TargetBMI    *float64   `gorm:"column:target_bmi" json:"target_bmi"`
	TargetDate   *time.Time `json:"target_date"`
}

package models

import "time"

// DietLog is one food eaten on a day. Macros are grams.
type DietLog struct {
	Entry
	Date     time.Time `gorm:"not null" json:"date"`
	FoodName string    `gorm:"size:100" json:"food_name"`
	Calories *float64  `json:"calories"`
	Protein  *float64  `json:"protein"`
	Carbs    *float64  `json:"carbs"`
	Fat      *float64  `json:"fat"`
}

package services

import (
	"github.com/WangRL15/Health-Management-Web-Application/models"
	"github.com/WangRL15/Health-Management-Web-Application/utils"
)

// The Parse* functions turn a submitted form into an unsaved row owned by
// userID. Empty numeric fields stay nil; malformed ones fail with ErrValidation.

func ParseWorkout(userID uint, f utils.Fields) (*models.Workout, error) {
	date, err := f.Date("date")
	if err != nil {
		return nil, validationErr(err)
	}
	exerciseType, err := f.RequiredString("exercise_type")
	if err != nil {
		return nil, validationErr(err)
	}
	sets, err := f.Int("sets")
	if err != nil {
		return nil, validationErr(err)
	}
	reps, err := f.Int("reps")
	if err != nil {
		return nil, validationErr(err)
	}
	weight, err := f.Float("weight")
	if err != nil {
		return nil, validationErr(err)
	}
	return &models.Workout{
		Entry:        models.Entry{UserID: userID},
		Date:         date,
		ExerciseType: exerciseType,
		Sets:         sets,
		Reps:         reps,
		Weight:       weight,
	}, nil
}

func ParseDietLog(userID uint, f utils.Fields) (*models.DietLog, error) {
	date, err := f.Date("date")
	if err != nil {
		return nil, validationErr(err)
	}
	food, err := f.RequiredString("foodName")
	if err != nil {
		return nil, validationErr(err)
	}
	rec := &models.DietLog{Entry: models.Entry{UserID: userID}, Date: date, FoodName: food}
	for key, dst := range map[string]**float64{
		"calories": &rec.Calories,
		"protein":  &rec.Protein,
		"carbs":    &rec.Carbs,
		"fat":      &rec.Fat,
	} {
		v, err := f.Float(key)
		if err != nil {
			return nil, validationErr(err)
		}
		*dst = v
	}
	return rec, nil
}

func ParseExerciseLog(userID uint, f utils.Fields) (*models.ExerciseLog, error) {
	date, err := f.Date("date")
	if err != nil {
		return nil, validationErr(err)
	}
	burned, err := f.Float("calories_burned")
	if err != nil {
		return nil, validationErr(err)
	}
	duration, err := f.Int("duration")
	if err != nil {
		return nil, validationErr(err)
	}
	return &models.ExerciseLog{
		Entry:          models.Entry{UserID: userID},
		Date:           date,
		CaloriesBurned: burned,
		Duration:       duration,
	}, nil
}

func ParseHealthGoal(userID uint, f utils.Fields) (*models.HealthGoal, error) {
	targetDate, err := f.OptionalDate("target_date")
	if err != nil {
		return nil, validationErr(err)
	}
	weight, err := f.Float("target_weight")
	if err != nil {
		return nil, validationErr(err)
	}
	bmi, err := f.Float("target_bmi")
	if err != nil {
		return nil, validationErr(err)
	}
	return &models.HealthGoal{
		Entry:        models.Entry{UserID: userID},
		TargetWeight: weight,
		TargetBMI:    bmi,
		TargetDate:   targetDate,
	}, nil
}

package services

import (
	"context"
	"sort"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/models"
	"github.com/WangRL15/Health-Management-Web-Application/repository"
	"github.com/WangRL15/Health-Management-Web-Application/utils"
)

// ChartData feeds the intake vs. burn chart. Keys are YYYY-MM-DD.
type ChartData struct {
	DietData     map[string]*float64 `json:"diet_data"`
	ExerciseData map[string]*float64 `json:"exercise_data"`
	Labels       []string            `json:"labels"`
}

type AnalyticsService struct {
	diet      repository.EntryRepository[models.DietLog]
	exercises repository.EntryRepository[models.ExerciseLog]
}

func NewAnalyticsService(
	diet repository.EntryRepository[models.DietLog],
	exercises repository.EntryRepository[models.ExerciseLog],
) *AnalyticsService {
	return &AnalyticsService{diet: diet, exercises: exercises}
}

// Chart keeps one value per day. When a day has several logs the one inserted
// last wins; values are not summed.
func (s *AnalyticsService) Chart(ctx context.Context, userID uint) (*ChartData, error) {
	dietLogs, err := s.diet.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistenceErr("list diet logs", err)
	}
	exerciseLogs, err := s.exercises.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistenceErr("list exercise logs", err)
	}

	out := &ChartData{
		DietData:     make(map[string]*float64, len(dietLogs)),
		ExerciseData: make(map[string]*float64, len(exerciseLogs)),
	}
	for _, l := range dietLogs {
		out.DietData[dayKey(l.Date)] = l.Calories
	}
	for _, l := range exerciseLogs {
		out.ExerciseData[dayKey(l.Date)] = l.CaloriesBurned
	}

	seen := make(map[string]struct{}, len(out.DietData)+len(out.ExerciseData))
	for _, m := range []map[string]*float64{out.DietData, out.ExerciseData} {
		for day := range m {
			if _, ok := seen[day]; !ok {
				seen[day] = struct{}{}
				out.Labels = append(out.Labels, day)
			}
		}
	}
	sort.Strings(out.Labels)
	if out.Labels == nil {
		out.Labels = []string{}
	}
	return out, nil
}

func dayKey(t time.Time) string {
	return t.UTC().Format(utils.DateLayout)
}

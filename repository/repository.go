// Package repository hides the relational store behind one small interface per
// entity so services can run against gorm or the in-memory fake alike.
package repository

import (
	"context"
	"errors"

	"github.com/WangRL15/Health-Management-Web-Application/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrNoOwner   = errors.New("owning user does not exist")
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	// UpdateMetrics overwrites height and weight; nil stores NULL.
	UpdateMetrics(ctx context.Context, id uint, height, weight *float64) error
}

// EntryRepository stores rows owned by a single user.
type EntryRepository[T any] interface {
	Create(ctx context.Context, rec *T) error
	// ListByUser returns the user's rows in insertion order.
	ListByUser(ctx context.Context, userID uint) ([]T, error)
}

type Store struct {
	Users     UserRepository
	Workouts  EntryRepository[models.Workout]
	DietLogs  EntryRepository[models.DietLog]
	Exercises EntryRepository[models.ExerciseLog]
	Goals     EntryRepository[models.HealthGoal]
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/WangRL15/Health-Management-Web-Application/models"

	"gorm.io/gorm"
)

// NewGormStore wires every repository to the same *gorm.DB.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:     &gormUsers{db: db},
		Workouts:  &gormEntries[models.Workout]{db: db},
		DietLogs:  &gormEntries[models.DietLog]{db: db},
		Exercises: &gormEntries[models.ExerciseLog]{db: db},
		Goals:     &gormEntries[models.HealthGoal]{db: db},
	}
}

type gormUsers struct{ db *gorm.DB }

func (r *gormUsers) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	return translate(err)
}

func (r *gormUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *gormUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *gormUsers) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *gormUsers) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *gormUsers) exists(ctx context.Context, cond string, arg any) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(cond, arg).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *gormUsers) UpdateMetrics(ctx context.Context, id uint, height, weight *float64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// RowsAffected is 0 on MySQL when nothing changed, so look the row up first.
		if err := tx.Select("id").First(&models.User{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
			"height": nullable(height),
			"weight": nullable(weight),
		}).Error
	})
	return translate(err)
}

type gormEntries[T any] struct{ db *gorm.DB }

func (r *gormEntries[T]) Create(ctx context.Context, rec *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
	return translate(err)
}

func (r *gormEntries[T]) ListByUser(ctx context.Context, userID uint) ([]T, error) {
	out := []T{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, translate(err)
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// translate maps driver and gorm errors onto the package sentinels. The string
// checks cover drivers that gorm's TranslateError does not know about.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "duplicate"),
		strings.Contains(msg, "unique constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%w: %v", ErrNoOwner, err)
	}
	return err
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/models"
	"github.com/WangRL15/Health-Management-Web-Application/repository"
	"github.com/WangRL15/Health-Management-Web-Application/utils"
)

type Profile struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Height      *float64  `json:"height"`
	Weight      *float64  `json:"weight"`
	CreatedAt   time.Time `json:"created_at"`
	BMI         *float64  `json:"bmi,omitempty"`
	BMICategory string    `json:"bmi_category,omitempty"`
}

type ProfileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceErr("load profile", err)
	}
	return newProfile(user), nil
}

// UpdateMetrics replaces height and weight; nil clears the column.
func (s *ProfileService) UpdateMetrics(ctx context.Context, userID uint, height, weight *float64) (*Profile, error) {
	err := s.users.UpdateMetrics(ctx, userID, height, weight)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceErr("update profile", err)
	}
	return s.Get(ctx, userID)
}

func newProfile(u *models.User) *Profile {
	p := &Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Height:    u.Height,
		Weight:    u.Weight,
		CreatedAt: u.CreatedAt,
	}
	if bmi, ok := utils.ProfileBMI(u.Height, u.Weight); ok {
		p.BMI = &bmi
		p.BMICategory = utils.BMICategory(bmi)
	}
	return p
}

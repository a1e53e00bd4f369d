package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/WangRL15/Health-Management-Web-Application/models"
	"github.com/WangRL15/Health-Management-Web-Application/repository"
	"github.com/WangRL15/Health-Management-Web-Application/sessions"
	"github.com/WangRL15/Health-Management-Web-Application/utils"
)

type AuthService struct {
	users    repository.UserRepository
	sessions sessions.Store
}

func NewAuthService(users repository.UserRepository, store sessions.Store) *AuthService {
	return &AuthService{users: users, sessions: store}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnHash spends the same bcrypt work a real comparison would, so a missing
// username cannot be told apart from a wrong password by timing.
func burnHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utils.HashPassword("no-such-user-placeholder")
	})
	utils.CheckPasswordHash(password, dummyHash)
}

// Register stores a new account. The caller is not logged in afterwards.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case username == "":
		return nil, validationErr(&utils.FieldError{Field: "username", Reason: "is required"})
	case password == "":
		return nil, validationErr(&utils.FieldError{Field: "password", Reason: "is required"})
	case email == "":
		return nil, validationErr(&utils.FieldError{Field: "email", Reason: "is required"})
	case len(password) > utils.MaxPasswordBytes:
		return nil, validationErr(&utils.FieldError{Field: "password", Reason: "must be at most 72 bytes"})
	}

	taken, err := s.users.UsernameTaken(ctx, username)
	if err != nil {
		return nil, persistenceErr("check username", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	taken, err = s.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, persistenceErr("check email", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email already in use", ErrConflict)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, Password: hashed, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username or email already in use", ErrConflict)
		}
		return nil, persistenceErr("create user", err)
	}
	return user, nil
}

// Login checks the credentials and opens a session for the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (sessions.Session, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		burnHash(password)
		return sessions.Session{}, ErrAuth
	}
	if err != nil {
		return sessions.Session{}, persistenceErr("find user", err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return sessions.Session{}, ErrAuth
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return sessions.Session{}, persistenceErr("create session", err)
	}
	return sess, nil
}

// Logout drops the session. Unknown or empty ids are fine.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return persistenceErr("delete session", err)
	}
	return nil
}

// Package sessions keeps the server side of a login: an opaque id mapped to
// the user it authenticates.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store must be safe for concurrent use. Get returns ErrNotFound for unknown
// and expired ids alike; Delete of an unknown id is not an error.
type Store interface {
	Create(ctx context.Context, userID uint) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

func newSession(userID uint, ttl time.Duration) Session {
	now := time.Now().UTC()
	return Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/models"
)

// NewMemoryStore returns a Store kept entirely in process memory. Entry
// repositories refuse rows whose owner is not a stored user, like the
// foreign keys do in SQL.
func NewMemoryStore() *Store {
	users := &memoryUsers{rows: make(map[uint]models.User)}
	return &Store{
		Users:     users,
		Workouts:  &memoryEntries[models.Workout, *models.Workout]{users: users},
		DietLogs:  &memoryEntries[models.DietLog, *models.DietLog]{users: users},
		Exercises: &memoryEntries[models.ExerciseLog, *models.ExerciseLog]{users: users},
		Goals:     &memoryEntries[models.HealthGoal, *models.HealthGoal]{users: users},
	}
}

type memoryUsers struct {
	mu   sync.RWMutex
	seq  uint
	rows map[uint]models.User
}

func (r *memoryUsers) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Username == u.Username || existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	r.seq++
	u.ID = r.seq
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *memoryUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memoryUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) UsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *memoryUsers) EmailTaken(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.rows {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUsers) UpdateMetrics(_ context.Context, id uint, height, weight *float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return ErrNotFound
	}
	u.Height = copyFloat(height)
	u.Weight = copyFloat(weight)
	r.rows[id] = u
	return nil
}

func (r *memoryUsers) has(id uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok
}

type entryPtr[T any] interface {
	*T
	OwnerID() uint
	Stamp(id uint, at time.Time)
}

type memoryEntries[T any, P entryPtr[T]] struct {
	users *memoryUsers

	mu   sync.RWMutex
	seq  uint
	rows []T
}

func (r *memoryEntries[T, P]) Create(_ context.Context, rec *T) error {
	if !r.users.has(P(rec).OwnerID()) {
		return ErrNoOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	P(rec).Stamp(r.seq, time.Now().UTC())
	r.rows = append(r.rows, *rec)
	return nil
}

func (r *memoryEntries[T, P]) ListByUser(_ context.Context, userID uint) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []T{}
	for i := range r.rows {
		if P(&r.rows[i]).OwnerID() == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

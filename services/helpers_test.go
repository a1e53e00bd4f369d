package services

import (
	"context"
	"testing"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/repository"
	"github.com/WangRL15/Health-Management-Web-Application/sessions"
)

func newTestAuth(t *testing.T) (*AuthService, *repository.Store, *sessions.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	sess := sessions.NewMemoryStore(time.Hour, 0)
	t.Cleanup(sess.Close)
	return NewAuthService(store.Users, sess), store, sess
}

func mustRegister(t *testing.T, auth *AuthService, username, password, email string) uint {
	t.Helper()
	u, err := auth.Register(context.Background(), username, password, email)
	if err != nil {
		t.Fatalf("Register(%s): %v", username, err)
	}
	return u.ID
}

func ptr[T any](v T) *T { return &v }

package sessions

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour, 0)
	defer s.Close()

	sess, err := s.Create(ctx, 7)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" || sess.UserID != 7 {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, err := s.Get(ctx, sess.ID)
	if err != nil || got.UserID != 7 {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("Delete of unknown id: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Millisecond, 0)
	defer s.Close()

	sess, _ := s.Create(ctx, 1)
	time.Sleep(5 * time.Millisecond)

	if _, err := s.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expired session should linger until swept")
	}
	s.DeleteExpired()
	if s.Len() != 0 {
		t.Fatalf("expected sweep to remove expired session, have %d", s.Len())
	}
}

func TestMemoryStoreSweeper(t *testing.T) {
	s := NewMemoryStore(time.Millisecond, 2*time.Millisecond)
	defer s.Close()
	_, _ = s.Create(context.Background(), 1)

	deadline := time.Now().Add(time.Second)
	for s.Len() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("sweeper never removed expired session")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/models"
)

func seedUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@x.com", Password: "hash"}
	if err := s.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func TestMemoryUsersRejectDuplicates(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "alice")

	err := s.Users.Create(context.Background(), &models.User{Username: "alice", Email: "other@x.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for username, got %v", err)
	}
	err = s.Users.Create(context.Background(), &models.User{Username: "bob", Email: "alice@x.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for email, got %v", err)
	}
}

func TestMemoryEntriesScopedByOwner(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{"egg", "toast"} {
		rec := &models.DietLog{Entry: models.Entry{UserID: alice.ID}, Date: day, FoodName: name}
		if err := s.DietLogs.Create(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
		if rec.ID == 0 || rec.CreatedAt.IsZero() {
			t.Fatalf("expected stamped identity, got %+v", rec.Entry)
		}
	}
	if err := s.DietLogs.Create(ctx, &models.DietLog{Entry: models.Entry{UserID: bob.ID}, Date: day, FoodName: "rice"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.DietLogs.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].FoodName != "egg" || got[1].FoodName != "toast" {
		t.Fatalf("unexpected alice logs: %+v", got)
	}

	got, _ = s.DietLogs.ListByUser(ctx, bob.ID)
	if len(got) != 1 || got[0].FoodName != "rice" {
		t.Fatalf("unexpected bob logs: %+v", got)
	}
}

func TestMemoryEntriesRequireOwner(t *testing.T) {
	s := NewMemoryStore()
	err := s.Workouts.Create(context.Background(), &models.Workout{Entry: models.Entry{UserID: 42}, Date: time.Now()})
	if !errors.Is(err, ErrNoOwner) {
		t.Fatalf("expected ErrNoOwner, got %v", err)
	}
}

func TestMemoryUpdateMetrics(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	u := seedUser(t, s, "alice")

	h, w := 180.0, 75.5
	if err := s.Users.UpdateMetrics(ctx, u.ID, &h, &w); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.Users.FindByID(ctx, u.ID)
	if got.Height == nil || *got.Height != 180 || got.Weight == nil || *got.Weight != 75.5 {
		t.Fatalf("metrics not stored: %+v", got)
	}
	if got.Username != "alice" || got.Email != "alice@x.com" || got.Password != "hash" {
		t.Fatalf("other fields changed: %+v", got)
	}

	if err := s.Users.UpdateMetrics(ctx, u.ID, nil, &w); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = s.Users.FindByID(ctx, u.ID)
	if got.Height != nil {
		t.Fatalf("expected height cleared, got %v", *got.Height)
	}

	if err := s.Users.UpdateMetrics(ctx, 999, &h, &w); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"
)

func TestProfileUpdateMetrics(t *testing.T) {
	ctx := context.Background()
	auth, store, _ := newTestAuth(t)
	id := mustRegister(t, auth, "alice", "pw1", "a@x.com")
	profiles := NewProfileService(store.Users)

	p, err := profiles.UpdateMetrics(ctx, id, ptr(180.0), ptr(81.0))
	if err != nil {
		t.Fatalf("UpdateMetrics: %v", err)
	}
	if *p.Height != 180 || *p.Weight != 81 {
		t.Fatalf("unexpected metrics %+v", p)
	}
	if p.BMI == nil || p.BMICategory != "Overweight" && p.BMICategory != "Normal weight" {
		t.Fatalf("expected bmi to be derived, got %+v", p)
	}
	if p.Username != "alice" || p.Email != "a@x.com" {
		t.Fatalf("other fields changed: %+v", p)
	}

	p, err = profiles.UpdateMetrics(ctx, id, nil, ptr(70.0))
	if err != nil {
		t.Fatalf("UpdateMetrics: %v", err)
	}
	if p.Height != nil || p.BMI != nil {
		t.Fatalf("expected height cleared and no bmi, got %+v", p)
	}
}

func TestProfileMissingUser(t *testing.T) {
	_, store, _ := newTestAuth(t)
	profiles := NewProfileService(store.Users)
	if _, err := profiles.Get(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

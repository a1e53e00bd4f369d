package services

import (
	"context"
	"errors"

	"github.com/WangRL15/Health-Management-Web-Application/repository"
)

// EntryService lists and creates one kind of per-user log row and tells the
// owner's open realtime connections about every new row.
type EntryService[T any] struct {
	repo repository.EntryRepository[T]
	hub  *RealtimeHub
	kind string
}

// NewEntryService takes the event kind prefix, e.g. "diet". hub may be nil.
func NewEntryService[T any](repo repository.EntryRepository[T], hub *RealtimeHub, kind string) *EntryService[T] {
	return &EntryService[T]{repo: repo, hub: hub, kind: kind}
}

func (s *EntryService[T]) List(ctx context.Context, userID uint) ([]T, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistenceErr("list "+s.kind, err)
	}
	return rows, nil
}

// Create persists rec, which must already carry userID as its owner.
func (s *EntryService[T]) Create(ctx context.Context, userID uint, rec *T) error {
	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNoOwner) {
			return ErrNotFound
		}
		return persistenceErr("create "+s.kind, err)
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, Event{Kind: s.kind + ".created", Entry: rec})
	}
	return nil
}

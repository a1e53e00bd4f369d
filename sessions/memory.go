package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a map and sweeps expired ones on an interval.
type MemoryStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]Session
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryStore starts the sweeper when cleanupInterval > 0; call Close to
// stop it.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:   ttl,
		items: make(map[string]Session),
		stop:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.sweepEvery(cleanupInterval)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, userID uint) (Session, error) {
	sess := newSession(userID, s.ttl)
	s.mu.Lock()
	s.items[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.items[id]
	s.mu.RUnlock()
	if !ok || sess.Expired(time.Now()) {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}

// Len counts stored sessions, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.DeleteExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) DeleteExpired() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.items {
		if sess.Expired(now) {
			delete(s.items, id)
		}
	}
}

package confirmation

import (
	"context"
	"sync"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/errs"
)

type memoryEntry struct {
	pc        reservation.PendingConfirmation
	expiresAt time.Time
}

// MemoryStore keeps pending confirmations in process. Entries do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clock.Clock
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		clock:   clk,
	}
}

func (s *MemoryStore) Put(_ context.Context, token string, pc reservation.PendingConfirmation, ttl time.Duration) error {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)
	s.entries[token] = memoryEntry{pc: pc, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Take(_ context.Context, token string) (*reservation.PendingConfirmation, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, errs.ErrConfirmationNotFound
	}
	delete(s.entries, token)
	if !now.Before(e.expiresAt) {
		return nil, errs.ErrConfirmationNotFound
	}
	pc := e.pc
	return &pc, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}

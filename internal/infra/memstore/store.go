// Package memstore is an in-process substrate for the lending core: the
// same ports as the Postgres store, backed by maps. It is used by the
// memory store driver and by tests.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRecord struct {
	ID        uuid.UUID
	Name      string
	Category  string
	ImageURL  string
	Quantity  int
	Available int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RequestRecord struct {
	ID             uuid.UUID
	RequesterID    uuid.UUID
	RequesterName  string
	RequesterGroup string
	ItemID         uuid.UUID
	ItemName       string
	Justification  string
	Status         string
	DueAt          *time.Time
	ApprovedBy     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type UserRecord struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Group        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

type state struct {
	items    map[uuid.UUID]ItemRecord
	requests map[uuid.UUID]RequestRecord
	users    map[uuid.UUID]UserRecord
	jobs     map[uuid.UUID]shared.NotificationJob
}

func newState() *state {
	return &state{
		items:    make(map[uuid.UUID]ItemRecord),
		requests: make(map[uuid.UUID]RequestRecord),
		users:    make(map[uuid.UUID]UserRecord),
		jobs:     make(map[uuid.UUID]shared.NotificationJob),
	}
}

// Records are stored by value, so a shallow map copy is a full snapshot.
func (s *state) clone() *state {
	return &state{
		items:    maps.Clone(s.items),
		requests: maps.Clone(s.requests),
		users:    maps.Clone(s.users),
		jobs:     maps.Clone(s.jobs),
	}
}

// Store serialises units of work behind one mutex. Each Within runs on a
// staged copy that replaces the live state only when fn succeeds, so a
// failed unit of work leaves nothing behind.
type Store struct {
	mu sync.RWMutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.st.clone()
	if err := fn(ctx, &memTx{st: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = staged
	return nil
}

// Load replaces items and requests wholesale. Intended for fixtures.
func (s *Store) Load(items []ItemRecord, requests []RequestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	next.items = make(map[uuid.UUID]ItemRecord, len(items))
	for _, it := range items {
		next.items[it.ID] = it
	}
	next.requests = make(map[uuid.UUID]RequestRecord, len(requests))
	for _, r := range requests {
		next.requests[r.ID] = r
	}
	s.st = next
}

// LoadUsers adds or replaces user accounts. Intended for fixtures.
func (s *Store) LoadUsers(users []UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	for _, u := range users {
		next.users[u.ID] = u
	}
	s.st = next
}

// Published states are never mutated, so readers may keep using the
// snapshot after the lock is released.
func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st
}

type memTx struct {
	st *state
}

func (t *memTx) Catalog() shared.Catalog      { return &catalog{st: t.st} }
func (t *memTx) Ledger() shared.Ledger        { return &ledger{st: t.st} }
func (t *memTx) Users() shared.UserRepository { return &users{st: t.st} }
func (t *memTx) Outbox() shared.Outbox        { return &outbox{st: t.st} }

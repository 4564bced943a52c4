// Package memory keeps identities and tickets in process memory.
// It backs the "memory" storage driver and the end-to-end tests.
package memory

import (
	"context"
	"sync"

	"ticketdesk/internal/domain/entity"
	"ticketdesk/internal/domain/repository"

	"github.com/google/uuid"
)

// Store is both the repository factory and the transaction manager of the memory driver.
type Store struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]entity.User
	emails  map[string]uuid.UUID
	tickets map[uuid.UUID]entity.Ticket

	// txMu serializes Execute calls.
	txMu sync.Mutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:   make(map[uuid.UUID]entity.User),
		emails:  make(map[string]uuid.UUID),
		tickets: make(map[uuid.UUID]entity.Ticket),
	}
}

// UserRepo returns the identity gateway backed by the store.
func (s *Store) UserRepo() repository.UserRepository {
	return &userRepository{store: s}
}

// TicketRepo returns the ticket repository backed by the store.
func (s *Store) TicketRepo() repository.TicketRepository {
	return &ticketRepository{store: s}
}

// Execute runs fn with repositories that log every write. When fn fails or
// panics only those writes are reverted; concurrent writes made outside the
// transaction are kept.
func (s *Store) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	undo := &undoLog{}
	defer func() {
		if r := recover(); r != nil {
			s.rollback(undo)
			panic(r)
		}
	}()

	if err := fn(&txScope{store: s, undo: undo}); err != nil {
		s.rollback(undo)

		return err
	}

	return nil
}

// txScope is the RepositoryFactory handed to an Execute callback.
type txScope struct {
	store *Store
	undo  *undoLog
}

func (t *txScope) UserRepo() repository.UserRepository {
	return &userRepository{store: t.store, undo: t.undo}
}

func (t *txScope) TicketRepo() repository.TicketRepository {
	return &ticketRepository{store: t.store, undo: t.undo}
}

// undoLog holds the inverse of each write made in a transaction. Steps are
// recorded and replayed with Store.mu held.
type undoLog struct {
	steps []func()
}

// record is a no-op outside a transaction.
func (l *undoLog) record(step func()) {
	if l == nil {
		return
	}
	l.steps = append(l.steps, step)
}

func (s *Store) rollback(undo *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(undo.steps) - 1; i >= 0; i-- {
		undo.steps[i]()
	}
	undo.steps = nil
}

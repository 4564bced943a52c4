package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"

	"github.com/google/uuid"
)

type ticketRepository struct {
	store *Store
	undo  *undoLog
}

// NewTicketRepository returns the ticket repository of store.
func NewTicketRepository(store *Store) repository.TicketRepository {
	return store.TicketRepo()
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.Status == "" {
		ticket.Status = entity.TicketStatusOpen
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now().UTC()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.recordUndo(ticket.ID)
	r.store.tickets[ticket.ID] = *ticket

	return nil
}

func (r *ticketRepository) List(ctx context.Context) ([]*entity.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tickets")
	}

	r.store.mu.RLock()
	tickets := make([]*entity.Ticket, 0, len(r.store.tickets))
	for _, t := range r.store.tickets {
		tickets = append(tickets, &t)
	}
	r.store.mu.RUnlock()

	slices.SortFunc(tickets, func(a, b *entity.Ticket) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID.String(), b.ID.String()))
	})

	return tickets, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ticket")
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tickets[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}

	return &t, nil
}

func (r *ticketRepository) Save(ctx context.Context, ticket *entity.Ticket) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update ticket")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.tickets[ticket.ID]
	if !ok {
		return repository.ErrTicketNotFound
	}
	current.Title = ticket.Title
	current.Description = ticket.Description
	current.Status = ticket.Status
	r.recordUndo(ticket.ID)
	r.store.tickets[ticket.ID] = current

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ticket")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tickets[id]; ok {
		r.recordUndo(id)
		delete(r.store.tickets, id)
	}

	return nil
}

// recordUndo logs how to put ticket id back as it is now. Callers hold store.mu.
func (r *ticketRepository) recordUndo(id uuid.UUID) {
	if r.undo == nil {
		return
	}

	previous, existed := r.store.tickets[id]
	r.undo.record(func() {
		if existed {
			r.store.tickets[id] = previous
		} else {
			delete(r.store.tickets, id)
		}
	})
}

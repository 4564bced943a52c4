package repository

import (
	"context"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when no ticket has the requested ID.
var ErrTicketNotFound = domainerrors.ErrTicketNotFound

// TicketRepository defines the persistence operations for tickets.
type TicketRepository interface {
	// Create persists a new ticket. ID, Status and CreatedAt are filled in when empty.
	Create(ctx context.Context, ticket *entity.Ticket) error

	// List returns every ticket, newest first.
	List(ctx context.Context) ([]*entity.Ticket, error)

	// FindByID retrieves a single ticket, or ErrTicketNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)

	// Save overwrites the mutable columns of an existing ticket.
	Save(ctx context.Context, ticket *entity.Ticket) error

	// Delete removes a ticket. Deleting a missing ticket is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

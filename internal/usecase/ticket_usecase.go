package usecase

import (
	"context"

	"ticketdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTicketInput defines the fields of a new ticket.
type CreateTicketInput struct {
	Title       string
	Description string
}

// UpdateTicketInput carries a partial update. Nil fields keep their current value.
type UpdateTicketInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TicketUsecase defines the ticket CRUD operations.
type TicketUsecase interface {
	CreateTicket(ctx context.Context, input CreateTicketInput) (*entity.Ticket, error)
	ListTickets(ctx context.Context) ([]*entity.Ticket, error)
	UpdateTicket(ctx context.Context, id uuid.UUID, input UpdateTicketInput) (*entity.Ticket, error)
	DeleteTicket(ctx context.Context, id uuid.UUID) error
}

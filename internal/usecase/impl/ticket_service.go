package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ticketdesk/internal/delivery/context"
	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/errors"
	"ticketdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ticketService implements the TicketUsecase interface.
type ticketService struct {
	txManager  repository.TransactionManager
	ticketRepo repository.TicketRepository
	logger     *slog.Logger
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TicketRepo repository.TicketRepository
	Logger     *slog.Logger
}

// NewTicketService is the constructor for ticketService.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		txManager:  params.TxManager,
		ticketRepo: params.TicketRepo,
		logger:     params.Logger,
	}
}

func (srv *ticketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTicket opens a new ticket.
func (srv *ticketService) CreateTicket(ctx context.Context, input usecase.CreateTicketInput) (*entity.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	ticket := &entity.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TicketStatusOpen,
	}
	if err := srv.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to create ticket")
	}

	srv.log(ctx).Debug("Ticket created", slog.Any("ticketID", ticket.ID))

	return ticket, nil
}

// ListTickets returns every ticket, newest first.
func (srv *ticketService) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	tickets, err := srv.ticketRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return tickets, nil
}

// UpdateTicket applies a partial update inside one transaction.
func (srv *ticketService) UpdateTicket(ctx context.Context, id uuid.UUID, input usecase.UpdateTicketInput) (*entity.Ticket, error) {
	patch, err := buildTicketPatch(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Ticket
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.TicketRepo()

		ticket, err := ticketRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(ticket)
		if err := ticketRepo.Save(ctx, ticket); err != nil {
			return err
		}
		updated = ticket

		return nil
	})
	if err != nil {
		if !domainerrors.IsKind(err, domainerrors.KindNotFound) {
			srv.log(ctx).Error("Failed to update ticket", slog.Any("ticketID", id), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to execute ticket update transaction")
	}

	return updated, nil
}

// DeleteTicket removes a ticket. Missing tickets are not an error.
func (srv *ticketService) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	if err := srv.ticketRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete ticket")
	}

	return nil
}

func buildTicketPatch(input usecase.UpdateTicketInput) (entity.TicketPatch, error) {
	patch := entity.TicketPatch{
		Title:       input.Title,
		Description: input.Description,
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return patch, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}

	if input.Status != nil {
		status := entity.TicketStatus(*input.Status)
		if !status.IsValid() {
			return patch, domainerrors.ErrInvalidTicketStatus
		}
		patch.Status = &status
	}

	return patch, nil
}

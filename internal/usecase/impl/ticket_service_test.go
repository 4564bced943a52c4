package impl

import (
	"context"
	"testing"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/errors"
	"ticketdesk/internal/infra/persistence/memory"
	mockRepo "ticketdesk/internal/mocks/repository"
	"ticketdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTicketService_CreateTicket(t *testing.T) {
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	svc := NewTicketService(TicketServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		TicketRepo: ticketRepo,
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()

	ticketRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(_ context.Context, ticket *entity.Ticket) {
			ticket.ID = uuid.New()
		}).
		Return(nil)

	ticket, err := svc.CreateTicket(ctx, usecase.CreateTicketInput{Title: "Printer", Description: "jammed"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ticket.ID)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)

	_, err = svc.CreateTicket(ctx, usecase.CreateTicketInput{Title: "  "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTicketService_UpdateTicket_AppliesPatchInTransaction(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewTicketService(TicketServiceParams{
		TxManager:  txManager,
		TicketRepo: mockRepo.NewMockTicketRepository(t),
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()
	id := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txTicketRepo := mockRepo.NewMockTicketRepository(t)

			mockFactory.EXPECT().TicketRepo().Return(txTicketRepo)
			txTicketRepo.EXPECT().FindByID(ctx, id).Return(&entity.Ticket{
				ID: id, Title: "old", Description: "keep", Status: entity.TicketStatusOpen,
			}, nil)
			txTicketRepo.EXPECT().Save(ctx, mock.MatchedBy(func(ticket *entity.Ticket) bool {
				return ticket.Title == "old" && ticket.Description == "keep" && ticket.Status == entity.TicketStatusInProgress
			})).Return(nil)

			return fn(mockFactory)
		})

	ticket, err := svc.UpdateTicket(ctx, id, usecase.UpdateTicketInput{Status: ptr("In Progress")})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusInProgress, ticket.Status)
	assert.Equal(t, "old", ticket.Title)
}

func TestTicketService_UpdateTicket_InvalidInputSkipsStore(t *testing.T) {
	svc := NewTicketService(TicketServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		TicketRepo: mockRepo.NewMockTicketRepository(t),
		Logger:     newDiscardLogger(),
	})

	_, err := svc.UpdateTicket(context.Background(), uuid.New(), usecase.UpdateTicketInput{Status: ptr("Done")})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTicketStatus))

	_, err = svc.UpdateTicket(context.Background(), uuid.New(), usecase.UpdateTicketInput{Title: ptr("")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTicketService_AgainstMemoryStore(t *testing.T) {
	store := memory.NewStore()
	svc := NewTicketService(TicketServiceParams{
		TxManager:  store,
		TicketRepo: store.TicketRepo(),
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()

	created, err := svc.CreateTicket(ctx, usecase.CreateTicketInput{Title: "VPN", Description: "drops hourly"})
	require.NoError(t, err)

	updated, err := svc.UpdateTicket(ctx, created.ID, usecase.UpdateTicketInput{
		Description: ptr("drops every 30 minutes"),
		Status:      ptr("Closed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "VPN", updated.Title)
	assert.Equal(t, "drops every 30 minutes", updated.Description)
	assert.Equal(t, entity.TicketStatusClosed, updated.Status)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	_, err = svc.UpdateTicket(ctx, uuid.New(), usecase.UpdateTicketInput{Title: ptr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrTicketNotFound))

	require.NoError(t, svc.DeleteTicket(ctx, created.ID))
	require.NoError(t, svc.DeleteTicket(ctx, created.ID))

	tickets, err := svc.ListTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, " A@X.com ", "hash")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.NotEqual(t, uuid.Nil, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@X.COM")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)
}

func TestUserRepository_DuplicateEmailIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.Create(ctx, "a@x.com", "h1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "A@x.com", "h2")
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h1", stored.PasswordHash)
}

func TestUserRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	repo := NewUserRepository(NewStore())

	var wg sync.WaitGroup
	results := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), "race@x.com", "h")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		if err == nil {
			ok++
		} else if domainerrors.IsKind(err, domainerrors.KindConflict) {
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 15, conflicts)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(NewStore())

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	created, err := repo.Create(ctx, "a@x.com", "hash")
	require.NoError(t, err)
	created.PasswordHash = "tampered"

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", stored.PasswordHash)
}

func TestUserRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUserRepository(NewStore()).Create(ctx, "a@x.com", "hash")
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindStore))
}

func TestTicketRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(NewStore())

	older := &entity.Ticket{Title: "older", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.Ticket{Title: "newer", Description: "d"}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	assert.Equal(t, entity.TicketStatusOpen, newer.Status)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Title)

	newer.Status = entity.TicketStatusClosed
	newer.CreatedAt = time.Time{}
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusClosed, got.Status)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, newer.ID))
	require.NoError(t, repo.Delete(ctx, newer.ID))
	_, err = repo.FindByID(ctx, newer.ID)
	assert.True(t, errors.Is(err, repository.ErrTicketNotFound))

	err = repo.Save(ctx, &entity.Ticket{ID: uuid.New()})
	assert.True(t, errors.Is(err, repository.ErrTicketNotFound))
}

func TestStore_ExecuteRollsBack(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ticket := &entity.Ticket{Title: "keep"}
	require.NoError(t, store.TicketRepo().Create(ctx, ticket))

	boom := errors.New("boom")
	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.TicketRepo().Delete(ctx, ticket.ID))
		_, err := f.UserRepo().Create(ctx, "a@x.com", "h")
		require.NoError(t, err)

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	_, err = store.TicketRepo().FindByID(ctx, ticket.ID)
	assert.NoError(t, err)
	_, err = store.UserRepo().FindByEmail(ctx, "a@x.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestStore_ExecuteCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.TicketRepo().Create(ctx, &entity.Ticket{Title: "t"})
	})
	require.NoError(t, err)

	list, err := store.TicketRepo().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_ExecuteRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	assert.Panics(t, func() {
		_ = store.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.TicketRepo().Create(ctx, &entity.Ticket{Title: "t"})
			panic("boom")
		})
	})

	list, err := store.TicketRepo().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_RollbackKeepsWritesOutsideTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	existing := &entity.Ticket{Title: "before"}
	require.NoError(t, store.TicketRepo().Create(ctx, existing))

	var outsideTicket *entity.Ticket
	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.TicketRepo().Create(ctx, &entity.Ticket{Title: "inside"}))
		require.NoError(t, f.TicketRepo().Save(ctx, &entity.Ticket{ID: existing.ID, Title: "changed", Status: entity.TicketStatusClosed}))

		// A registration and a ticket committed by other requests while the transaction is open
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, createErr := store.UserRepo().Create(ctx, "a@x.com", "h")
			assert.NoError(t, createErr)
			outsideTicket = &entity.Ticket{Title: "outside"}
			assert.NoError(t, store.TicketRepo().Create(ctx, outsideTicket))
		}()
		wg.Wait()

		_, err := f.TicketRepo().FindByID(ctx, uuid.New())

		return err
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrTicketNotFound))

	_, err = store.UserRepo().FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)

	_, err = store.TicketRepo().FindByID(ctx, outsideTicket.ID)
	assert.NoError(t, err)

	restored, err := store.TicketRepo().FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "before", restored.Title)
	assert.Equal(t, entity.TicketStatusOpen, restored.Status)

	list, err := store.TicketRepo().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStore_RollbackRestoresDeletedTicket(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ticket := &entity.Ticket{Title: "keep"}
	require.NoError(t, store.TicketRepo().Create(ctx, ticket))

	_ = store.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.TicketRepo().Delete(ctx, ticket.ID))
		require.NoError(t, f.TicketRepo().Delete(ctx, ticket.ID))

		return errors.New("boom")
	})

	got, err := store.TicketRepo().FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Title)
}

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "password_hash", "role", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "$argon2id$hash", "user", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repo.Create(context.Background(), " A@x.com", "$argon2id$hash")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "$argon2id$hash", user.PasswordHash)
	assert.WithinDuration(t, time.Now(), user.CreatedAt, time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	user, err := repo.Create(context.Background(), "a@x.com", "hash")
	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.Create(context.Background(), "a@x.com", "hash")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindStore))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.NotContains(t, appErr.Message(), "connection reset")
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "a@x.com", "hash", "admin", createdAt))

	user, err := repo.FindByEmail(context.Background(), "A@X.COM")
	require.NoError(t, err)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.True(t, createdAt.Equal(user.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "a@x.com", "hash", "user", time.Now()))

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnError(errors.New("timeout"))

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindStore))
	assert.NoError(t, mock.ExpectationsWereMet())
}

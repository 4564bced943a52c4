package memory

import (
	"context"
	"time"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	undo  *undoLog
}

// NewUserRepository returns the identity gateway of store.
func NewUserRepository(store *Store) repository.UserRepository {
	return store.UserRepo()
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	normalized := entity.NormalizeEmail(email)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.emails[normalized]; taken {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	user := entity.User{
		ID:           uuid.New(),
		Email:        normalized,
		PasswordHash: passwordHash,
		Role:         entity.DefaultRole,
		CreatedAt:    time.Now().UTC(),
	}
	r.store.users[user.ID] = user
	r.store.emails[normalized] = user.ID
	r.undo.record(func() {
		delete(r.store.users, user.ID)
		if r.store.emails[normalized] == user.ID {
			delete(r.store.emails, normalized)
		}
	})

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.emails[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := r.store.users[id]

	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

package postgres

import (
	"context"
	"time"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/errors"
	"ticketdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

func (repo *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.Status == "" {
		ticket.Status = entity.TicketStatusOpen
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(model.FromTicketDomain(ticket)).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidTicketStatus.WrapMessage("ticket row rejected by a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	return nil
}

func (repo *ticketRepository) List(ctx context.Context) ([]*entity.Ticket, error) {
	var rows []model.TicketModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tickets")
	}

	tickets := make([]*entity.Ticket, 0, len(rows))
	for i := range rows {
		tickets = append(tickets, rows[i].ToDomain())
	}

	return tickets, nil
}

func (repo *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var row model.TicketModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ticket")
	}

	return row.ToDomain(), nil
}

// Save overwrites title, description and status. The creation time is never rewritten.
func (repo *ticketRepository) Save(ctx context.Context, ticket *entity.Ticket) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]any{
			"title":       ticket.Title,
			"description": ticket.Description,
			"status":      string(ticket.Status),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidTicketStatus.WrapMessage("ticket row rejected by a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ticket")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

func (repo *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TicketModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ticket")
	}

	return nil
}

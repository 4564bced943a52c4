package model

import (
	"time"

	"ticketdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// TicketModel mirrors the 'tickets' table.
type TicketModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

// FromTicketDomain maps a domain ticket to its row.
func FromTicketDomain(t *entity.Ticket) *TicketModel {
	return &TicketModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

// ToDomain maps the row to a domain ticket.
func (m *TicketModel) ToDomain() *entity.Ticket {
	return &entity.Ticket{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TicketStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the workflow state of a Ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusClosed     TicketStatus = "Closed"
)

// IsValid checks if the status is one of the known workflow states.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// Ticket is a support request tracked by the service.
type Ticket struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TicketPatch carries the optional fields of a partial update. Nil fields are left unchanged.
type TicketPatch struct {
	Title       *string
	Description *string
	Status      *TicketStatus
}

// Apply copies the non-nil fields of the patch onto the ticket.
func (p TicketPatch) Apply(t *Ticket) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

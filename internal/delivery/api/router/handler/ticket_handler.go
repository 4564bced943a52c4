package handler

import (
	"net/http"

	"ticketdesk/internal/delivery/api/response"
	"ticketdesk/internal/domain/entity"
	"ticketdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TicketHandler serves the ticket CRUD endpoints.
type TicketHandler struct {
	ticketUC usecase.TicketUsecase
}

// TicketHandlerParams holds dependencies for TicketHandler, injected by Fx.
type TicketHandlerParams struct {
	fx.In

	TicketUC usecase.TicketUsecase
}

// NewTicketHandler is the constructor for TicketHandler.
func NewTicketHandler(params TicketHandlerParams) *TicketHandler {
	return &TicketHandler{ticketUC: params.TicketUC}
}

type createTicketRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=10000"`
}

// Status is checked by the use case, which owns the list of workflow states.
type updateTicketRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Status      *string `json:"status"`
}

// List handles GET /tickets.
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.ticketUC.ListTickets(c.Request().Context())
	if err != nil {
		return err
	}
	if tickets == nil {
		tickets = []*entity.Ticket{}
	}

	return response.Success(c, http.StatusOK, tickets)
}

// Create handles POST /tickets.
func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ticket, err := h.ticketUC.CreateTicket(c.Request().Context(), usecase.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ticket)
}

// Update handles PUT /tickets/:id. Omitted fields keep their stored value.
func (h *TicketHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateTicketRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ticket, err := h.ticketUC.UpdateTicket(c.Request().Context(), id, usecase.UpdateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ticket)
}

// Delete handles DELETE /tickets/:id. Deleting a missing ticket still succeeds.
func (h *TicketHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.ticketUC.DeleteTicket(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

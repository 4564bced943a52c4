package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticketdesk/internal/delivery/api/validator"
	deliverycontext "ticketdesk/internal/delivery/context"
	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/errors"
	mockUC "ticketdesk/internal/mocks/usecase"
	"ticketdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterForwardsCredentials(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})

	user := &entity.PublicUser{ID: uuid.New(), Email: "a@x.com", Role: entity.RoleUser, CreatedAt: time.Now().UTC()}
	authUC.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Email: "a@x.com", Password: "pw123456"}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	c, rec := newContext(http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"pw123456"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
}

func TestAuthHandler_RegisterReturnsUsecaseError(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})
	authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	c, _ := newContext(http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"pw123456"}`)
	err := h.Register(c)

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthHandler_LoginRejectsEmptyBodyBeforeUsecase(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})

	c, _ := newContext(http.MethodPost, "/auth/login", `{}`)
	err := h.Login(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthHandler_MeRequiresSubject(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})

	c, _ := newContext(http.MethodGet, "/auth/me", "")
	assert.True(t, errors.Is(h.Me(c), domainerrors.ErrUnauthorized))

	userID := uuid.New()
	authUC.EXPECT().Me(mock.Anything, userID).Return(&entity.PublicUser{ID: userID}, nil)

	c, rec := newContext(http.MethodGet, "/auth/me", "")
	deliverycontext.SetSubject(c, userID)
	require.NoError(t, h.Me(c))
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestTicketHandler_ListRendersEmptyArray(t *testing.T) {
	ticketUC := mockUC.NewMockTicketUsecase(t)
	h := NewTicketHandler(TicketHandlerParams{TicketUC: ticketUC})
	ticketUC.EXPECT().ListTickets(mock.Anything).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/tickets", "")
	require.NoError(t, h.List(c))

	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTicketHandler_UpdatePassesOnlyProvidedFields(t *testing.T) {
	ticketUC := mockUC.NewMockTicketUsecase(t)
	h := NewTicketHandler(TicketHandlerParams{TicketUC: ticketUC})
	id := uuid.New()

	ticketUC.EXPECT().
		UpdateTicket(mock.Anything, id, mock.MatchedBy(func(in usecase.UpdateTicketInput) bool {
			return in.Title == nil && in.Description == nil && in.Status != nil && *in.Status == "Closed"
		})).
		Return(&entity.Ticket{ID: id, Status: entity.TicketStatusClosed}, nil)

	c, rec := newContext(http.MethodPut, "/tickets/"+id.String(), `{"status":"Closed"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Closed"`)
}

func TestTicketHandler_DeleteRejectsMalformedID(t *testing.T) {
	ticketUC := mockUC.NewMockTicketUsecase(t)
	h := NewTicketHandler(TicketHandlerParams{TicketUC: ticketUC})

	c, _ := newContext(http.MethodDelete, "/tickets/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	assert.True(t, errors.Is(h.Delete(c), domainerrors.ErrValidationFailed))
}

func TestTicketHandler_DeleteAnswersNoContent(t *testing.T) {
	ticketUC := mockUC.NewMockTicketUsecase(t)
	h := NewTicketHandler(TicketHandlerParams{TicketUC: ticketUC})
	id := uuid.New()
	ticketUC.EXPECT().DeleteTicket(mock.Anything, id).Return(nil)

	c, rec := newContext(http.MethodDelete, "/tickets/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

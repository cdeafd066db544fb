//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"barberpro/internal/handler/api"
	resdto "barberpro/internal/handler/dto/response"
	"barberpro/internal/usecase/commands"
	"barberpro/internal/usecase/queries"
	"barberpro/tests/common/httptest"
	commandsmock "barberpro/tests/mock/commands"
	queriesmock "barberpro/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	mockUsers    *queriesmock.MockUserReadStore
	handler      *api.AppointmentHandler
	actorID      uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCommands = new(commandsmock.MockAppointmentCommands)
	s.mockQueries = new(queriesmock.MockAppointmentQueries)
	s.mockUsers = new(queriesmock.MockUserReadStore)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries, s.mockUsers)

	// Stands in for the auth middleware.
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Next()
	})
	authed.POST("/api/appointments", s.handler.Create)
	authed.POST("/api/appointments/:id/complete", s.handler.Complete)
	authed.POST("/api/appointments/:id/cancel", s.handler.Cancel)
	authed.GET("/api/queue", s.handler.Queue)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCommands.AssertExpectations(s.T())
	s.mockQueries.AssertExpectations(s.T())
	s.mockUsers.AssertExpectations(s.T())
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/api/appointments"
	barberID := uuid.New()
	scheduledAt := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)

	validBody := map[string]any{
		"customer_name": "João Pereira",
		"barber_id":     barberID.String(),
		"service_name":  "Corte degradê",
		"price_cents":   3500,
		"scheduled_at":  scheduledAt.Format(time.RFC3339),
	}

	s.Run("success: returns 201 Created with the booking ids", func() {
		appointmentID := uuid.New()
		customerID := uuid.New()
		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID, commands.CreateAppointmentRequest{
			CustomerName: "João Pereira",
			BarberID:     barberID,
			ServiceName:  "Corte degradê",
			PriceCents:   3500,
			ScheduledAt:  scheduledAt,
		}).Return(&commands.CreateAppointmentResult{
			AppointmentID: appointmentID,
			CustomerID:    customerID,
		}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.AppointmentCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(appointmentID, response.AppointmentID)
		s.Equal(customerID, response.CustomerID)
	})

	s.Run("success: walk-in status is upper-cased before the command runs", func() {
		body := map[string]any{}
		for k, v := range validBody {
			body[k] = v
		}
		body["status"] = "queue"

		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID,
			mock.MatchedBy(func(req commands.CreateAppointmentRequest) bool {
				return req.InitialStatus == "QUEUE"
			})).Return(&commands.CreateAppointmentResult{
			AppointmentID: uuid.New(),
			CustomerID:    uuid.New(),
		}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: zero price books a free service", func() {
		body := map[string]any{}
		for k, v := range validBody {
			body[k] = v
		}
		body["price_cents"] = 0

		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID,
			mock.MatchedBy(func(req commands.CreateAppointmentRequest) bool {
				return req.PriceCents == 0
			})).Return(&commands.CreateAppointmentResult{
			AppointmentID: uuid.New(),
			CustomerID:    uuid.New(),
		}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing barber_id", mutate: func(m map[string]any) { delete(m, "barber_id") }},
			{name: "missing service_name", mutate: func(m map[string]any) { delete(m, "service_name") }},
			{name: "missing price", mutate: func(m map[string]any) { delete(m, "price_cents") }},
			{name: "negative price", mutate: func(m map[string]any) { m["price_cents"] = -100 }},
			{name: "missing scheduled_at", mutate: func(m map[string]any) { delete(m, "scheduled_at") }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := map[string]any{}
				for k, v := range validBody {
					body[k] = v
				}
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict on double booking", func() {
		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID, mock.AnythingOfType("commands.CreateAppointmentRequest")).
			Return(nil, commands.ErrScheduleConflict).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked at this time")
	})

	s.Run("error: 403 Forbidden for another barber's schedule", func() {
		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID, mock.AnythingOfType("commands.CreateAppointmentRequest")).
			Return(nil, commands.ErrNotAuthorized).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 404 Not Found for an unknown barber", func() {
		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID, mock.AnythingOfType("commands.CreateAppointmentRequest")).
			Return(nil, commands.ErrBarberNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Barber not found")
	})

	s.Run("error: 404 Not Found for an unknown customer id", func() {
		s.mockCommands.On("CreateAppointment", mock.Anything, s.actorID, mock.AnythingOfType("commands.CreateAppointmentRequest")).
			Return(nil, commands.ErrCustomerNotFound).Once()

		body := map[string]any{}
		for k, v := range validBody {
			body[k] = v
		}
		body["customer_id"] = uuid.New().String()
		delete(body, "customer_name")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestComplete() {
	appointmentID := uuid.New()
	url := fmt.Sprintf("/api/appointments/%s/complete", appointmentID)

	s.Run("success: returns 200 OK with settlement breakdown", func() {
		barberID := uuid.New()
		s.mockCommands.On("CompleteAppointment", mock.Anything, s.actorID, appointmentID).
			Return(&commands.SettlementResult{
				RecordID:    uuid.New(),
				BarberID:    barberID,
				AmountCents: 3500,
				HouseCents:  1750,
				BarberCents: 1750,
				SettledAt:   time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC),
				Description: "Corte degradê - João Pereira",
			}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.SettlementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(barberID, response.BarberID)
		s.Equal(int64(3500), response.AmountCents)
		s.Equal(response.AmountCents, response.HouseCents+response.BarberCents)
	})

	s.Run("error: 409 Conflict for an already closed appointment", func() {
		s.mockCommands.On("CompleteAppointment", mock.Anything, s.actorID, appointmentID).
			Return(nil, commands.ErrInvalidStatusTransition).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already completed or cancelled")
	})

	s.Run("error: 404 Not Found for an unknown appointment", func() {
		s.mockCommands.On("CompleteAppointment", mock.Anything, s.actorID, appointmentID).
			Return(nil, commands.ErrAppointmentNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/appointments/not-a-uuid/complete", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment id")
	})
}

func (s *AppointmentHandlerTestSuite) TestCancel() {
	appointmentID := uuid.New()
	url := fmt.Sprintf("/api/appointments/%s/cancel", appointmentID)

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.On("CancelAppointment", mock.Anything, s.actorID, appointmentID).
			Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for an unaffiliated user", func() {
		s.mockCommands.On("CancelAppointment", mock.Anything, s.actorID, appointmentID).
			Return(commands.ErrNotAffiliated).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not affiliated")
	})
}

func (s *AppointmentHandlerTestSuite) TestQueue() {
	url := "/api/queue"
	shopID := uuid.New()

	s.Run("success: returns the waiting walk-ins", func() {
		s.mockUsers.On("FindByID", mock.Anything, s.actorID).
			Return(&queries.UserView{ID: s.actorID, Role: "STAFF", ShopID: &shopID}, nil).Once()
		waiting := []*queries.AppointmentView{
			{ID: uuid.New(), CustomerName: "João Pereira", Status: "QUEUE"},
			{ID: uuid.New(), CustomerName: "Pedro Costa", Status: "QUEUE"},
		}
		s.mockQueries.On("Queue", mock.Anything, shopID).Return(waiting, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("João Pereira", response[0].CustomerName)
	})

	s.Run("error: 403 Forbidden when the caller has no shop", func() {
		s.mockUsers.On("FindByID", mock.Anything, s.actorID).
			Return(&queries.UserView{ID: s.actorID, Role: "STAFF"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not affiliated")
	})
}

package api

import (
	"errors"
	"net/http"

	reqdto "barberpro/internal/handler/dto/request"
	resdto "barberpro/internal/handler/dto/response"
	"barberpro/internal/handler/middleware"
	"barberpro/internal/usecase/commands"
	"barberpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentUseCase commands.AppointmentCommands
	appointmentQueries queries.AppointmentQueries
	users              queries.UserReadStore
}

func NewAppointmentHandler(
	appointmentUseCase commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
	users queries.UserReadStore,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUseCase: appointmentUseCase,
		appointmentQueries: appointmentQueries,
		users:              users,
	}
}

// @Summary Book an appointment
// @Description Books a scheduled visit or enqueues a walk-in; rejects double-booking of the same customer and time
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.appointmentUseCase.CreateAppointment(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateAppointmentResult(result))
}

// @Summary Complete an appointment
// @Description Marks the cut as done, settles commission and updates the customer's history
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment id",
		})
		return
	}

	result, err := h.appointmentUseCase.CompleteAppointment(c.Request.Context(), userID, appointmentID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}

// @Summary Cancel an appointment
// @Description Cancels an open appointment; the slot becomes bookable again
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment id",
		})
		return
	}

	if err := h.appointmentUseCase.CancelAppointment(c.Request.Context(), userID, appointmentID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Walk-in queue
// @Description Lists walk-ins still waiting, oldest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AppointmentView
// @Failure 403 {object} map[string]string
// @Router /queue [get]
func (h *AppointmentHandler) Queue(c *gin.Context) {
	shopID, ok := shopScope(c, h.users)
	if !ok {
		return
	}

	queue, err := h.appointmentQueries.Queue(c.Request.Context(), shopID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, queue)
}

func (h *AppointmentHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment data",
		})
	case errors.Is(err, commands.ErrNotAffiliated):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not affiliated with a barbershop",
		})
	case errors.Is(err, commands.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage this barber's appointments",
		})
	case errors.Is(err, commands.ErrBarberNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Barber not found",
		})
	case errors.Is(err, commands.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errors.Is(err, commands.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errors.Is(err, commands.ErrScheduleConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Customer already booked at this time",
		})
	case errors.Is(err, commands.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment already completed or cancelled",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package api

import (
	"errors"
	"net/http"

	reqdto "barberpro/internal/handler/dto/request"
	"barberpro/internal/handler/middleware"
	"barberpro/internal/usecase/commands"
	"barberpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FinanceHandler struct {
	commissionUseCase  commands.CommissionCommands
	financeQueries     queries.FinanceQueries
	performanceQueries queries.PerformanceQueries
	users              queries.UserReadStore
}

func NewFinanceHandler(
	commissionUseCase commands.CommissionCommands,
	financeQueries queries.FinanceQueries,
	performanceQueries queries.PerformanceQueries,
	users queries.UserReadStore,
) *FinanceHandler {
	return &FinanceHandler{
		commissionUseCase:  commissionUseCase,
		financeQueries:     financeQueries,
		performanceQueries: performanceQueries,
		users:              users,
	}
}

// @Summary Finance summary
// @Description Aggregates settled revenue, the house cut and each barber's share
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.FinanceSummaryView
// @Failure 403 {object} map[string]string
// @Router /finance/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	shopID, ok := shopScope(c, h.users)
	if !ok {
		return
	}

	summary, err := h.financeQueries.Summary(c.Request.Context(), shopID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Barber performance leaderboard
// @Description Ranks the shop's barbers by settled revenue and completed cuts
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PerformanceRowView
// @Failure 403 {object} map[string]string
// @Router /performance [get]
func (h *FinanceHandler) Performance(c *gin.Context) {
	shopID, ok := shopScope(c, h.users)
	if !ok {
		return
	}

	board, err := h.performanceQueries.Leaderboard(c.Request.Context(), shopID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, board)
}

// @Summary Set a barber's commission rate
// @Description Owner-only; the new rate applies to future settlements, never past records
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barber ID"
// @Param request body reqdto.SetCommissionRequest true "Commission request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /barbers/{id}/commission [patch]
func (h *FinanceHandler) SetCommission(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid barber id",
		})
		return
	}

	var req reqdto.SetCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commissionUseCase.SetCommission(c.Request.Context(), userID, barberID, req.Commission); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Commission must be between 0 and 1",
			})
		case errors.Is(err, commands.ErrBarberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Barber not found",
			})
		case errors.Is(err, commands.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the owner can change commission rates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

package api

import (
	"errors"
	"net/http"

	reqdto "barberpro/internal/handler/dto/request"
	"barberpro/internal/handler/middleware"
	"barberpro/internal/usecase/commands"
	"barberpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerUseCase commands.CustomerCommands
	customerQueries queries.CustomerQueries
	users           queries.UserReadStore
}

func NewCustomerHandler(
	customerUseCase commands.CustomerCommands,
	customerQueries queries.CustomerQueries,
	users queries.UserReadStore,
) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		customerQueries: customerQueries,
		users:           users,
	}
}

// @Summary Register a customer
// @Description Adds a customer under the caller's responsibility
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Customer request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.customerUseCase.CreateCustomer(c.Request.Context(), userID, commands.CreateCustomerRequest{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotAffiliated):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not affiliated with a barbershop",
			})
		case errors.Is(err, commands.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid customer data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer_id": id.String()})
}

// @Summary List customers
// @Description Lists the shop's customers; filter=inactive narrows to customers overdue for a visit
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param filter query string false "inactive"
// @Success 200 {array} queries.CustomerView
// @Failure 403 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	shopID, ok := shopScope(c, h.users)
	if !ok {
		return
	}

	onlyInactive := c.Query("filter") == "inactive"

	customers, err := h.customerQueries.ListByShop(c.Request.Context(), shopID, onlyInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, customers)
}

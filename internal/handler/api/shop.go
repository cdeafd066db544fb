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
)

type ShopHandler struct {
	shopUseCase commands.ShopCommands
	syncQueries queries.SyncQueries
}

func NewShopHandler(shopUseCase commands.ShopCommands, syncQueries queries.SyncQueries) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
		syncQueries: syncQueries,
	}
}

// @Summary Create a barbershop
// @Description Founds a new shop; the caller becomes its owner
// @Tags barbershop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShopRequest true "Shop request"
// @Success 201 {object} resdto.ShopCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /barbershop [post]
func (h *ShopHandler) CreateShop(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.shopUseCase.CreateShop(c.Request.Context(), userID, commands.CreateShopRequest{
		Name:     req.Name,
		Address:  req.Address,
		Whatsapp: req.Whatsapp,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrAlreadyAffiliated):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already affiliated with a barbershop",
			})
		case errors.Is(err, commands.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid shop data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateShopResult(result))
}

// @Summary Join a barbershop
// @Description Affiliates the caller to a shop via its invite code
// @Tags barbershop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.JoinShopRequest true "Join request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /barbershop/join [post]
func (h *ShopHandler) JoinShop(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.JoinShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.shopUseCase.JoinShop(c.Request.Context(), userID, req.NormalizedCode())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invalid invite code",
			})
		case errors.Is(err, commands.ErrAlreadyAffiliated):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already affiliated with a barbershop",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
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

// @Summary Workspace sync
// @Description Returns the caller's profile plus everything scoped to their shop
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.WorkspaceView
// @Failure 401 {object} map[string]string
// @Router /sync [get]
func (h *ShopHandler) Sync(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	workspace, err := h.syncQueries.Workspace(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unknown user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, workspace)
}

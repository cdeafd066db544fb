package api

import (
	"net/http"

	"barberpro/internal/handler/middleware"
	"barberpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// shopScope resolves the caller's shop from the authenticated user id. Writes
// the error response itself; callers just bail out on !ok.
func shopScope(c *gin.Context, users queries.UserReadStore) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, false
	}

	view, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unknown user",
		})
		return uuid.Nil, false
	}
	if view.ShopID == nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not affiliated with a barbershop",
		})
		return uuid.Nil, false
	}
	return *view.ShopID, true
}

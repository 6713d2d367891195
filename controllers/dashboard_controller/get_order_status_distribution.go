package dashboard_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/eneskalkann/seller-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// GetOrderStatusDistribution godoc
// @Summary Get order status distribution
// @Description Returns the count of the admin's orders per status for the pie chart
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.StatusCount}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/orders-status-distribution [get]
func GetOrderStatusDistribution(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	log.Printf("[admin.dashboard-status-distribution] start admin=%s", adminID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	distribution, err := services.GetDashboardService().GetOrderStatusDistribution(ctx, adminID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}
		log.Printf("[admin.dashboard-status-distribution] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch status distribution"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status distribution retrieved successfully", distribution))
}

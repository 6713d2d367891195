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

// GetDailyEarnings godoc
// @Summary Get daily earnings for the last 28 days
// @Description Returns a zero-filled 28-day series of delivered-order revenue for chart visualization
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.DailyEarning}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/daily-earnings [get]
func GetDailyEarnings(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	log.Printf("[admin.dashboard-daily-earnings] start admin=%s", adminID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	series, err := services.GetDashboardService().GetDailyEarningsLastMonth(ctx, adminID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}
		log.Printf("[admin.dashboard-daily-earnings] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch daily earnings"))
		return
	}

	log.Printf("[admin.dashboard-daily-earnings] respond 200 days=%d", len(series))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily earnings retrieved successfully", series))
}

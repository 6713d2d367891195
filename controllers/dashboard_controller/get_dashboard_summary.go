package dashboard_controller

import (
	"errors"
	"log"
	"net/http"

	dashboard_cache "github.com/eneskalkann/seller-dashboard-backend/cache"
	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/eneskalkann/seller-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// GetDashboardSummary godoc
// @Summary Get dashboard summary
// @Description Returns product count, completed sales, order status counts, top products and realized earnings for the authenticated admin
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardSummary}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/summary [get]
func GetDashboardSummary(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	log.Printf("[admin.dashboard-summary] start admin=%s", adminID)

	if summary, ok := dashboard_cache.GetSummary(adminID); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard summary retrieved successfully", summary))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	summary, err := services.GetDashboardService().GetDashboardSummary(ctx, adminID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}
		log.Printf("[admin.dashboard-summary] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard summary"))
		return
	}

	dashboard_cache.SetSummary(adminID, summary)

	log.Printf("[admin.dashboard-summary] respond 200 products=%d earnings=%.2f",
		summary.TotalProductCount, summary.TotalProductEarnings)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard summary retrieved successfully", summary))
}

package routes

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/controllers/dashboard_controller"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up the analytics surface behind admin auth.
func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/admin/dashboard")
	dashboard.Use(middleware.RateLimiter(100, time.Minute))
	dashboard.Use(middleware.AdminAuthMiddleware())

	dashboard.GET("/summary", dashboard_controller.GetDashboardSummary)
	dashboard.GET("/daily-earnings", dashboard_controller.GetDailyEarnings)
	dashboard.GET("/orders-status-distribution", dashboard_controller.GetOrderStatusDistribution)
}

package routes

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/controllers/admin_controller"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up authentication and account routes.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RateLimiter(100, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/register", admin_controller.RegisterAdmin)
	admin.POST("/login", admin_controller.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_controller.AdminLogout)
		protected.GET("/me", admin_controller.GetAdminMe)
	}
}

package routes

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/controllers/category_controller"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes sets up the admin category routes.
func SetupCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/admin/categories")
	categories.Use(middleware.RateLimiter(100, time.Minute))
	categories.Use(middleware.AdminAuthMiddleware())

	categories.GET("", category_controller.GetCategories)
}

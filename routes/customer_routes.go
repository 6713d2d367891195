package routes

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/controllers/customer_controller"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes sets up the admin customer routes.
func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/admin/customers")
	customers.Use(middleware.RateLimiter(100, time.Minute))
	customers.Use(middleware.AdminAuthMiddleware())

	customers.GET("", customer_controller.GetCustomers)
	customers.GET("/:id", customer_controller.GetCustomerByID)
}

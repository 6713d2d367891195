package routes

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/controllers/order_controller"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes sets up the admin order routes.
func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/admin/orders")
	orders.Use(middleware.RateLimiter(100, time.Minute))
	orders.Use(middleware.AdminAuthMiddleware())

	orders.GET("", order_controller.GetOrders)
	orders.GET("/:id", order_controller.GetOrderByID)
	orders.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	orders.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	orders.PATCH("/:id/read", order_controller.MarkOrderRead)
}

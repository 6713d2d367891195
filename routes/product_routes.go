package routes

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/controllers/product_controller"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes sets up the admin product catalog routes.
func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/admin/products")
	products.Use(middleware.RateLimiter(100, time.Minute))
	products.Use(middleware.AdminAuthMiddleware())

	products.GET("", product_controller.GetProducts)
	products.POST("", product_controller.CreateProduct)
	products.POST("/images", product_controller.UploadProductImages)
	products.GET("/:slug", product_controller.GetProductBySlug)
	products.PATCH("/:slug", product_controller.UpdateProduct)
	products.DELETE("/:slug", product_controller.DeleteProduct)
}

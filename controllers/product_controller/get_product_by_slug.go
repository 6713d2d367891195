package product_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductBySlug godoc
// @Summary Get a product by slug
// @Description Retrieve one of the authenticated admin's products with images, categories and tags
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.Gorm.WithContext(ctx).
		Where("slug = ? AND admin_id = ?", slug, adminID).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Categories").
		Preload("Tags").
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product-detail] ERROR slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}

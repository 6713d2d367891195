package product_controller

import (
	"log"
	"net/http"

	dashboard_cache "github.com/eneskalkann/seller-dashboard-backend/cache"
	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete one of the authenticated admin's products by slug, including its hosted images
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{slug} [delete]
func DeleteProduct(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	slug := c.Param("slug")
	log.Printf("[admin.product-delete] start slug=%s admin=%s", slug, adminID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("slug = ? AND admin_id = ?", slug, adminID).
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product-delete] ERROR fetch slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Select("Images", "Categories", "Tags").
		Delete(&product).Error; err != nil {
		log.Printf("[admin.product-delete] ERROR delete slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Drop the product's hosted image folder. Best effort, the DB row is
	// already gone.
	if cloudinaryService != nil {
		if err := cloudinaryService.DeleteFolder(ctx, "products/"+product.Slug); err != nil {
			log.Printf("[admin.product-delete] failed to delete image folder for %s: %v", product.Slug, err)
		}
	}

	dashboard_cache.Invalidate(adminID)

	log.Printf("[admin.product-delete] success slug=%s", slug)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}

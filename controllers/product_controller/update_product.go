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

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update one of the authenticated admin's products by slug
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param updateRequest body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{slug} [patch]
func UpdateProduct(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	slug := c.Param("slug")
	log.Printf("[admin.product-update] start slug=%s admin=%s", slug, adminID)

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

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
		log.Printf("[admin.product-update] ERROR fetch slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.FixedPrice != nil {
		updates["fixed_price"] = *req.FixedPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.IsOnSale != nil {
		updates["is_on_sale"] = *req.IsOnSale
	}
	if req.IsOnShopPage != nil {
		updates["is_on_shop_page"] = *req.IsOnShopPage
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.product-update] ERROR update slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	dashboard_cache.Invalidate(adminID)

	log.Printf("[admin.product-update] success slug=%s", slug)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

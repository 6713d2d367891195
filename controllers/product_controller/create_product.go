package product_controller

import (
	"log"
	"net/http"
	"strings"

	dashboard_cache "github.com/eneskalkann/seller-dashboard-backend/cache"
	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product for the authenticated admin. The slug is derived from the title; tags are connect-or-created by name
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productRequest body models.CreateProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid request or duplicate slug"
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	log.Printf("[admin.product-create] start admin=%s", adminID)

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	slug := Slugify(req.Title)
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Title is required to create a product"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product := models.Product{
		AdminID:      adminID,
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		Price:        req.Price,
		FixedPrice:   req.FixedPrice,
		Stock:        req.Stock,
		IsOnSale:     req.IsOnSale,
		IsOnShopPage: req.IsOnShopPage,
	}

	// Ordered image list: position follows the submitted URL order
	for i, url := range req.ImageURLs {
		product.Images = append(product.Images, models.ProductImage{URL: url, Position: i})
	}

	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Connect-or-create tags by name, '#' prefix stripped
		for _, raw := range req.Tags {
			name := strings.TrimPrefix(strings.TrimSpace(raw), "#")
			if name == "" {
				continue
			}
			var tag models.Tag
			if err := tx.Where("name = ?", name).
				Attrs(models.Tag{Name: name}).
				FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			product.Tags = append(product.Tags, tag)
		}

		// Connect existing categories
		if len(req.CategoryIDs) > 0 {
			var categories []models.Category
			if err := tx.Where("id IN ?", req.CategoryIDs).
				Find(&categories).Error; err != nil {
				return err
			}
			product.Categories = categories
		}

		return tx.Create(&product).Error
	})
	if err != nil {
		log.Printf("[admin.product-create] ERROR slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	dashboard_cache.Invalidate(adminID)

	log.Printf("[admin.product-create] success slug=%s id=%s", product.Slug, product.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

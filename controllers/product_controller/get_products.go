package product_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve the authenticated admin's products with pagination, newest first
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)

	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Count the admin's products
	query := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("admin_id = ?", adminID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.products] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	// Step 3: Fetch products with images, categories and tags
	products := make([]models.Product, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Categories").
		Preload("Tags").
		Find(&products).Error; err != nil {
		log.Printf("[admin.products] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 4: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}

package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// adminScopedOrders narrows an orders query to orders that contain at least
// one of the admin's products. Orders are shared rows written by the
// storefront, so every admin read goes through this scope.
func adminScopedOrders(db *gorm.DB, adminID uuid.UUID) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM order_items oi INNER JOIN products p ON p.id = oi.product_id WHERE oi.order_id = orders.id AND p.admin_id = ?)",
		adminID,
	)
}

// GetOrders godoc
// @Summary List orders
// @Description List orders containing the authenticated admin's products, newest first
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param status query string false "Filter by order status"
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	status := c.Query("status")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := adminScopedOrders(config.Gorm.WithContext(ctx).Model(&models.Order{}), adminID)
	if status != "" {
		query = query.Where("orders.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.order-list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	var orders []models.Order
	if err := query.
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Order("orders.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		log.Printf("[admin.order-list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}

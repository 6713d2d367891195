package order_controller

import (
	"log"
	"net/http"

	dashboard_cache "github.com/eneskalkann/seller-dashboard-backend/cache"
	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set the status of an order containing the authenticated admin's products. Status changes move revenue in and out of the dashboard figures
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param statusRequest body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderStatusResponse}
// @Failure 400 {object} models.ApiResponse "Invalid order ID or status"
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	orderID := c.Param("id")
	log.Printf("[admin.order-status] start id=%s admin=%s", orderID, adminID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := adminScopedOrders(config.Gorm.WithContext(ctx), adminID).
		Where("orders.id = ?", orderID).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order-status] ERROR fetch id=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&order).
		Update("status", req.Status).Error; err != nil {
		log.Printf("[admin.order-status] ERROR update id=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}

	// An order can carry several admins' products, so every cached summary
	// is suspect after a status change.
	dashboard_cache.InvalidateAll()

	log.Printf("[admin.order-status] success id=%s status=%s", orderID, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", models.UpdateOrderStatusResponse{
		ID:     order.ID,
		Status: req.Status,
	}))
}

package order_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarkOrderRead godoc
// @Summary Mark an order as read
// @Description Clear the new-order flag shown in the dashboard notifications
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id}/read [patch]
func MarkOrderRead(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	orderID := c.Param("id")

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
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
		log.Printf("[admin.order-read] ERROR fetch id=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if order.IsNew {
		if err := config.Gorm.WithContext(ctx).
			Model(&order).
			Update("is_new", false).Error; err != nil {
			log.Printf("[admin.order-read] ERROR update id=%s err=%v", orderID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to mark order as read"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order marked as read", nil))
}

package customer_controller

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

// GetCustomerByID godoc
// @Summary Get a customer
// @Description Retrieve one customer and their orders that contain the authenticated admin's products
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse{data=models.CustomerDetailResponse}
// @Failure 400 {object} models.ApiResponse "Invalid customer ID"
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Customer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers/{id} [get]
func GetCustomerByID(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	customerID := c.Param("id")

	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", customerID).
		First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		log.Printf("[admin.customer-detail] ERROR fetch id=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Only the customer's orders that touch this admin's catalog.
	var orders []models.Order
	err := config.Gorm.WithContext(ctx).
		Where("customer_id = ?", customer.ID).
		Where(
			"EXISTS (SELECT 1 FROM order_items oi INNER JOIN products p ON p.id = oi.product_id WHERE oi.order_id = orders.id AND p.admin_id = ?)",
			adminID,
		).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		log.Printf("[admin.customer-detail] ERROR orders id=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer orders"))
		return
	}

	// A customer with no orders through this admin's products is invisible
	// to this admin.
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	refs := make([]models.CustomerOrderRef, 0, len(orders))
	for _, o := range orders {
		refs = append(refs, models.CustomerOrderRef{ID: o.ID, CreatedAt: o.CreatedAt})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer fetched successfully", models.CustomerDetailResponse{
		Customer: models.CustomerListRow{
			ID:     customer.ID,
			Name:   customer.Name,
			Email:  customer.Email,
			Orders: refs,
		},
		Orders: orders,
	}))
}

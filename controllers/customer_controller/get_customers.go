package customer_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// customerOrderPair is one (customer, order) join row. Rows arrive ordered
// by customer then order date and are folded into CustomerListRow values.
type customerOrderPair struct {
	CustomerID     uuid.UUID `gorm:"column:customer_id"`
	Name           *string   `gorm:"column:name"`
	Email          string    `gorm:"column:email"`
	OrderID        uuid.UUID `gorm:"column:order_id"`
	OrderCreatedAt time.Time `gorm:"column:order_created_at"`
}

// GetCustomers godoc
// @Summary List customers
// @Description List customers that have at least one order containing the authenticated admin's products, with their order references
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerListRow}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var pairs []customerOrderPair
	err := config.Gorm.WithContext(ctx).Raw(`
		SELECT DISTINCT cu.id AS customer_id, cu.name, cu.email,
		       o.id AS order_id, o.created_at AS order_created_at
		FROM customers cu
		INNER JOIN orders o ON o.customer_id = cu.id
		INNER JOIN order_items oi ON oi.order_id = o.id
		INNER JOIN products p ON p.id = oi.product_id
		WHERE p.admin_id = ?
		ORDER BY cu.email ASC, o.created_at DESC
	`, adminID).Scan(&pairs).Error
	if err != nil {
		log.Printf("[admin.customer-list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	customers := foldCustomerRows(pairs)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers fetched successfully", customers))
}

// foldCustomerRows groups ordered join rows into one list row per customer.
// Input order is preserved for both customers and their order refs.
func foldCustomerRows(pairs []customerOrderPair) []models.CustomerListRow {
	customers := make([]models.CustomerListRow, 0)
	index := make(map[uuid.UUID]int)

	for _, p := range pairs {
		i, ok := index[p.CustomerID]
		if !ok {
			customers = append(customers, models.CustomerListRow{
				ID:     p.CustomerID,
				Name:   p.Name,
				Email:  p.Email,
				Orders: make([]models.CustomerOrderRef, 0),
			})
			i = len(customers) - 1
			index[p.CustomerID] = i
		}
		customers[i].Orders = append(customers[i].Orders, models.CustomerOrderRef{
			ID:        p.OrderID,
			CreatedAt: p.OrderCreatedAt,
		})
	}

	return customers
}

package order_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"gorm.io/gorm"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for an order containing the authenticated admin's products
// @Tags Admin - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	orderID := c.Param("id")
	log.Printf("[admin.order-invoice] request for order: %s", orderID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := adminScopedOrders(config.Gorm.WithContext(ctx), adminID).
		Where("orders.id = ?", orderID).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[admin.order-invoice] order not found: %s", orderID)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order-invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	customerName := ""
	customerEmail := ""
	if order.Customer != nil {
		customerEmail = order.Customer.Email
		if order.Customer.Name != nil {
			customerName = *order.Customer.Name
		}
	}

	pdfBuffer := generateOrderInvoicePDF(&order, customerName, customerEmail)

	filename := fmt.Sprintf("invoice-%s.pdf", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.order-invoice] invoice PDF downloaded for order %s", orderID)
}

// generateOrderInvoicePDF renders the order as an A4 invoice in memory.
func generateOrderInvoicePDF(order *models.Order, customerName, customerEmail string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Invoice Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {})

	// Billing Section
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order #%s", order.ID), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerEmail, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items Table Header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Items
	for _, item := range order.Items {
		title := "Unknown product"
		if item.Product != nil {
			title = item.Product.Title
		}
		itemTotal := item.Price * float64(item.Quantity)
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(title, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", itemTotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Total
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.TotalPrice), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(12, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for your business!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.order-invoice] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}

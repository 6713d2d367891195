package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order status values. StatusDelivered is the one that realizes revenue:
// earnings sums only ever include items of delivered orders.
const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusPreparing  = "preparing"
	OrderStatusShipping   = "shipping"
	OrderStatusDelivered  = "delivered"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a storefront order. Orders are written by the storefront
// and only read (plus status / is_new updates) by this service.
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID      `json:"customer_id" gorm:"type:uuid;not null;index"`
	Customer        *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Status          string         `json:"status" gorm:"not null;index"`
	PaymentStatus   string         `json:"payment_status" gorm:"not null;default:'unpaid'"`
	TotalPrice      float64        `json:"total_price" gorm:"type:numeric(12,2);not null"`
	IsNew           bool           `json:"is_new" gorm:"not null;default:true"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem ties one product into one order. Price is the unit price at
// purchase time, a historical snapshot that is never re-read from the product.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Price     float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// ════════════════════════════════════════════════════════════
// Request / Response Models
// ════════════════════════════════════════════════════════════

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid processing preparing shipping delivered completed cancelled"`
}

type UpdateOrderStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a storefront buyer. Rows are created by the storefront; the
// dashboard only reads them, always scoped through the admin's products.
type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      *string   `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerOrderRef is a minimal order reference shown on the customer table.
type CustomerOrderRef struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListRow is one row of the admin customer table: the customer plus
// the ids/dates of their orders that contain the admin's products.
type CustomerListRow struct {
	ID     uuid.UUID          `json:"id"`
	Name   *string            `json:"name"`
	Email  string             `json:"email"`
	Orders []CustomerOrderRef `json:"orders"`
}

// CustomerDetailResponse is the customer page payload.
type CustomerDetailResponse struct {
	Customer CustomerListRow `json:"customer"`
	Orders   []Order         `json:"orders"`
}

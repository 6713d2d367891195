package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Database Models
// ═══════════════════════════════════════════════════════════

// Product belongs to exactly one admin (seller). The slug is the public
// identifier used by the dashboard routes.
type Product struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_products_admin"`
	Title        string         `json:"title" gorm:"not null;index"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Price        float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	FixedPrice   *float64       `json:"fixed_price,omitempty" gorm:"type:numeric(12,2)"` // sale price when IsOnSale
	Stock        int            `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	IsOnSale     bool           `json:"is_on_sale" gorm:"not null;default:false"`
	IsOnShopPage bool           `json:"is_on_shop_page" gorm:"not null;default:true"`
	Images       []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Categories   []Category     `json:"categories" gorm:"many2many:product_categories"`
	Tags         []Tag          `json:"tags" gorm:"many2many:product_tags"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductImage is one entry in a product's ordered image list. URLs point at
// the hosted image service (Cloudinary).
type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (pi *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (ProductImage) TableName() string {
	return "product_images"
}

// Category is a flat product grouping shared across sellers.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// Tag is a free-form label, connect-or-created on product save.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Tag) TableName() string {
	return "tags"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CreateProductRequest struct {
	Title        string      `json:"title" binding:"required,min=1" example:"Linen Shirt"`
	Description  string      `json:"description"`
	Price        float64     `json:"price" binding:"required,min=0" example:"49.90"`
	FixedPrice   *float64    `json:"fixed_price" binding:"omitempty,min=0"`
	Stock        int         `json:"stock" binding:"min=0"`
	IsOnSale     bool        `json:"is_on_sale"`
	IsOnShopPage bool        `json:"is_on_shop_page"`
	ImageURLs    []string    `json:"image_urls"`
	CategoryIDs  []uuid.UUID `json:"category_ids"`
	Tags         []string    `json:"tags"` // leading '#' is stripped
}

type UpdateProductRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=1"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	FixedPrice   *float64 `json:"fixed_price" binding:"omitempty,min=0"`
	Stock        *int     `json:"stock" binding:"omitempty,min=0"`
	IsOnSale     *bool    `json:"is_on_sale"`
	IsOnShopPage *bool    `json:"is_on_shop_page"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Admin represents a seller account. Every product, and transitively every
// order item and analytics figure, is owned by exactly one admin.
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`            // Never expose in JSON
	Role         string     `json:"role" gorm:"not null;index"`   // super_admin, admin
	Status       string     `json:"status" gorm:"not null;index"` // active, inactive, suspended
	LastLoginAt  *time.Time `json:"last_login_at"`
	JoinedAt     time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = "active"
	}
	if a.Role == "" {
		a.Role = "admin"
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

// AdminLoginRequest is the request to login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// AdminRegisterRequest is the request to create a seller account
type AdminRegisterRequest struct {
	Name            string `json:"name" binding:"required,min=1"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// ════════════════════════════════════════════════════════════
// Response Models
// ════════════════════════════════════════════════════════════

// AdminResponse is the public response for admin data (no password hash)
type AdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	JoinedAt    time.Time  `json:"joined_at"`
}

// AdminLoginResponse is the response after login
type AdminLoginResponse struct {
	Admin AdminResponse `json:"admin"`
	Token string        `json:"token"`
}

// ToResponse converts an Admin model to AdminResponse
func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
		JoinedAt:    a.JoinedAt,
	}
}

package admin_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/eneskalkann/seller-dashboard-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAdmin godoc
// @Summary Register a seller account
// @Description Create a new admin (seller) account with email and password
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param registerRequest body models.AdminRegisterRequest true "Name, email and password"
// @Success 201 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request or email taken"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/register [post]
func RegisterAdmin(c *gin.Context) {
	log.Printf("[admin.register] attempt")

	var req models.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front for a friendlier message
	var existing models.Admin
	err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[admin.register] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	passwordHash, err := services.GetAdminAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[admin.register] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	admin := models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if err := config.Gorm.WithContext(ctx).Create(&admin).Error; err != nil {
		log.Printf("[admin.register] failed to create admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	log.Printf("[admin.register] success: %s (%s)", admin.Email, admin.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", admin.ToResponse()))
}

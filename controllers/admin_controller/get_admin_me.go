package admin_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAdminMe godoc
// @Summary Get current admin
// @Description Return the authenticated admin's profile
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", adminID).
		First(&admin).Error; err != nil {
		log.Printf("[admin.me] failed to fetch admin %s: %v", adminID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin profile retrieved", admin.ToResponse()))
}

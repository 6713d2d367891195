package category_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description List all product categories, name ascending
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := make([]models.Category, 0)
	if err := config.Gorm.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		log.Printf("[admin.categories] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}

package admin_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/eneskalkann/seller-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Deactivate the admin's sessions and clear the auth cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	log.Printf("[admin.logout] admin %s", adminID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetAdminSessionService().DeactivateSession(ctx, adminID); err != nil {
		log.Printf("[admin.logout] failed to deactivate sessions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Clear the cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}

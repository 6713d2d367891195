package product_controller

import (
	"log"
	"net/http"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/middleware"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// UploadProductImages godoc
// @Summary Upload product images
// @Description Upload one or more images to the hosted image service and return their URLs in upload order
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Param folder formData string false "Target folder (defaults to products)"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 400 {object} models.ApiResponse "No files provided"
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/images [post]
func UploadProductImages(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	log.Printf("[admin.product-images] start admin=%s", adminID)

	if cloudinaryService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image service not configured"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No files provided"))
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "products"
	}

	// Uploads can outlive the default query timeout for large files
	ctx, cancel := config.WithCustomTimeout(uploadTimeout)
	defer cancel()

	urls, err := cloudinaryService.UploadMultipleImages(ctx, files, folder)
	if err != nil {
		log.Printf("[admin.product-images] ERROR upload err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	log.Printf("[admin.product-images] uploaded %d images", len(urls))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", urls))
}

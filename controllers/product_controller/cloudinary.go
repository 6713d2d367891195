package product_controller

import (
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/services"
)

// uploadTimeout bounds multi-file image uploads, which can run well past
// the default query timeout.
const uploadTimeout = 60 * time.Second

var cloudinaryService *services.CloudinaryService

// InitCloudinary initializes the shared Cloudinary service used by the
// product image handlers. Called once from main.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	return nil
}

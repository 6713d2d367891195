package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService wraps the hosted image service. Product images live in
// one folder per product slug so deleting a product can drop the folder.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// UploadMultipleImages uploads multiple images and returns their URLs in
// input order, which becomes the product's image order.
func (s *CloudinaryService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	var urls []string

	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}
		defer file.Close()

		filename := fmt.Sprintf("%s_%d", fileHeader.Filename, i)
		url, err := s.UploadImage(ctx, file, filename, folder)
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// DeleteImage deletes an image using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// DeleteFolder deletes every asset under a product's folder, then the folder
// itself. Folder deletion errors are ignored since Cloudinary auto-removes
// empty folders anyway.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}

	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{
		Folder: folderPath,
	})

	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryDestroyer interface {
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryClient deletes images from a Cloudinary account.
type CloudinaryClient struct {
	upload cloudinaryDestroyer
}

// NewCloudinaryClient builds a client from a cloudinary:// URL, or from the
// separate credentials when cloudinaryURL is empty.
func NewCloudinaryClient(cloudinaryURL, cloudName, apiKey, apiSecret string) (*CloudinaryClient, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cloudinaryURL)
	} else {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryClient{upload: &cld.Upload}, nil
}

func (c *CloudinaryClient) DeleteAsset(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("public id is required")
	}
	result, err := c.upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if result != nil && result.Error.Message != "" {
		return fmt.Errorf("failed to delete image: %s", result.Error.Message)
	}
	return nil
}

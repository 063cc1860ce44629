package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// MediaUploader pushes an image to the third-party media host and returns its public URL.
type MediaUploader interface {
	Upload(ctx context.Context, file *entity.FileUpload) (string, error)
}

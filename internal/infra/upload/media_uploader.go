// Package upload sends product images to the third-party media host.
package upload

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/api"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// mediaUploader posts multipart forms with a single "file" field to the upload function.
type mediaUploader struct {
	client *api.Client
	logger *slog.Logger
}

// NewMediaUploader is the constructor for mediaUploader. client must point at the upload function.
func NewMediaUploader(client *api.Client, logger *slog.Logger) service.MediaUploader {
	return &mediaUploader{client: client, logger: logger}
}

// Upload returns the public URL of the stored image.
func (u *mediaUploader) Upload(ctx context.Context, file *entity.FileUpload) (string, error) {
	if file.IsEmpty() {
		return "", errors.WithStack(domainerrors.ErrUploadFailed.WithDetails("empty file"))
	}

	named := *file
	if named.Filename == "" {
		named.Filename = uuid.NewString()
	}

	res, err := u.client.Post(ctx, "", api.NewMultipartBody().File("file", &named))
	if err != nil {
		var apiErr *domainerrors.APIError
		if errors.As(err, &apiErr) {
			if msg := gjson.Get(apiErr.Body, "error").String(); msg != "" {
				return "", errors.WithStack(domainerrors.ErrUploadFailed.WithDetails(msg))
			}
		}

		return "", errors.Wrap(err, "failed to upload image")
	}

	body := res.JSON()
	url := body.Get("url").String()
	if !body.Get("success").Bool() || url == "" {
		msg := body.Get("error").String()
		if msg == "" {
			msg = "upload returned no url"
		}
		deliverycontext.GetLoggerOrDefault(ctx, u.logger).Warn("Image upload rejected", slog.String("error", msg))

		return "", errors.WithStack(domainerrors.ErrUploadFailed.WithDetails(msg))
	}

	return url, nil
}

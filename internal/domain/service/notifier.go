// Package service declares the collaborators the use cases talk to: the remote REST API,
// the media host, the notice surface and a few client-side helpers.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Notifier shows a non-blocking notice to the user.
type Notifier interface {
	Notify(ctx context.Context, notice entity.Notice)
}

package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

func notifySuccess(ctx context.Context, n service.Notifier, title, message string) {
	n.Notify(ctx, entity.Notice{Level: entity.NoticeSuccess, Title: title, Message: message})
}

func notifyInfo(ctx context.Context, n service.Notifier, title, message string) {
	n.Notify(ctx, entity.Notice{Level: entity.NoticeInfo, Title: title, Message: message})
}

func notifyError(ctx context.Context, n service.Notifier, title string, err error) {
	n.Notify(ctx, entity.Notice{Level: entity.NoticeError, Title: title, Message: domainerrors.UserMessage(err)})
}

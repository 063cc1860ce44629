package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// NoticeSource hands out the notices raised since the last call.
type NoticeSource interface {
	Drain() []entity.Notice
}

// NoticeHandler lets the presentation layer collect pending notices.
type NoticeHandler struct {
	notices NoticeSource
}

// NewNoticeHandler is the constructor for NoticeHandler
func NewNoticeHandler(notices NoticeSource) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// Drain handles GET /notices. Each notice is returned once.
func (h *NoticeHandler) Drain(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notices.Drain())
}

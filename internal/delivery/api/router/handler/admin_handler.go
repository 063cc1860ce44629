package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// productImageField is the multipart field carrying a product image.
const productImageField = "image"

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the back-office.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest represents the request body for moving an order
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// CreateProduct handles the multipart POST /admin/products
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	form, err := productForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles the multipart PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	form, err := productForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), c.Param("id"), form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.adminUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted")
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "User deleted")
}

// ListCustomers handles GET /admin/customers
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.adminUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// ListOrders handles GET /admin/orders?status=&limit=
func (h *AdminHandler) ListOrders(c echo.Context) error {
	filter := repository.OrderFilter{Status: entity.OrderStatus(c.QueryParam("status"))}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ConfirmPayment handles POST /admin/orders/:id/confirm-payment
func (h *AdminHandler) ConfirmPayment(c echo.Context) error {
	order, err := h.adminUC.ConfirmPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// MetricsOverview handles GET /admin/overview
func (h *AdminHandler) MetricsOverview(c echo.Context) error {
	overview, err := h.adminUC.MetricsOverview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// ListNewsletterSubscribers handles GET /admin/newsletter
func (h *AdminHandler) ListNewsletterSubscribers(c echo.Context) error {
	subscribers, err := h.adminUC.ListNewsletterSubscribers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscribers)
}

// ListContactMessages handles GET /admin/messages
func (h *AdminHandler) ListContactMessages(c echo.Context) error {
	messages, err := h.adminUC.ListContactMessages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// DeleteContactMessage handles DELETE /admin/messages/:id
func (h *AdminHandler) DeleteContactMessage(c echo.Context) error {
	if err := h.adminUC.DeleteContactMessage(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Message deleted")
}

func productForm(c echo.Context) (usecase.ProductForm, error) {
	image, err := readUpload(c, productImageField)
	if err != nil {
		return usecase.ProductForm{}, err
	}

	form := usecase.ProductForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		ImageURL:    c.FormValue("imageUrl"),
		Image:       image,
	}

	// Unparsable numbers fall through to the use case validator as negatives.
	form.Price = parseInt64(c.FormValue("price"))
	form.Stock = int(parseInt64(c.FormValue("stock")))

	return form, nil
}

func parseInt64(raw string) int64 {
	if raw == "" {
		return 0
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}

	return v
}

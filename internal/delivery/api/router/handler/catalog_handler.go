package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ReviewUC  usecase.ReviewUsecase
}

// CatalogHandler serves products and their reviews.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	reviewUC  usecase.ReviewUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		reviewUC:  params.ReviewUC,
	}
}

// ReviewRequest represents the request body for submitting a review
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListProducts handles GET /products?category=&search=
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(), service.ProductQuery{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListReviews handles GET /products/:id/reviews
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// SubmitReview handles POST /products/:id/reviews. Rating and comment are validated by the use case.
func (h *CatalogHandler) SubmitReview(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), usecase.ReviewInput{
		ProductID: c.Param("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

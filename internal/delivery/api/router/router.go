// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	CheckoutHandler   *handler.CheckoutHandler
	OrderHandler      *handler.OrderHandler
	NoticeHandler     *handler.NoticeHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	wishlistHandler   *handler.WishlistHandler
	checkoutHandler   *handler.CheckoutHandler
	orderHandler      *handler.OrderHandler
	noticeHandler     *handler.NoticeHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		wishlistHandler:   params.WishlistHandler,
		checkoutHandler:   params.CheckoutHandler,
		orderHandler:      params.OrderHandler,
		noticeHandler:     params.NoticeHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/sign-in", r.sessionHandler.SignIn)
		sessionGroup.POST("/sign-up", r.sessionHandler.SignUp)
		sessionGroup.POST("/sign-out", r.sessionHandler.SignOut)
		sessionGroup.POST("/refresh", r.sessionHandler.Refresh)
	}

	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.GET("/:id/reviews", r.catalogHandler.ListReviews)
		productsGroup.POST("/:id/reviews", r.catalogHandler.SubmitReview)
	}

	// Cart and wishlist stay open to guests; the use cases decide what a guest may do.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/reload", r.cartHandler.Reload)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	wishlistGroup := e.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("/reload", r.wishlistHandler.Reload)
		wishlistGroup.POST("/items", r.wishlistHandler.AddItem)
		wishlistGroup.POST("/items/:productId/toggle", r.wishlistHandler.ToggleItem)
		wishlistGroup.DELETE("/items/:productId", r.wishlistHandler.RemoveItem)
		wishlistGroup.DELETE("", r.wishlistHandler.ClearWishlist)
	}

	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("/guest", r.checkoutHandler.PlaceGuestOrder)
		checkoutGroup.GET("", r.checkoutHandler.Preview, r.sessionMiddleware.RequireSession)
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder, r.sessionMiddleware.RequireSession)
	}

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.sessionMiddleware.RequireSession)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/invoice", r.orderHandler.Invoice)
		ordersGroup.GET("/:id/invoice/qr.png", r.orderHandler.InvoiceQRCode)
	}

	e.GET("/notices", r.noticeHandler.Drain)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/overview", r.adminHandler.MetricsOverview)

		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/customers", r.adminHandler.ListCustomers)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.POST("/orders/:id/confirm-payment", r.adminHandler.ConfirmPayment)

		adminGroup.GET("/newsletter", r.adminHandler.ListNewsletterSubscribers)
		adminGroup.GET("/messages", r.adminHandler.ListContactMessages)
		adminGroup.DELETE("/messages/:id", r.adminHandler.DeleteContactMessage)
	}
}

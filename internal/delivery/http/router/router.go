// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	TrackingHandler *handler.TrackingHandler
	OrdersHandler   *handler.OrdersHandler
	CatalogHandler  *handler.CatalogHandler
	SessionHandler  *handler.SessionHandler
	PaymentHandler  *handler.PaymentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	trackingHandler *handler.TrackingHandler
	ordersHandler   *handler.OrdersHandler
	catalogHandler  *handler.CatalogHandler
	sessionHandler  *handler.SessionHandler
	paymentHandler  *handler.PaymentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		trackingHandler: params.TrackingHandler,
		ordersHandler:   params.OrdersHandler,
		catalogHandler:  params.CatalogHandler,
		sessionHandler:  params.SessionHandler,
		paymentHandler:  params.PaymentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:index", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:index", r.cartHandler.RemoveItem)
	}

	// Checkout
	e.POST("/checkout", r.checkoutHandler.Submit)

	// Order listings
	ordersGroup := e.Group("/orders")
	{
		ordersGroup.GET("/recent", r.ordersHandler.Recent)
		ordersGroup.GET("/history", r.ordersHandler.History)
	}

	// Catalog reads
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.catalogHandler.Menu)
		menuGroup.GET("/products/:id", r.catalogHandler.Product)
	}

	// Order tracking
	trackGroup := e.Group("/track")
	{
		trackGroup.PUT("/:orderId", r.trackingHandler.Open)
		trackGroup.GET("", r.trackingHandler.View)
		trackGroup.DELETE("", r.trackingHandler.Close)
	}

	// Simulated payment provider callback
	e.POST("/payments/simulate/:provider", r.paymentHandler.Simulate)

	// Session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.PUT("", r.sessionHandler.Establish)
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.DELETE("", r.sessionHandler.Invalidate)
	}
}

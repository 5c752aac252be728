// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	ReviewHandler       *handler.ReviewHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/categories/all", r.params.ProductHandler.ListCategories)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)
	}

	// Public review reads
	e.GET("/reviews/product/:id", r.params.ReviewHandler.ListProductReviews)

	authenticate := r.params.AuthMiddleware.Authenticate

	// Account routes
	userGroup := e.Group("/users", authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.PUT("/profile", r.params.UserHandler.UpdateProfile)
		userGroup.POST("/change-password", r.params.UserHandler.ChangePassword)
	}

	// Cart routes
	cartGroup := e.Group("/cart", authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/add", r.params.CartHandler.AddToCart)
		cartGroup.PUT("/update/:id", r.params.CartHandler.UpdateItem)
		cartGroup.DELETE("/:id", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
	}

	// Order routes
	orderGroup := e.Group("/orders", authenticate)
	{
		orderGroup.POST("/create", r.params.OrderHandler.PlaceOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
	}

	// Review writes
	e.POST("/reviews/add", r.params.ReviewHandler.SubmitReview, authenticate)

	// Back-office routes, admin role required
	adminGroup := e.Group("/admin", authenticate, r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/statistics", r.params.AdminHandler.Statistics)
		adminGroup.GET("/products", r.params.AdminHandler.ListProducts)
		adminGroup.POST("/products/add", r.params.AdminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.params.AdminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.params.AdminHandler.DeleteProduct)
		adminGroup.GET("/orders", r.params.AdminHandler.ListOrders)
		adminGroup.PUT("/orders/:id", r.params.AdminHandler.UpdateOrderStatus)
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.GET("/categories", r.params.AdminHandler.ListCategories)
	}
}

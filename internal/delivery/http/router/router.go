// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"headend/internal/delivery/http/middleware"
	"headend/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RequestHandler    *handler.RequestHandler
	SubscriberHandler *handler.SubscriberHandler
	CatalogHandler    *handler.CatalogHandler
	PackageHandler    *handler.PackageHandler
	ConsoleHandler    *handler.ConsoleHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	requestHandler    *handler.RequestHandler
	subscriberHandler *handler.SubscriberHandler
	catalogHandler    *handler.CatalogHandler
	packageHandler    *handler.PackageHandler
	consoleHandler    *handler.ConsoleHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		requestHandler:    params.RequestHandler,
		subscriberHandler: params.SubscriberHandler,
		catalogHandler:    params.CatalogHandler,
		packageHandler:    params.PackageHandler,
		consoleHandler:    params.ConsoleHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Live console state routes
	consoleGroup := apiV1.Group("/console")
	{
		consoleGroup.GET("/state", r.consoleHandler.State)
		consoleGroup.GET("/dashboard", r.consoleHandler.Dashboard)
	}

	// Pending device request routes
	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.GET("", r.requestHandler.ListRequests)
		requestsGroup.POST("/:id/approve", r.requestHandler.ApproveRequest)
		requestsGroup.POST("/:id/swap", r.requestHandler.SwapRequest)
		requestsGroup.DELETE("/:id", r.requestHandler.DismissRequest)
		requestsGroup.GET("/:id/qr", r.requestHandler.PairingQR)
	}

	// Subscriber account routes
	subscribersGroup := apiV1.Group("/subscribers")
	{
		subscribersGroup.GET("", r.subscriberHandler.ListSubscribers)
		subscribersGroup.POST("", r.subscriberHandler.ProvisionSubscriber)
		subscribersGroup.POST("/:id/recharge", r.subscriberHandler.RechargeSubscriber)
		subscribersGroup.DELETE("/:id", r.subscriberHandler.DeleteSubscriber)
	}

	// Content catalog routes
	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.POST("", r.catalogHandler.AddCategory)
		categoriesGroup.DELETE("/:id", r.catalogHandler.DeleteCategory)
	}

	bouquetsGroup := apiV1.Group("/bouquets")
	{
		bouquetsGroup.GET("", r.catalogHandler.ListBouquets)
		bouquetsGroup.POST("", r.catalogHandler.AddBouquet)
		bouquetsGroup.DELETE("/:id", r.catalogHandler.DeleteBouquet)
	}

	channelsGroup := apiV1.Group("/channels")
	{
		channelsGroup.GET("", r.catalogHandler.ListChannels)
		channelsGroup.POST("", r.catalogHandler.AddChannel)
		channelsGroup.PUT("/:id", r.catalogHandler.UpdateChannel)
		channelsGroup.DELETE("/:id", r.catalogHandler.DeleteChannel)
	}

	// Commercial plan routes
	packagesGroup := apiV1.Group("/packages")
	{
		packagesGroup.GET("", r.packageHandler.ListPackages)
		packagesGroup.POST("", r.packageHandler.AddPackage)
		packagesGroup.DELETE("/:id", r.packageHandler.DeletePackage)
	}
}

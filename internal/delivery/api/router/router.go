// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/internal/delivery/api/middleware"
	"addressbook/internal/delivery/api/router/handler"
	"addressbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Reads are public
	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.GET("/postcode/:postcode", r.addressHandler.ListAddressesByPostcode)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
	}

	// Writes require the catalog admin role
	adminGroup := apiV1.Group("/addresses")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleCatalogAdmin))
	{
		adminGroup.POST("", r.addressHandler.CreateAddress)
		adminGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		adminGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}
}

// Package router contains routing and server setup for the console API.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler       *handler.SessionHandler
	OperatorHandler      *handler.OperatorHandler
	FieldOperatorHandler *handler.FieldOperatorHandler
	ProviderHandler      *handler.ProviderHandler
	StoreHandler         *handler.StoreHandler
	TaxonomyHandler      *handler.TaxonomyHandler
	UserRoleHandler      *handler.UserRoleHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler       *handler.SessionHandler
	operatorHandler      *handler.OperatorHandler
	fieldOperatorHandler *handler.FieldOperatorHandler
	providerHandler      *handler.ProviderHandler
	storeHandler         *handler.StoreHandler
	taxonomyHandler      *handler.TaxonomyHandler
	userRoleHandler      *handler.UserRoleHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:       params.SessionHandler,
		operatorHandler:      params.OperatorHandler,
		fieldOperatorHandler: params.FieldOperatorHandler,
		providerHandler:      params.ProviderHandler,
		storeHandler:         params.StoreHandler,
		taxonomyHandler:      params.TaxonomyHandler,
		userRoleHandler:      params.UserRoleHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/refresh", r.sessionHandler.Refresh)
	}

	// Everything below requires an authenticated administrative session.
	api := e.Group("", r.authMiddleware.Authenticate)

	api.POST("/auth/logout", r.sessionHandler.Logout)

	operatorGroup := api.Group("/operators")
	{
		operatorGroup.GET("", r.operatorHandler.List)
		operatorGroup.GET("/:id", r.operatorHandler.Get)
		operatorGroup.POST("", r.operatorHandler.Submit)
		operatorGroup.DELETE("/:id", r.operatorHandler.Delete)
	}

	fieldOperatorGroup := api.Group("/field-operators")
	{
		fieldOperatorGroup.GET("", r.fieldOperatorHandler.List)
		fieldOperatorGroup.GET("/:id", r.fieldOperatorHandler.Get)
		fieldOperatorGroup.POST("", r.fieldOperatorHandler.Submit)
		fieldOperatorGroup.DELETE("/:id", r.fieldOperatorHandler.Delete)
	}

	providerGroup := api.Group("/service-providers")
	{
		providerGroup.GET("", r.providerHandler.List)
		providerGroup.GET("/coverage", r.providerHandler.FindCovering)
		providerGroup.GET("/:id", r.providerHandler.Get)
		providerGroup.POST("", r.providerHandler.Submit)
		providerGroup.DELETE("/:id", r.providerHandler.Delete)
		providerGroup.POST("/documents", r.providerHandler.UploadDocument)
	}

	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.GET("/:id", r.storeHandler.Get)
		storeGroup.POST("", r.storeHandler.Submit)
		storeGroup.DELETE("/:id", r.storeHandler.Delete)
	}

	taxonomyGroup := api.Group("/taxonomy")
	{
		taxonomyGroup.GET("/categories", r.taxonomyHandler.ListCategories)
		taxonomyGroup.POST("/categories", r.taxonomyHandler.CreateCategory)
		taxonomyGroup.PUT("/categories/:id", r.taxonomyHandler.RenameCategory)
		taxonomyGroup.DELETE("/categories/:id", r.taxonomyHandler.DeleteCategory)

		taxonomyGroup.POST("/subcategories", r.taxonomyHandler.CreateSubcategory)
		taxonomyGroup.PUT("/subcategories/:id", r.taxonomyHandler.RenameSubcategory)
		taxonomyGroup.DELETE("/subcategories/:id", r.taxonomyHandler.DeleteSubcategory)

		taxonomyGroup.POST("/service-types", r.taxonomyHandler.CreateServiceType)
		taxonomyGroup.PUT("/service-types/:id", r.taxonomyHandler.RenameServiceType)
		taxonomyGroup.DELETE("/service-types/:id", r.taxonomyHandler.DeleteServiceType)

		taxonomyGroup.GET("/store-categories", r.taxonomyHandler.ListStoreCategories)
		taxonomyGroup.POST("/store-categories", r.taxonomyHandler.CreateStoreCategory)
		taxonomyGroup.PUT("/store-categories/:id", r.taxonomyHandler.RenameStoreCategory)
		taxonomyGroup.DELETE("/store-categories/:id", r.taxonomyHandler.DeleteStoreCategory)

		taxonomyGroup.GET("/working-areas", r.taxonomyHandler.ListWorkingAreas)
		taxonomyGroup.POST("/working-areas", r.taxonomyHandler.CreateWorkingArea)
		taxonomyGroup.PUT("/working-areas/:id", r.taxonomyHandler.RenameWorkingArea)
		taxonomyGroup.DELETE("/working-areas/:id", r.taxonomyHandler.DeleteWorkingArea)

		taxonomyGroup.GET("/countries", r.taxonomyHandler.ListCountries)
		taxonomyGroup.POST("/countries", r.taxonomyHandler.CreateCountry)
		taxonomyGroup.PUT("/countries/:id", r.taxonomyHandler.UpdateCountry)
		taxonomyGroup.DELETE("/countries/:id", r.taxonomyHandler.DeleteCountry)
	}

	// Role management is admin-only at the route level, before any usecase guard.
	userGroup := api.Group("/users", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", r.userRoleHandler.ListUsers)
		userGroup.POST("/:id/roles", r.userRoleHandler.AssignRole)
		userGroup.DELETE("/:id/roles/:role", r.userRoleHandler.RemoveRole)
	}
}

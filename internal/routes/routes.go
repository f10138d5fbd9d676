package routes

import (
	"marketplace_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full HTTP surface under /api. The /user group is
// shared by the auth, session and user handlers, mirroring the API contract;
// markets, products and categories each get their own group.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := ginRouter.Group("/api")
	{
		user := api.Group("/user")
		appHandlers.AuthHandler.RegisterRoutes(user, authMW)
		appHandlers.SessionHandler.RegisterRoutes(user, authMW)
		appHandlers.UserHandler.RegisterRoutes(user, authMW)

		appHandlers.MarketHandler.RegisterRoutes(api.Group("/market"), authMW)
		appHandlers.ProductHandler.RegisterRoutes(api.Group("/product"), authMW)
		appHandlers.CategoryHandler.RegisterRoutes(api.Group("/category"), authMW)
	}
}

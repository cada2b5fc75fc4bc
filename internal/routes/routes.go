package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/handlers"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.OrderHandler.RegisterRoutes(root)
		appHandlers.CatalogHandler.RegisterRoutes(root)
		appHandlers.FeedbackHandler.RegisterRoutes(root)
		appHandlers.InquiryHandler.RegisterRoutes(root)
	}
}

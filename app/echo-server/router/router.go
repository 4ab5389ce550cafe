package router

import (
	"dataMarket/internal/middleware"
	"dataMarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.GET("/personalized", handler.Personalized, middleware.AuthMiddleware())
	reco.GET("/trending", handler.Trending)
	reco.GET("/similar/:datasetId", handler.Similar)
}

func SetRecommendationAdminRoutes(api *echo.Group, handler *rest.RecommendationAdminHandler) {
	admin := api.Group("/admin/recommendations", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.GET("/config", handler.GetConfig)
	admin.POST("/cache/invalidate", handler.InvalidateCache)
}

func SetDatasetRoutes(api *echo.Group, handler *rest.DatasetHandler) {
	datasets := api.Group("/datasets")
	datasets.GET("", handler.GetAllDatasets)
	datasets.GET("/:id", handler.GetDatasetByID)
}

func SetCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler) {
	categories := api.Group("/categories")
	categories.GET("", handler.GetAllCategories)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler) {
	orders := api.Group("/orders", middleware.AuthMiddleware())
	orders.GET("", handler.GetPurchaseHistory)
}

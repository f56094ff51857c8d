package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smartsales/smartsales-backend/internal/handlers"
	"github.com/smartsales/smartsales-backend/internal/middleware"
)

type RouterConfig struct {
	PredictionHandler *handlers.PredictionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	predict := router.Group("/api/predict")
	predict.Use(cfg.AuthMiddleware.RequireAuth())
	predict.GET("/sales/category/:subcategoria_id", cfg.PredictionHandler.PredictSalesCategory)
	predict.GET("/demand/:producto_id", cfg.PredictionHandler.PredictDemand)
	predict.GET("/recommend/:producto_id", cfg.PredictionHandler.Recommend)

	return router
}

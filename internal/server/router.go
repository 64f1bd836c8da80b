// Package server assembles the HTTP router.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wealthview/internal/docs" // swagger spec registration
	"wealthview/internal/handlers"
	"wealthview/internal/metrics"
	"wealthview/internal/middleware"
	"wealthview/internal/services"
)

// Options configures the router.
type Options struct {
	APIPrefix   string
	CORSOrigins []string
	Metrics     *metrics.Metrics
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(opts Options, assetService services.AssetServicer, seedService services.SeedServicer) *gin.Engine {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api/v1"
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	// Keep large integer identifiers in seed records intact.
	binding.EnableDecoderUseNumber = true

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	assetHandler := handlers.NewAssetHandler(assetService)
	seedHandler := handlers.NewSeedHandler(seedService)

	router.GET("/health", handlers.Health)
	router.GET("/api/health", handlers.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	v1 := router.Group(opts.APIPrefix)

	assets := v1.Group("/assets")
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:wid", assetHandler.GetAsset)

	v1.POST("/seed", seedHandler.Seed)

	return router
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/store"
	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, st store.Store, svc *storefront.Service) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Initialize handlers
	productHandler := handlers.NewProductHandler(st, svc, logger)
	cartHandler := handlers.NewCartHandler(svc, logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "storefront"})
	})

	// Routes
	v1 := router.Group("/api/v1")
	{
		// Products
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.GET("/:id/variants", productHandler.Variants)
			products.POST("/:id/quote", productHandler.Quote)
		}

		// Carts
		carts := v1.Group("/carts")
		{
			carts.GET("/:cartId/items", cartHandler.List)
			carts.POST("/:cartId/items", cartHandler.AddItem)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

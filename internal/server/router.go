package server

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/edu-match/internal/controllers"
	"github.com/franciscosanchezn/edu-match/internal/database"
	"github.com/franciscosanchezn/edu-match/internal/middleware"
	"github.com/franciscosanchezn/edu-match/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the router hands to its controllers
type Dependencies struct {
	DB          *gorm.DB
	Logger      *logrus.Logger
	Environment string
}

// NewRouter initializes the Gin router with middleware and routes
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	setupRoutes(router, deps)
	return router, nil
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	homeController := controllers.NewHomeController()
	healthController := controllers.NewHealthController(func(ctx context.Context) error {
		return database.Ping(ctx, deps.DB)
	})

	router.GET("/", homeController.Home)

	// Operational endpoints
	router.GET("/health", healthController.HealthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(middleware.NotFound())
}

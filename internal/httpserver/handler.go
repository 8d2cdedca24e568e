package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"apply-tracker/internal/middleware"
	"apply-tracker/internal/model"
	trackerHTTP "apply-tracker/internal/tracker/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.apiKey)

	api := srv.gin.Group("/api/v1")
	trackerHTTP.RegisterRoutes(api.Group("/tracker"), srv.trackerHandler, mw)
	srv.l.Infof(ctx, "Tracker domain registered under /api/v1/tracker")

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/sheet-edit", srv.webhookHandler.HandleSheetEdit)
		srv.l.Infof(ctx, "Sheet-edit webhook route registered at POST /webhook/sheet-edit")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping sheet-edit route")
	}

	return nil
}

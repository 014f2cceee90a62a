package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "maxitask/internal/assistant/delivery/http"
	calendarHTTP "maxitask/internal/calendar/delivery/http"
	categoryHTTP "maxitask/internal/category/delivery/http"
	"maxitask/internal/model"
	noteHTTP "maxitask/internal/note/delivery/http"
	settingsHTTP "maxitask/internal/settings/delivery/http"
	taskHTTP "maxitask/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, srv.taskHandler)
	noteHTTP.RegisterRoutes(api, srv.noteHandler)
	assistantHTTP.RegisterRoutes(api, srv.assistantHandler, srv.middleware, srv.assistantRatePerMin)
	categoryHTTP.RegisterRoutes(api, srv.categoryHandler)
	settingsHTTP.RegisterRoutes(api, srv.settingsHandler)
	calendarHTTP.RegisterRoutes(api, srv.calendarHandler)
}

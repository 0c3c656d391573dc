package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gcal-relay/internal/middleware"
	"gcal-relay/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	authUC := srv.newAuthUseCase()
	mw := middleware.New(srv.l, authUC, srv.allowedOrigin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	srv.setupAuthDomain(ctx, authUC, mw)
	srv.setupEventDomain(ctx, authUC, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origin %s", srv.allowedOrigin)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origin %s", srv.environment, srv.allowedOrigin)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

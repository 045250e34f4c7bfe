package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bookingHTTP "carcare-backend/internal/booking/delivery/http"
	chatHTTP "carcare-backend/internal/chat/delivery/http"
	contactHTTP "carcare-backend/internal/contact/delivery/http"
	"carcare-backend/internal/middleware"
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

	mw := middleware.New(srv.l, srv.allowedOrigins)
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if len(srv.allowedOrigins) == 0 {
		srv.l.Infof(ctx, "CORS mode: allow-all (%s)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS origins: %v", srv.allowedOrigins)
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

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	chatHTTP.RegisterRoutes(api, srv.chatHandler)
	srv.l.Infof(ctx, "Chat routes registered at /api/chat")

	if srv.bookingHandler != nil {
		bookingHTTP.RegisterRoutes(api, srv.bookingHandler)
		srv.l.Infof(ctx, "Booking routes registered at /api/bookings")
	}

	if srv.contactHandler != nil {
		contactHTTP.RegisterRoutes(api, srv.contactHandler)
		srv.l.Infof(ctx, "Contact routes registered at /api/contacts")
	}

	return nil
}
